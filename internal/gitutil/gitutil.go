package gitutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// InitRepo runs "git init" in dir unless a .git entry already exists.
// Returns true when a repository was actually initialized.
func InitRepo(dir string) (bool, error) {
	gitMeta := filepath.Join(dir, ".git")
	if _, err := os.Stat(gitMeta); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat .git: %w", err)
	}

	if _, err := exec.LookPath("git"); err != nil {
		return false, fmt.Errorf("git not found in PATH: %w", err)
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git init failed: %w (output=%s)", err, strings.TrimSpace(string(output)))
	}
	return true, nil
}
