package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// HistoryDBPath returns the location of the SQLite run-history store,
// following XDG conventions.
func HistoryDBPath() (string, error) {
	dataHome, err := XDGDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "skel", "history.db"), nil
}

// ConfigPath returns the user config file location, following XDG
// conventions.
func ConfigPath() (string, error) {
	configHome, err := XDGConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "skel", "config.yaml"), nil
}

// XDGDataHome resolves $XDG_DATA_HOME or falls back to ~/.local/share.
func XDGDataHome() (string, error) {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return cleanAbs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir for XDG_DATA_HOME fallback: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// XDGConfigHome resolves $XDG_CONFIG_HOME or falls back to ~/.config.
func XDGConfigHome() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return cleanAbs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir for XDG_CONFIG_HOME fallback: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

func cleanAbs(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
