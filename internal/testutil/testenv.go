package testutil

import (
	"path/filepath"
	"testing"
)

// Env isolates a test from the caller's XDG state: a private HOME plus
// explicit data/config homes.
type Env struct {
	Home       string
	DataHome   string
	ConfigHome string
}

func NewEnv(t *testing.T) Env {
	t.Helper()

	home := t.TempDir()
	dataHome := filepath.Join(home, ".local", "share")
	configHome := filepath.Join(home, ".config")

	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	return Env{
		Home:       home,
		DataHome:   dataHome,
		ConfigHome: configHome,
	}
}

// HistoryDBPath returns where the run-history store lands inside the env.
func (e Env) HistoryDBPath() string {
	return filepath.Join(e.DataHome, "skel", "history.db")
}

// ConfigPath returns where the user config lands inside the env.
func (e Env) ConfigPath() string {
	return filepath.Join(e.ConfigHome, "skel", "config.yaml")
}
