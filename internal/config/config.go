package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDirMode  os.FileMode = 0o755
	DefaultFileMode os.FileMode = 0o644
)

type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
}

type DefaultsConfig struct {
	Blueprint string `yaml:"blueprint"`
	DirMode   string `yaml:"dir_mode"`
	FileMode  string `yaml:"file_mode"`
}

// LoadFile reads the user config. A missing or blank file yields the zero
// config.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return Config{}, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Normalize() {
	c.Defaults.Blueprint = strings.TrimSpace(c.Defaults.Blueprint)
	c.Defaults.DirMode = strings.TrimSpace(c.Defaults.DirMode)
	c.Defaults.FileMode = strings.TrimSpace(c.Defaults.FileMode)
}

func (c Config) Validate() error {
	issues := make([]string, 0, 2)
	if c.Defaults.DirMode != "" {
		if _, err := parseMode(c.Defaults.DirMode); err != nil {
			issues = append(issues, fmt.Sprintf("defaults.dir_mode: %v", err))
		}
	}
	if c.Defaults.FileMode != "" {
		if _, err := parseMode(c.Defaults.FileMode); err != nil {
			issues = append(issues, fmt.Sprintf("defaults.file_mode: %v", err))
		}
	}
	if len(issues) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(issues, "; "))
	}
	return nil
}

// DirMode returns the configured directory mode or the default.
func (c Config) DirMode() os.FileMode {
	if c.Defaults.DirMode == "" {
		return DefaultDirMode
	}
	mode, err := parseMode(c.Defaults.DirMode)
	if err != nil {
		return DefaultDirMode
	}
	return mode
}

// FileMode returns the configured file mode or the default.
func (c Config) FileMode() os.FileMode {
	if c.Defaults.FileMode == "" {
		return DefaultFileMode
	}
	mode, err := parseMode(c.Defaults.FileMode)
	if err != nil {
		return DefaultFileMode
	}
	return mode
}

// parseMode accepts octal permission notation: 0755, 755, 0o755.
func parseMode(s string) (os.FileMode, error) {
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("not an octal mode: %q", s)
	}
	if u > 0o777 {
		return 0, fmt.Errorf("mode out of range: %q", s)
	}
	return os.FileMode(u), nil
}
