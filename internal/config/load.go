package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	envConfig = "GPROCS_CONFIG"
	envTheme  = "GPROCS_THEME"
	envPager  = "GPROCS_PAGER"
)

// DefaultPath returns the per-user configuration file location, for example
// `~/.config/gprocs/config.toml` on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gprocs", "config.toml"), nil
}

// Load reads a TOML configuration file on top of Default(). A [[columns]]
// list in the file replaces the default layout instead of extending it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	cfg.Columns = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Columns == nil {
		cfg.Columns = DefaultColumns()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the configuration file (explicit path, then $GPROCS_CONFIG,
// then DefaultPath), loads it and applies environment overrides. A missing
// file at the default location is not an error. The returned path is empty
// when built-in defaults are in use.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(envConfig)
	}
	required := path != ""
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return applyEnv(Default()), "", nil
		}
		path = p
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
		return applyEnv(cfg), path, nil
	case !required && errors.Is(err, fs.ErrNotExist):
		return applyEnv(Default()), "", nil
	default:
		return nil, path, err
	}
}

func applyEnv(cfg *Config) *Config {
	if v := os.Getenv(envTheme); v != "" {
		if t := Theme(v); t.valid() {
			cfg.Display.Theme = t
		}
	}
	if v := os.Getenv(envPager); v != "" {
		cfg.Pager.Command = v
	}
	return cfg
}
