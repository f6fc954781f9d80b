// Package config handles loading the daytask configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/example/daytask/internal/paths"
)

// Config represents the config.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	UI      UI      `toml:"ui"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Path is where the tasks file lives. Empty means the default
	// data path; the DAYTASK_DATA environment variable overrides both.
	Path string `toml:"path"`
}

// UI contains display-related configuration.
type UI struct {
	// Color controls ANSI output: "auto" (default), "always", "never".
	Color string `toml:"color"`
}

// Load reads the global config file. Returns defaults if it doesn't
// exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	cfg.UI.Color = strings.TrimSpace(cfg.UI.Color)
	if cfg.UI.Color == "" {
		cfg.UI.Color = "auto"
	}
}

// DataPath resolves the tasks file location: the DAYTASK_DATA
// environment variable wins, then the configured path, then the
// default under the user's data directory.
func (cfg *Config) DataPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv("DAYTASK_DATA")); env != "" {
		return env, nil
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path, nil
	}
	return paths.DefaultDataPath()
}
