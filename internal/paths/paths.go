// Package paths resolves daytask's config and data locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the global config file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "daytask", "config.toml"), nil
}

// DefaultDataPath returns the default tasks file path.
func DefaultDataPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "daytask", "tasks.json"), nil
}
