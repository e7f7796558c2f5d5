package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the per-user cawa directory.
// Priority order:
//  1. CAWA_HOME environment variable (if set)
//  2. ~/.cawa
//
// The directory is created if it doesn't exist. Unlike the workspace config,
// this directory holds state shared by every workspace, such as run history.
func Home() (string, error) {
	if home := os.Getenv("CAWA_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create cawa home directory: %w", err)
		}
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}

	cawaHome := filepath.Join(userHome, ".cawa")
	if err := os.MkdirAll(cawaHome, 0755); err != nil {
		return "", fmt.Errorf("create cawa home directory: %w", err)
	}

	return cawaHome, nil
}

// HistoryDBPath returns the absolute path to the run history database.
// Always returns: $CAWA_HOME/history.db
func HistoryDBPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}
