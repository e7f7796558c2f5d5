package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestHomeEnvOverride verifies CAWA_HOME takes precedence
func TestHomeEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom-home")
	t.Setenv("CAWA_HOME", override)

	home, err := Home()
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}
	if home != override {
		t.Errorf("Home() = %q, want %q", home, override)
	}

	// The directory must exist afterwards.
	info, err := os.Stat(home)
	if err != nil {
		t.Fatalf("home directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("home path is not a directory")
	}
}

// TestHomeDefault verifies the ~/.cawa fallback
func TestHomeDefault(t *testing.T) {
	t.Setenv("CAWA_HOME", "")
	// Redirect the user home so the test never touches the real one.
	t.Setenv("HOME", t.TempDir())

	home, err := Home()
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}
	if filepath.Base(home) != ".cawa" {
		t.Errorf("Home() = %q, want a .cawa directory", home)
	}
}

// TestHistoryDBPath verifies the database lives inside the home directory
func TestHistoryDBPath(t *testing.T) {
	override := t.TempDir()
	t.Setenv("CAWA_HOME", override)

	dbPath, err := HistoryDBPath()
	if err != nil {
		t.Fatalf("HistoryDBPath() error = %v", err)
	}
	if !strings.HasPrefix(dbPath, override) {
		t.Errorf("HistoryDBPath() = %q, want under %q", dbPath, override)
	}
	if filepath.Base(dbPath) != "history.db" {
		t.Errorf("HistoryDBPath() = %q, want history.db file", dbPath)
	}
}
