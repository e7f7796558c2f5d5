package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommandStructure(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestExportWithoutAliases(t *testing.T) {
	setupWorkspace(t)

	_, err := executeCommand(t, "export")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no aliases to export")
}

func TestExportToStdout(t *testing.T) {
	setupWorkspace(t)

	_, err := executeCommand(t, "add", "build", "go", "build", "./...")
	require.NoError(t, err)
	_, err = executeCommand(t, "add", "-p", "checks", "go vet ./...", "go test ./...")
	require.NoError(t, err)

	output, err := executeCommand(t, "export")
	require.NoError(t, err)

	// Bare YAML so the output can be piped into a file or another tool.
	assert.Contains(t, output, "aliases:")
	assert.Contains(t, output, "build: go build ./...")
	assert.Contains(t, output, "checks:")
	assert.Contains(t, output, "- go vet ./...")
	assert.NotContains(t, output, "🐙")
}

func TestExportToFile(t *testing.T) {
	dir := setupWorkspace(t)

	_, err := executeCommand(t, "add", "build", "go", "build", "./...")
	require.NoError(t, err)

	output, err := executeCommand(t, "export", "-o", "aliases.yaml")
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 1 alias(es) to aliases.yaml")

	data, err := os.ReadFile(filepath.Join(dir, "aliases.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "build: go build ./...")
}
