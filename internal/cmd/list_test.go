package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommandStructure(t *testing.T) {
	cmd := NewListCommand()
	assert.Equal(t, "list", cmd.Use)
}

func TestListEmptyWorkspace(t *testing.T) {
	setupWorkspace(t)

	output, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No aliases defined")
}

func TestListShowsAliasesSorted(t *testing.T) {
	setupWorkspace(t)

	_, err := executeCommand(t, "add", "zeta", "echo", "z")
	require.NoError(t, err)
	_, err = executeCommand(t, "add", "alpha", "echo", "a")
	require.NoError(t, err)

	output, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, output, "alpha → echo a")
	assert.Contains(t, output, "zeta → echo z")
	assert.Less(t, strings.Index(output, "alpha"), strings.Index(output, "zeta"),
		"aliases should be listed in sorted order")
}

func TestListShowsParallelSetsBracketed(t *testing.T) {
	setupWorkspace(t)

	_, err := executeCommand(t, "add", "-p", "checks", "go vet ./...", "go test ./...")
	require.NoError(t, err)

	output, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, output, "checks → [go vet ./..., go test ./...]")
}
