// Package cmd wires the cs command-line surface. The root command doubles as
// the alias dispatcher: any first argument that is not a subcommand is
// resolved against the workspace config and handed to the execution engine.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for cs
func NewRootCommand() *cobra.Command {
	program := programName()

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [alias] [args...]", program),
		Short: "Per-workspace command alias runner",
		Long: fmt.Sprintf(`%s stores command aliases in a %s file in the current
directory and runs them through the shell. An alias holds either a single
command line or a list of command lines that run in parallel.

Any first argument that is not a subcommand is treated as an alias name, and
everything after it is appended to the aliased command(s) verbatim:

  %s add build "go build ./..."
  %s build -v`, program, config.FileName, program, program),
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runRoot,
		// The alias already printed its own failure output; keep cobra quiet
		// and let main decide what to show.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Stop flag parsing at the first positional token so flags after an
	// alias name flow through to the alias untouched.
	cmd.Flags().SetInterspersed(false)

	cmd.PersistentFlags().Bool("notify", false, "Send a desktop notification when the run finishes")
	cmd.PersistentFlags().Bool("time", false, "Print the elapsed time after the run")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")

	cmd.AddCommand(NewAddCommand())
	cmd.AddCommand(NewRemoveCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewTuiCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewImportCommand())

	return cmd
}

// runRoot dispatches to alias execution, or prints help when cs is invoked
// with no arguments at all.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return runAlias(cmd, args[0], args[1:])
}

// programName returns the basename cs was invoked as, so renamed or
// symlinked installs brand their own output.
func programName() string {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "cs"
	}
	return name
}

// workspaceDir resolves the workspace the command operates on. Aliases are
// always scoped to the directory cs runs from.
func workspaceDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return dir, nil
}
