package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/models"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [-p] <alias> <command>...",
		Short: "Store a command alias in this workspace",
		Long: `Store a command alias in the workspace config file. An existing alias
with the same name is replaced.

Without -p the command words are joined into one shell command line:

  cs add build go build ./...

With -p every argument after the alias name becomes its own command and the
alias runs them in parallel:

  cs add -p checks "go vet ./..." "go test ./..."`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	// Flags must precede the alias name so hyphenated command words are
	// stored verbatim instead of being parsed.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolP("parallel", "p", false, "Store each command argument as a parallel command")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	name := args[0]
	parallel, _ := cmd.Flags().GetBool("parallel")

	var def models.AliasDefinition
	if parallel {
		def = models.NewParallel(args[1:])
	} else {
		def = models.NewSingle(strings.Join(args[1:], " "))
	}

	cfg.SetAlias(name, def)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(dir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s → %s\n", display.Octopus(), display.Bold.Sprint(name), def.Display())
	return nil
}
