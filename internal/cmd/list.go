package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the aliases defined in this workspace",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	program := programName()

	if len(cfg.Aliases) == 0 {
		fmt.Fprintf(out, "%s No aliases defined. Add one with '%s add <alias> <command>...'.\n", display.Octopus(), program)
		return nil
	}

	fmt.Fprintf(out, "%s Aliases in this workspace:\n", display.Octopus())
	for _, name := range cfg.AliasNames() {
		def, _ := cfg.Resolve(name)
		fmt.Fprintf(out, "  %s %s → %s\n", program, display.Bold.Sprint(name), def.Display())
	}
	return nil
}
