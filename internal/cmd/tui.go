package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/tui"
)

// NewTuiCommand creates the tui command
func NewTuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Pick an alias interactively and run it",
		Args:  cobra.NoArgs,
		RunE:  runTui,
	}
}

func runTui(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if len(cfg.Aliases) == 0 {
		return fmt.Errorf("no aliases defined; add one with '%s add <alias> <command>...'", programName())
	}

	choice, ok, err := tui.Select(programName(), cfg.Aliases)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return runAlias(cmd, choice, nil)
}
