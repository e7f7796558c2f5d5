package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/parser"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export workspace aliases as YAML",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if len(cfg.Aliases) == 0 {
		return fmt.Errorf("no aliases to export")
	}

	data, err := yaml.Marshal(parser.Document{Aliases: cfg.Aliases})
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	if output == "" {
		// Bare YAML on stdout so the output can be piped or redirected.
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d alias(es) to %s\n", display.Octopus(), len(cfg.Aliases), output)
	return nil
}
