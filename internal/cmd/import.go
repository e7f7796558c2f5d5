package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/parser"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import aliases from a YAML or Markdown file",
		Long: `Import aliases from a YAML or Markdown file.

YAML files use the same shape export produces: an aliases mapping of
name to command string or list of command strings. Markdown files are
read as runbooks: every fenced sh/bash/shell code block becomes an
alias named after its nearest preceding heading.

Existing aliases are kept unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("force", false, "overwrite aliases that already exist")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	imported, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(imported) == 0 {
		return fmt.Errorf("no aliases found in %s", args[0])
	}

	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	merged := 0
	skipped := 0
	for _, alias := range imported {
		if _, exists := cfg.Resolve(alias.Name); exists && !force {
			skipped++
			fmt.Fprintf(out, "%s Skipped %s (already defined)\n", display.Octopus(), display.Bold.Sprint(alias.Name))
			continue
		}
		cfg.SetAlias(alias.Name, alias.Definition)
		merged++
	}

	if merged == 0 {
		fmt.Fprintf(out, "%s Nothing imported; %d alias(es) already defined. Use --force to overwrite.\n", display.Octopus(), skipped)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("import aborted: %w", err)
	}

	if err := cfg.Save(dir); err != nil {
		return err
	}

	summary := fmt.Sprintf("%s Imported %d alias(es) from %s", display.Octopus(), merged, filepath.Base(args[0]))
	if skipped > 0 {
		summary += fmt.Sprintf(" (%d skipped)", skipped)
	}
	fmt.Fprintln(out, summary)

	return nil
}
