package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/history"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [alias]",
		Short: "Show recent alias runs for this workspace",
		Long: `Show recent alias runs for this workspace.

Runs are recorded in $CAWA_HOME/history.db and keyed by the workspace
identifier, so each directory sees only its own history unless --all
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show")
	cmd.Flags().Bool("failed", false, "show only failed runs")
	cmd.Flags().Bool("all", false, "show runs from every workspace")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	failed, _ := cmd.Flags().GetBool("failed")
	all, _ := cmd.Flags().GetBool("all")

	filter := history.Filter{FailedOnly: failed}
	if len(args) == 1 {
		filter.Alias = args[0]
	}

	out := cmd.OutOrStdout()

	if !all {
		dir, err := workspaceDir()
		if err != nil {
			return err
		}
		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}
		// The identifier is assigned on first save, so a workspace that
		// never stored an alias cannot have recorded runs either.
		if cfg.Identifier == "" {
			fmt.Fprintf(out, "%s No runs recorded for this workspace yet.\n", display.Octopus())
			return nil
		}
		filter.WorkspaceID = cfg.Identifier
	}

	dbPath, err := config.HistoryDBPath()
	if err != nil {
		return err
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	executions, err := store.ListExecutions(cmd.Context(), filter, limit)
	if err != nil {
		return err
	}

	if len(executions) == 0 {
		fmt.Fprintf(out, "%s No matching runs.\n", display.Octopus())
		return nil
	}

	fmt.Fprintf(out, "%s Recent runs:\n", display.Octopus())
	for _, exec := range executions {
		fmt.Fprintf(out, "  %s\n", formatExecutionRow(exec, all))
	}

	return nil
}

func formatExecutionRow(exec *history.Execution, showWorkspace bool) string {
	status := display.Green.Sprint("✓")
	if !exec.Success {
		status = display.Red.Sprint("✗")
	}

	label := exec.Alias
	if exec.Parallel {
		label = fmt.Sprintf("%s ×%d", exec.Alias, exec.CommandCount)
	}

	row := fmt.Sprintf("%s %-20s %8s  exit %-4d %s ago",
		status, label, formatRunDuration(exec.DurationMS), exec.ExitCode, formatAge(time.Since(exec.CreatedAt)))

	if showWorkspace {
		row += " " + display.Dim.Sprint(shortWorkspaceID(exec.WorkspaceID))
	}

	return row
}

func formatRunDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}

func shortWorkspaceID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
