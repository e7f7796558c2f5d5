package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkollar/cawa/internal/config"
	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/engine"
	"github.com/rkollar/cawa/internal/history"
	"github.com/rkollar/cawa/internal/logger"
	"github.com/rkollar/cawa/internal/models"
	"github.com/rkollar/cawa/internal/notify"
)

// runAlias resolves an alias in the current workspace and runs it through
// the execution engine. args are passthrough tokens appended to every
// command line of the alias.
func runAlias(cmd *cobra.Command, alias string, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	def, ok := cfg.Resolve(alias)
	if !ok {
		return fmt.Errorf("unknown command or alias: %s", alias)
	}

	settings := buildSettings(cmd, cfg, args)
	log := newRunLogger(cmd)

	display.ExecutingBanner(cmd.OutOrStdout(), engine.ComposeCommands(def.Commands, settings.PassthroughArgs), def.Parallel)

	eng := engine.NewEngineWithStreams(log, notify.NewDesktop(programName(), log),
		cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	result := eng.Run(cmd.Context(), alias, def, settings)

	recordRun(cmd.Context(), log, cfg.Identifier, alias, def, result)

	if result.WorstExitCode != 0 {
		return &ExitStatusError{Code: result.WorstExitCode}
	}
	return nil
}

// buildSettings merges persistent flags with the workspace configuration.
// --time overrides the stored value only when set on the command line;
// --notify has no config counterpart and is read directly.
func buildSettings(cmd *cobra.Command, cfg *config.Config, args []string) models.ExecutionSettings {
	var timingPtr *bool
	if cmd.Flags().Changed("time") {
		timing, _ := cmd.Flags().GetBool("time")
		timingPtr = &timing
	}
	cfg.MergeWithFlags(timingPtr)

	notifyFlag, _ := cmd.Flags().GetBool("notify")

	return models.ExecutionSettings{
		EnableTiming:    cfg.EnableTiming,
		Notify:          notifyFlag,
		PassthroughArgs: args,
	}
}

// newRunLogger builds the diagnostic logger for one invocation.
// Diagnostics go to stderr so alias stdout stays pipeable.
func newRunLogger(cmd *cobra.Command) *logger.ConsoleLogger {
	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return logger.NewConsoleLogger(cmd.ErrOrStderr(), level)
}

// recordRun appends the outcome to the run history database. History is
// best effort: failures are logged and never change the alias exit status.
func recordRun(ctx context.Context, log *logger.ConsoleLogger, workspaceID, alias string, def models.AliasDefinition, result models.ExecutionResult) {
	if workspaceID == "" {
		// The workspace has never been saved, so there is no stable
		// identifier to key history rows on.
		return
	}

	dbPath, err := config.HistoryDBPath()
	if err != nil {
		log.LogWarn(fmt.Sprintf("history disabled: %v", err))
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.LogWarn(fmt.Sprintf("history disabled: %v", err))
		return
	}
	defer store.Close()

	exec := &history.Execution{
		WorkspaceID:  workspaceID,
		Alias:        alias,
		CommandCount: len(def.Commands),
		Parallel:     def.Parallel,
		Success:      result.OverallSuccess,
		ExitCode:     result.WorstExitCode,
		DurationMS:   result.TotalDuration.Milliseconds(),
	}
	if err := store.RecordExecution(ctx, exec); err != nil {
		log.LogWarn(fmt.Sprintf("failed to record run history: %v", err))
	}
}
