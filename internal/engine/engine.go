// Package engine runs resolved alias definitions. It composes the command
// set with any passthrough arguments, hands each command to the system
// shell, aggregates the per-command outcomes into one result, and renders
// the optional timing line. Child processes inherit the engine's standard
// streams directly, so their output reaches the terminal without buffering
// or reordering.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rkollar/cawa/internal/display"
	"github.com/rkollar/cawa/internal/models"
)

// Logger receives execution diagnostics. Alias output never flows through
// it; children write straight to the inherited standard streams.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Notifier is the completion side channel. Implementations absorb their own
// delivery failures; the engine fires it at most once per Run and never
// inspects the outcome.
type Notifier interface {
	Notify(alias string, success bool, duration time.Duration)
}

// Engine executes alias definitions against the system shell.
type Engine struct {
	logger   Logger
	notifier Notifier

	// shell is the interpreter used on non-Windows platforms.
	shell string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewEngine creates an engine wired to the process standard streams. Both
// logger and notifier may be nil.
func NewEngine(logger Logger, notifier Notifier) *Engine {
	return NewEngineWithStreams(logger, notifier, os.Stdin, os.Stdout, os.Stderr)
}

// NewEngineWithStreams creates an engine with explicit streams for the
// executed commands and the timing line.
func NewEngineWithStreams(logger Logger, notifier Notifier, stdin io.Reader, stdout, stderr io.Writer) *Engine {
	return &Engine{
		logger:   logger,
		notifier: notifier,
		shell:    "sh",
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Run executes the definition and returns the aggregated result. It always
// produces a result, even when a command cannot be spawned; per-invocation
// failures are folded into exit codes rather than surfaced as errors. The
// timing line and the completion notification each fire exactly once per
// call, whatever the command count.
func (e *Engine) Run(ctx context.Context, alias string, def models.AliasDefinition, settings models.ExecutionSettings) models.ExecutionResult {
	commands := ComposeCommands(def.Commands, settings.PassthroughArgs)

	var result models.ExecutionResult
	switch {
	case len(commands) == 0:
		// An empty parallel set is a successful no-op with zero duration.
		result = models.AggregateOutcomes([]models.InvocationOutcome{}, 0)
	case len(commands) == 1:
		startTime := time.Now()
		outcome := e.invoke(ctx, commands[0])
		result = models.AggregateOutcomes([]models.InvocationOutcome{outcome}, time.Since(startTime))
	default:
		startTime := time.Now()
		outcomes := e.dispatchParallel(ctx, commands)
		result = models.AggregateOutcomes(outcomes, time.Since(startTime))
	}

	if e.logger != nil {
		e.logger.LogDebug(fmt.Sprintf("alias %q finished: success=%t worst_exit=%d duration=%s",
			alias, result.OverallSuccess, result.WorstExitCode, result.TotalDuration.Round(time.Millisecond)))
	}

	e.renderTiming(result, settings)

	if settings.Notify && e.notifier != nil {
		e.notifier.Notify(alias, result.OverallSuccess, result.TotalDuration)
	}

	return result
}

// renderTiming prints the elapsed-time line when timing is enabled. Success
// goes to stdout; failure goes to stderr with a trailing tag. Duration is
// measured on every run regardless, so enabling timing never changes
// execution behavior.
func (e *Engine) renderTiming(result models.ExecutionResult, settings models.ExecutionSettings) {
	if !settings.EnableTiming {
		return
	}

	seconds := result.TotalDuration.Seconds()
	if result.OverallSuccess {
		fmt.Fprintf(e.stdout, "%s⏱️  %.3f s\n", display.Octopus(), seconds)
	} else {
		fmt.Fprintf(e.stderr, "%s⏱️  %.3f s (Failed)\n", display.Octopus(), seconds)
	}
}
