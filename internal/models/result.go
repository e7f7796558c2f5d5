package models

import "time"

// ExecutionSettings carries the per-invocation runtime options resolved from
// configuration and command-line flags before the engine starts.
type ExecutionSettings struct {
	EnableTiming    bool     // Print the elapsed-time marker after the run
	Notify          bool     // Send a desktop notification when the run finishes
	PassthroughArgs []string // Extra arguments appended to every command line
}

// InvocationOutcome represents the result of one child process run.
type InvocationOutcome struct {
	ExitCode     int           // Exit code of the child, 127 when it never ran
	Duration     time.Duration // Time from spawn to termination
	CommandLabel string        // Composed command line, for display and logs
}

// Success reports whether the child exited cleanly.
func (o InvocationOutcome) Success() bool {
	return o.ExitCode == 0
}

// ExecutionResult represents the aggregate result of running an entire alias.
type ExecutionResult struct {
	OverallSuccess bool                // True only when every command exited zero
	WorstExitCode  int                 // First non-zero exit code in definition order
	TotalDuration  time.Duration       // Wall-clock span of the whole run
	PerCommand     []InvocationOutcome // Outcomes in definition order
}

// AggregateOutcomes folds per-command outcomes into an ExecutionResult.
//
// Outcomes must be in definition order. WorstExitCode is the first non-zero
// exit code in that order, so the reported status is deterministic no matter
// which command happened to finish last.
func AggregateOutcomes(outcomes []InvocationOutcome, total time.Duration) ExecutionResult {
	result := ExecutionResult{
		OverallSuccess: true,
		TotalDuration:  total,
		PerCommand:     outcomes,
	}

	for _, outcome := range outcomes {
		if outcome.ExitCode != 0 {
			result.OverallSuccess = false
			if result.WorstExitCode == 0 {
				result.WorstExitCode = outcome.ExitCode
			}
		}
	}

	return result
}
