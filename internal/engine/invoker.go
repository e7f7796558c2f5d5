package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rkollar/cawa/internal/models"
)

// SpawnFailureExitCode stands in when a child produced no exit status of
// its own, either because the shell could not be spawned or because the
// process was killed by a signal. 127 matches the shell's own convention
// for an unrunnable command, so aggregation treats every no-status failure
// uniformly.
const SpawnFailureExitCode = 127

// invoke runs one composed command line through the system shell and blocks
// until it terminates. The child inherits the engine's standard streams;
// under parallel dispatch its output interleaves with its siblings' on the
// shared terminal.
func (e *Engine) invoke(ctx context.Context, command string) models.InvocationOutcome {
	startTime := time.Now()

	cmd := e.shellCommand(ctx, command)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()

	outcome := models.InvocationOutcome{
		Duration:     time.Since(startTime),
		CommandLabel: command,
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() >= 0 {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			// Spawn failure or signal kill: no exit status exists.
			if e.logger != nil {
				e.logger.LogDebug(fmt.Sprintf("command %q did not run to completion: %v", command, err))
			}
			outcome.ExitCode = SpawnFailureExitCode
		}
	}

	if e.logger != nil {
		e.logger.LogDebug(fmt.Sprintf("exit %d after %s: %s",
			outcome.ExitCode, outcome.Duration.Round(time.Millisecond), command))
	}

	return outcome
}

// shellCommand hands a composed command string to the platform's command
// interpreter. Quoting, pipes, and operator chaining stay the shell's
// business; the engine never parses command text itself.
// On Windows, uses the full path to PowerShell to avoid PATH interception.
func (e *Engine) shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		systemRoot := os.Getenv("SYSTEMROOT")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		powershellPath := filepath.Join(systemRoot, "System32", "WindowsPowerShell", "v1.0", "powershell.exe")
		return exec.CommandContext(ctx, powershellPath, "-NoProfile", "-NonInteractive", "-Command", command)
	}
	return exec.CommandContext(ctx, e.shell, "-c", command)
}
