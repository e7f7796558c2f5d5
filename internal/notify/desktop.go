package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Logger receives dispatch diagnostics.
type Logger interface {
	LogDebug(message string)
}

// Desktop sends notifications through the operating system's native
// mechanism: an osascript dialog on macOS, notify-send on Linux, and a
// PowerShell balloon tip on Windows. Anything else is a silent no-op.
type Desktop struct {
	program string
	logger  Logger
}

// NewDesktop creates a notifier signing its messages with the given program
// display name. The logger may be nil.
func NewDesktop(program string, logger Logger) *Desktop {
	return &Desktop{program: program, logger: logger}
}

// Notify builds the payload for one finished alias run and dispatches it
// synchronously. On macOS the dialog stays up until dismissed, so delivery
// can block on user interaction. Dispatch failures are logged at debug
// level and absorbed.
func (d *Desktop) Notify(alias string, success bool, duration time.Duration) {
	payload := Payload{
		Program:  d.program,
		Alias:    alias,
		Success:  success,
		Duration: duration,
	}

	if err := d.dispatch(payload); err != nil && d.logger != nil {
		d.logger.LogDebug(fmt.Sprintf("notification dispatch failed: %v", err))
	}
}

func (d *Desktop) dispatch(payload Payload) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		// Banners disappear on their own; a dialog stays until clicked.
		// %q escaping is compatible with AppleScript string literals.
		script := fmt.Sprintf("display dialog %q with title %q buttons {\"OK\"} default button \"OK\"",
			payload.Body(), payload.Title())
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		cmd = exec.Command("notify-send", payload.Title(), payload.Body())
	case "windows":
		cmd = exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", balloonScript(payload))
	default:
		return nil
	}
	return cmd.Run()
}

// balloonScript builds the PowerShell one-liner for a Windows balloon tip.
// Embedded text is single-quoted, so quotes in the payload are doubled.
func balloonScript(payload Payload) string {
	title := strings.ReplaceAll(payload.Title(), "'", "''")
	body := strings.ReplaceAll(payload.Body(), "'", "''")
	return fmt.Sprintf("Add-Type -AssemblyName System.Windows.Forms; "+
		"$tip = New-Object System.Windows.Forms.NotifyIcon; "+
		"$tip.Icon = [System.Drawing.SystemIcons]::Information; "+
		"$tip.BalloonTipTitle = '%s'; "+
		"$tip.BalloonTipText = '%s'; "+
		"$tip.Visible = $true; "+
		"$tip.ShowBalloonTip(5000)", title, body)
}
