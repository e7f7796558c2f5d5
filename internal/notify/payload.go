// Package notify delivers desktop completion notifications through the
// platform's native facility. Delivery is best effort: failures are logged
// at debug level and absorbed, and nothing in this package ever alters an
// execution result.
package notify

import (
	"fmt"
	"time"
)

// Payload is the structured message handed to a notification backend.
type Payload struct {
	// Program is the display name of the invoking binary.
	Program string

	// Alias is the name of the alias that finished.
	Alias string

	// Success reports whether every constituent command exited zero.
	Success bool

	// Duration is the total wall-clock time of the run.
	Duration time.Duration
}

// Title renders the notification headline.
func (p Payload) Title() string {
	return fmt.Sprintf("🐙 %s", p.Program)
}

// Body renders the notification text.
func (p Payload) Body() string {
	seconds := p.Duration.Seconds()
	if p.Success {
		return fmt.Sprintf("Alias '%s' finished successfully in %.3f s.", p.Alias, seconds)
	}
	return fmt.Sprintf("Alias '%s' failed after %.3f s.", p.Alias, seconds)
}
