package cmd

import (
	"errors"
	"fmt"
)

// ExitStatusError carries an alias run's exit status from RunE to main.
// The alias already wrote its own output, so main exits with the code
// without printing anything further.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitStatus extracts the alias exit code from err.
// The second return is false when err carries no exit status.
func ExitStatus(err error) (int, bool) {
	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
