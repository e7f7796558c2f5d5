// Package display centralizes terminal markup for user-facing cs output.
//
// Everything the CLI prints on purpose goes through here: the branded line
// prefix, execution banners, and the shared color styles. Child process
// output never does; it flows through inherited file descriptors untouched.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Shared styles. The color library disables itself on non-TTY output and
// when NO_COLOR is set, so these are safe to use unconditionally.
var (
	Bold  = color.New(color.Bold)
	Cyan  = color.New(color.FgCyan)
	Red   = color.New(color.FgRed)
	Green = color.New(color.FgGreen)
	Gray  = color.New(color.FgHiBlack)
	Dim   = color.New(color.Faint)
)

// Octopus returns the branded line prefix in dim gray.
func Octopus() string {
	return color.RGB(80, 80, 80).Sprint("🐙")
}

// ExecutingBanner prints the line announcing an alias run. Parallel sets are
// shown as a quoted list so the constituent boundaries stay visible even
// when commands contain spaces.
func ExecutingBanner(out io.Writer, commands []string, parallel bool) {
	if parallel {
		quoted := make([]string, len(commands))
		for i, command := range commands {
			quoted[i] = fmt.Sprintf("%q", command)
		}
		fmt.Fprintf(out, "%s Executing (parallel): [%s]\n", Octopus(), strings.Join(quoted, ", "))
		return
	}

	var command string
	if len(commands) > 0 {
		command = commands[0]
	}
	fmt.Fprintf(out, "%s Executing: %s\n", Octopus(), Cyan.Sprint(command))
}
