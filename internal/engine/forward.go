package engine

import (
	"github.com/kballard/go-shellquote"
)

// ComposeCommands appends the passthrough arguments to every command in the
// set. Each argument is quoted into exactly one shell token, so values
// containing spaces or shell metacharacters reach the child's argv unsplit
// and uninterpreted. With no arguments the command set comes back unchanged.
func ComposeCommands(commands []string, args []string) []string {
	if len(args) == 0 {
		return commands
	}

	suffix := shellquote.Join(args...)
	composed := make([]string, len(commands))
	for i, command := range commands {
		composed[i] = command + " " + suffix
	}
	return composed
}
