package engine

import (
	"reflect"
	"testing"
)

func TestComposeCommands_NoArgsReturnsUnchanged(t *testing.T) {
	commands := []string{"go build ./...", "go vet ./..."}

	composed := ComposeCommands(commands, nil)

	if !reflect.DeepEqual(composed, commands) {
		t.Errorf("ComposeCommands = %v, want unchanged %v", composed, commands)
	}
}

func TestComposeCommands_AppendsToEveryCommand(t *testing.T) {
	commands := []string{"npm run server", "npm run client"}

	composed := ComposeCommands(commands, []string{"--port", "8080"})

	want := []string{"npm run server --port 8080", "npm run client --port 8080"}
	if !reflect.DeepEqual(composed, want) {
		t.Errorf("ComposeCommands = %v, want %v", composed, want)
	}
}

func TestComposeCommands_QuotesArgumentsWithSpaces(t *testing.T) {
	composed := ComposeCommands([]string{"grep -r"}, []string{"two words"})

	want := []string{"grep -r 'two words'"}
	if !reflect.DeepEqual(composed, want) {
		t.Errorf("ComposeCommands = %v, want %v", composed, want)
	}
}

func TestComposeCommands_QuotesEmptyArgument(t *testing.T) {
	composed := ComposeCommands([]string{"run"}, []string{""})

	want := []string{"run ''"}
	if !reflect.DeepEqual(composed, want) {
		t.Errorf("ComposeCommands = %v, want %v", composed, want)
	}
}

func TestComposeCommands_EmptyCommandSet(t *testing.T) {
	composed := ComposeCommands(nil, []string{"--flag"})

	if len(composed) != 0 {
		t.Errorf("ComposeCommands = %v, want empty", composed)
	}
}
