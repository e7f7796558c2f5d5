package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasDefinition represents the resolved value behind an alias name: either
// a single shell command line, or an ordered set of command lines that run
// concurrently.
//
// The wire form is untagged. A bare string is a single command, a string
// array is a parallel set:
//
//	"build": "go build ./..."
//	"checks": ["go vet ./...", "go test ./..."]
//
// The order of a parallel set is preserved end to end. It determines output
// labels and exit-code aggregation, never the completion order.
type AliasDefinition struct {
	Commands []string // Command lines handed to the shell, in definition order
	Parallel bool     // True when Commands run concurrently
}

// NewSingle returns a definition holding one shell command line.
func NewSingle(command string) AliasDefinition {
	return AliasDefinition{Commands: []string{command}}
}

// NewParallel returns a definition whose commands run concurrently.
// A one-element parallel set behaves exactly like a single command.
func NewParallel(commands []string) AliasDefinition {
	return AliasDefinition{Commands: commands, Parallel: true}
}

// Display renders the definition the way list and add print it:
// the raw command line for a single, a bracketed list for a parallel set.
func (d AliasDefinition) Display() string {
	if d.Parallel {
		return fmt.Sprintf("[%s]", strings.Join(d.Commands, ", "))
	}
	if len(d.Commands) == 0 {
		return ""
	}
	return d.Commands[0]
}

// MarshalJSON writes the untagged wire form.
func (d AliasDefinition) MarshalJSON() ([]byte, error) {
	if d.Parallel {
		return json.Marshal(d.Commands)
	}
	if len(d.Commands) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(d.Commands[0])
}

// UnmarshalJSON reads the untagged wire form: a JSON string becomes a single
// command, a JSON array of strings becomes a parallel set.
func (d *AliasDefinition) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = NewSingle(single)
		return nil
	}

	var commands []string
	if err := json.Unmarshal(data, &commands); err == nil {
		*d = NewParallel(commands)
		return nil
	}

	return fmt.Errorf("alias definition must be a string or an array of strings, got %s", string(data))
}

// MarshalYAML writes the untagged wire form for YAML documents.
func (d AliasDefinition) MarshalYAML() (interface{}, error) {
	if d.Parallel {
		return d.Commands, nil
	}
	if len(d.Commands) == 0 {
		return "", nil
	}
	return d.Commands[0], nil
}

// UnmarshalYAML reads the untagged wire form from a YAML node: a scalar
// becomes a single command, a sequence becomes a parallel set.
func (d *AliasDefinition) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*d = NewSingle(single)
		return nil
	case yaml.SequenceNode:
		var commands []string
		if err := value.Decode(&commands); err != nil {
			return err
		}
		*d = NewParallel(commands)
		return nil
	default:
		return fmt.Errorf("line %d: alias definition must be a string or a sequence of strings", value.Line)
	}
}
