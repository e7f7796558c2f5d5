package notify

import (
	"strings"
	"testing"
	"time"
)

func TestPayload_Title(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		expected string
	}{
		{
			name:     "default binary name",
			program:  "cs",
			expected: "🐙 cs",
		},
		{
			name:     "renamed binary",
			program:  "cawa",
			expected: "🐙 cawa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payload{Program: tt.program}
			if got := p.Title(); got != tt.expected {
				t.Errorf("Title() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPayload_Body(t *testing.T) {
	tests := []struct {
		name     string
		payload  Payload
		expected string
	}{
		{
			name: "success with subsecond duration",
			payload: Payload{
				Alias:    "build",
				Success:  true,
				Duration: 512 * time.Millisecond,
			},
			expected: "Alias 'build' finished successfully in 0.512 s.",
		},
		{
			name: "failure with multisecond duration",
			payload: Payload{
				Alias:    "deploy",
				Success:  false,
				Duration: 2*time.Second + 41*time.Millisecond,
			},
			expected: "Alias 'deploy' failed after 2.041 s.",
		},
		{
			name: "zero duration",
			payload: Payload{
				Alias:    "noop",
				Success:  true,
				Duration: 0,
			},
			expected: "Alias 'noop' finished successfully in 0.000 s.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.Body(); got != tt.expected {
				t.Errorf("Body() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewDesktop(t *testing.T) {
	d := NewDesktop("cs", nil)

	if d == nil {
		t.Fatal("NewDesktop() returned nil")
	}
	if d.program != "cs" {
		t.Errorf("program = %q, want %q", d.program, "cs")
	}
}

func TestBalloonScript_EscapesQuotes(t *testing.T) {
	payload := Payload{
		Program:  "cs",
		Alias:    "it's",
		Success:  true,
		Duration: time.Second,
	}

	script := balloonScript(payload)

	if want := "Alias ''it''s'' finished"; !strings.Contains(script, want) {
		t.Errorf("balloonScript() = %q, want embedded %q", script, want)
	}
}
