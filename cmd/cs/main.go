package main

import (
	"fmt"
	"os"

	"github.com/rkollar/cawa/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// A failed alias already wrote its own output, so its exit status
	// propagates without an extra error line.
	if code, ok := cmd.ExitStatus(err); ok {
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
