// Package main provides the entry point for the taxtrace CLI.
package main

import (
	"errors"
	"os"

	"github.com/taxtrace-ai/taxtrace-go/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Print error (SilenceErrors suppresses Cobra output)
		if err.Error() != "" {
			os.Stderr.WriteString("Error: " + err.Error() + "\n")
		}
		// Check for ExitError to get specific exit code
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
