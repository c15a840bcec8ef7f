package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/planningtools/planning-sheets/commands"
	"github.com/planningtools/planning-sheets/planning"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to distinct exit codes so that a calling
// harness (cron, systemd) can distinguish failure classes.
func exitCode(err error) int {
	var configuration *planning.ConfigurationError
	var authentication *planning.AuthenticationError
	var source *planning.SourceUnavailableError
	var target *planning.TargetWriteError

	switch {
	case errors.As(err, &configuration):
		return 1

	case errors.As(err, &authentication):
		return 2

	case errors.As(err, &source):
		return 3

	case errors.As(err, &target):
		return 4

	default:
		return 5
	}
}
