package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fusecore/stagefmt/internal/runner"
)

// Run executes stagefmt with args and returns the first error. Use ExitCode to
// turn the error into a process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}
	defer func() { _ = lazy.Close() }()

	rootCmd := NewRootCmd(lazy, logLevel, stdout, stderr)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// ExitCode maps an error returned by Run to a process exit status: 0 for nil,
// the failing collaborator's status when known and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		if code := coded.ExitCode(); code > 0 {
			return code
		}
	}
	return runner.ExitCode(err)
}
