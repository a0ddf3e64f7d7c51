package hook

import (
	"fmt"

	"github.com/fusecore/stagefmt/internal/runner"
)

// StagedListFailure reports that the staged files could not be listed.
type StagedListFailure struct {
	Err error
}

func (e *StagedListFailure) Error() string {
	return fmt.Sprintf("listing staged files failed: %v", e.Err)
}

func (e *StagedListFailure) Unwrap() error { return e.Err }

// ExitCode returns the exit status of the failed git invocation.
func (e *StagedListFailure) ExitCode() int { return runner.ExitCode(e.Err) }

// FormatterFailure reports a formatter run that did not succeed.
// No file is re-staged after a FormatterFailure.
type FormatterFailure struct {
	Files []string
	Err   error
}

func (e *FormatterFailure) Error() string {
	return fmt.Sprintf("formatter failed on %d staged file(s): %v", len(e.Files), e.Err)
}

func (e *FormatterFailure) Unwrap() error { return e.Err }

// ExitCode returns the formatter's exit status.
func (e *FormatterFailure) ExitCode() int { return runner.ExitCode(e.Err) }

// IndexUpdateFailure reports that the formatted files could not be re-staged.
type IndexUpdateFailure struct {
	Files []string
	Err   error
}

func (e *IndexUpdateFailure) Error() string {
	return fmt.Sprintf("re-staging %d file(s) failed: %v", len(e.Files), e.Err)
}

func (e *IndexUpdateFailure) Unwrap() error { return e.Err }

// ExitCode returns the exit status of the failed git add.
func (e *IndexUpdateFailure) ExitCode() int { return runner.ExitCode(e.Err) }
