// Package runner executes external programs with an explicit argument list.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
)

// NotFoundCode is the exit status reported when the program cannot be found,
// matching what a POSIX shell returns for an unknown command.
const NotFoundCode = 127

// Command describes a single program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string

	// Stdout and Stderr receive the program's output. A nil Stdout
	// uses the Runner's default writer.
	Stdout io.Writer
	Stderr io.Writer
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs external programs.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// ExitError reports a program that did not exit successfully.
type ExitError struct {
	Name string
	Args []string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Code == NotFoundCode && (errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, fs.ErrNotExist)) {
		return fmt.Sprintf("%s: command not found", e.Name)
	}
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status carried by err, or 0 if err is nil and 1
// if no status is known.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) && ee.Code > 0 {
		return ee.Code
	}
	return 1
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates an ExecRunner that passes program output through to
// the given writers unless a Command overrides them.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	//nolint:gosec // argv is built by the caller, never by a shell
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = pick(c.Stdout, r.stdout)
	cmd.Stderr = pick(c.Stderr, r.stderr)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	exitErr := &ExitError{Name: c.Name, Args: c.Args, Code: 1, Err: err}

	var ee *exec.ExitError
	switch {
	case errors.As(err, &ee):
		if code := ee.ExitCode(); code > 0 {
			exitErr.Code = code
		}
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		exitErr.Code = NotFoundCode
	}
	return exitErr
}

func pick(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
