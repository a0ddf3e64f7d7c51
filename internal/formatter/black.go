package formatter

import (
	"context"
	"strconv"

	"github.com/fusecore/stagefmt/internal/runner"
)

// DefaultBlackCommand is the executable name of the black formatter.
const DefaultBlackCommand = "black"

var _ Formatter = (*Black)(nil)

// Black formats Python sources with the black CLI.
type Black struct {
	runner  runner.Runner
	command string
	dir     string
	opts    Options
}

// NewBlack creates a Black formatter that runs command from dir.
// An empty command means DefaultBlackCommand.
func NewBlack(r runner.Runner, command, dir string, opts Options) *Black {
	if command == "" {
		command = DefaultBlackCommand
	}
	return &Black{runner: r, command: command, dir: dir, opts: opts}
}

// Args returns the argument list black is invoked with for paths.
func (b *Black) Args(paths []string) []string {
	var args []string
	if b.opts.TargetVersion != "" {
		args = append(args, "--target-version", b.opts.TargetVersion)
	}
	if b.opts.LineLength > 0 {
		args = append(args, "--line-length", strconv.Itoa(b.opts.LineLength))
	}
	if b.opts.SkipStringNormalization {
		args = append(args, "--skip-string-normalization")
	}
	args = append(args, "--")
	return append(args, paths...)
}

// Format runs black once over all paths. Its output goes straight to the
// user; a non-zero exit is returned as a *runner.ExitError.
func (b *Black) Format(ctx context.Context, paths []string) error {
	return b.runner.Run(ctx, runner.Command{
		Name: b.command,
		Args: b.Args(paths),
		Dir:  b.dir,
	})
}
