package repo

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fusecore/stagefmt/internal/runner"
)

var (
	_ VersionControl = (*CLIGitter)(nil)
	_ Locator        = (*CLIGitter)(nil)
)

// CLIGitter implements VersionControl and Locator using the git CLI.
type CLIGitter struct {
	runner runner.Runner
	dir    string
	root   string
}

// NewCLIGitter creates a CLIGitter for the repository containing dir.
// An empty dir means the process working directory.
func NewCLIGitter(r runner.Runner, dir string) *CLIGitter {
	return &CLIGitter{runner: r, dir: dir}
}

// Root returns the top-level directory of the git repository.
func (g *CLIGitter) Root(ctx context.Context) (string, error) {
	if g.root != "" {
		return g.root, nil
	}
	out, err := g.output(ctx, g.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find git root: %w", err)
	}
	g.root = strings.TrimSpace(out)
	return g.root, nil
}

// GitPath resolves name inside the git directory. Linked worktrees and
// GIT_DIR overrides are handled by git itself.
func (g *CLIGitter) GitPath(ctx context.Context, name string) (string, error) {
	root, err := g.Root(ctx)
	if err != nil {
		return "", err
	}
	out, err := g.output(ctx, root, "rev-parse", "--git-path", name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve git path %q: %w", name, err)
	}
	p := strings.TrimSpace(out)
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return p, nil
}

// StagedFiles lists staged paths with status Added, Copied or Modified.
// Paths are relative to the repository root.
func (g *CLIGitter) StagedFiles(ctx context.Context) ([]string, error) {
	root, err := g.Root(ctx)
	if err != nil {
		return nil, err
	}

	// -z keeps paths verbatim: no quoting and no splitting on whitespace.
	out, err := g.output(ctx, root,
		"diff", "--cached", "--name-only", "--diff-filter="+StagedDiffFilter, "-z")
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}

	return splitNUL(out), nil
}

// Add stages paths, which are relative to the repository root.
func (g *CLIGitter) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	root, err := g.Root(ctx)
	if err != nil {
		return err
	}

	args := append([]string{"add", "--"}, paths...)
	if err := g.runner.Run(ctx, runner.Command{Name: "git", Args: args, Dir: root}); err != nil {
		return fmt.Errorf("git add failed: %w", err)
	}
	return nil
}

// output runs a git query and returns its stdout. Stderr is folded into the
// error instead of reaching the user.
func (g *CLIGitter) output(ctx context.Context, dir string, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	err := g.runner.Run(ctx, runner.Command{Name: "git", Args: args, Dir: dir, Stdout: &out, Stderr: &errOut})
	if err != nil {
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			return "", fmt.Errorf("%w (output: %s)", err, msg)
		}
		return "", err
	}
	return out.String(), nil
}

func splitNUL(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, "\x00") {
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
