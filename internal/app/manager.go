package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fusecore/stagefmt/internal/config"
	"github.com/fusecore/stagefmt/internal/formatter"
	"github.com/fusecore/stagefmt/internal/hook"
	"github.com/fusecore/stagefmt/internal/repo"
	"github.com/fusecore/stagefmt/internal/runner"
	"github.com/fusecore/stagefmt/internal/validator"
)

// Manager defines the operations behind the stagefmt commands.
type Manager interface {
	RunHook(ctx context.Context) (hook.Result, error)
	InstallHook(ctx context.Context, force bool) (string, error)
	InitConfig(ctx context.Context, force bool) (string, error)
	Close() error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) RunHook(ctx context.Context) (hook.Result, error) {
	return l.check().RunHook(ctx)
}

func (l *LazyManager) InstallHook(ctx context.Context, force bool) (string, error) {
	return l.check().InstallHook(ctx, force)
}

func (l *LazyManager) InitConfig(ctx context.Context, force bool) (string, error) {
	return l.check().InitConfig(ctx, force)
}

// Close closes the inner manager, if any.
func (l *LazyManager) Close() error {
	if l.inner == nil {
		return nil
	}
	return l.inner.Close()
}

// Gitter is the git access CLIManager needs.
type Gitter interface {
	repo.VersionControl
	repo.Locator
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger     *slog.Logger
	gitter     Gitter
	runner     runner.Runner
	compiler   validator.Compiler
	logCloser  io.Closer
	executable func() (string, error)
}

func NewCLIManager(l *slog.Logger, g Gitter, r runner.Runner, c validator.Compiler) *CLIManager {
	return &CLIManager{
		logger:     l,
		gitter:     g,
		runner:     r,
		compiler:   c,
		executable: os.Executable,
	}
}

// RunHook formats and re-stages the staged files matching the configured
// extensions.
func (m *CLIManager) RunHook(ctx context.Context) (hook.Result, error) {
	root, err := m.gitter.Root(ctx)
	if err != nil {
		return hook.Result{}, &hook.StagedListFailure{Err: err}
	}

	cfg, err := config.Load(root, m.compiler)
	if err != nil {
		return hook.Result{}, err
	}
	m.logger.Debug("running pre-commit hook", "root", root, "config", cfg.Path,
		"extensions", cfg.Extensions, "formatter", cfg.Formatter.Command)

	black := formatter.NewBlack(m.runner, cfg.Formatter.Command, root, cfg.Formatter.Options())
	res, err := hook.New(m.gitter, black, cfg.Extensions, m.logger).Run(ctx)
	if err != nil {
		return res, err
	}

	if res.NoOp() {
		m.logger.Debug("no staged files to format")
	} else {
		m.logger.Debug("formatted and re-staged files", "count", len(res.Files))
	}
	return res, nil
}

// InstallHook writes a pre-commit hook that runs this executable. A hook that
// stagefmt did not write is only replaced when force is set.
func (m *CLIManager) InstallHook(ctx context.Context, force bool) (string, error) {
	hooksDir, err := m.gitter.GitPath(ctx, "hooks")
	if err != nil {
		return "", err
	}
	path := filepath.Join(hooksDir, PreCommitHookName)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !strings.Contains(string(existing), hookMarker) {
			return "", &HookExistsError{Path: path}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to read existing hook: %w", err)
	}

	exe, err := m.executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate stagefmt executable: %w", err)
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}
	//nolint:gosec // git hooks must be executable
	if err := os.WriteFile(path, []byte(hookScript(exe)), 0o755); err != nil {
		return "", fmt.Errorf("failed to write hook: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to make hook executable: %w", err)
	}

	m.logger.Debug("installed pre-commit hook", "path", path, "executable", exe)
	return path, nil
}

// InitConfig writes the default configuration file to the repository root.
func (m *CLIManager) InitConfig(ctx context.Context, force bool) (string, error) {
	root, err := m.gitter.Root(ctx)
	if err != nil {
		return "", err
	}
	path, err := config.WriteDefault(root, force)
	if err != nil {
		return "", err
	}
	m.logger.Debug("wrote default configuration", "path", path)
	return path, nil
}

// Close releases the log file.
func (m *CLIManager) Close() error {
	if m.logCloser == nil {
		return nil
	}
	return m.logCloser.Close()
}
