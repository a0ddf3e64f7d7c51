package app

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/fusecore/stagefmt/internal/hook"
	"github.com/fusecore/stagefmt/internal/runner"
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) RunHook(ctx context.Context) (hook.Result, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(hook.Result)
	return res, args.Error(1)
}

func (m *MockManager) InstallHook(ctx context.Context, force bool) (string, error) {
	args := m.Called(ctx, force)
	return args.String(0), args.Error(1)
}

func (m *MockManager) InitConfig(ctx context.Context, force bool) (string, error) {
	args := m.Called(ctx, force)
	return args.String(0), args.Error(1)
}

func (m *MockManager) Close() error {
	return nil
}

// MockGitter is a test double for the Gitter interface.
type MockGitter struct {
	RootFunc        func(ctx context.Context) (string, error)
	GitPathFunc     func(ctx context.Context, name string) (string, error)
	StagedFilesFunc func(ctx context.Context) ([]string, error)
	AddFunc         func(ctx context.Context, paths []string) error

	added [][]string
}

func (m *MockGitter) Root(ctx context.Context) (string, error) {
	if m.RootFunc != nil {
		return m.RootFunc(ctx)
	}
	return "/repo", nil
}

func (m *MockGitter) GitPath(ctx context.Context, name string) (string, error) {
	if m.GitPathFunc != nil {
		return m.GitPathFunc(ctx, name)
	}
	return "/repo/.git/" + name, nil
}

func (m *MockGitter) StagedFiles(ctx context.Context) ([]string, error) {
	if m.StagedFilesFunc != nil {
		return m.StagedFilesFunc(ctx)
	}
	return nil, nil
}

func (m *MockGitter) Add(ctx context.Context, paths []string) error {
	m.added = append(m.added, paths)
	if m.AddFunc != nil {
		return m.AddFunc(ctx, paths)
	}
	return nil
}

// recordingRunner records formatter invocations and fails them with err.
type recordingRunner struct {
	commands []runner.Command
	err      error
}

func (r *recordingRunner) Run(_ context.Context, c runner.Command) error {
	r.commands = append(r.commands, c)
	return r.err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
