// Package main provides integration tests for the stagefmt CLI.
package main

import (
	"context"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/fusecore/stagefmt/internal/app"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"stagefmt": func() {
			err := app.Run(context.Background(), os.Args, os.Stdout, os.Stderr)
			os.Exit(app.ExitCode(err))
		},
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir:   "testdata/script",
		Setup: setupGit,
	})
}

// setupGit gives every script an isolated git identity and configuration.
func setupGit(env *testscript.Env) error {
	env.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	env.Setenv("GIT_CONFIG_GLOBAL", env.WorkDir+"/.gitconfig")
	env.Setenv("GIT_AUTHOR_NAME", "Test User")
	env.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	env.Setenv("GIT_COMMITTER_NAME", "Test User")
	env.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	return nil
}
