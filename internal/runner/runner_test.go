package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	t.Run("success passes output through", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		r := NewExecRunner(&stdout, &stderr)

		err := r.Run(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "echo out; echo err >&2"},
		})
		require.NoError(t, err)
		assert.Equal(t, "out\n", stdout.String())
		assert.Equal(t, "err\n", stderr.String())
	})

	t.Run("command writers override defaults", func(t *testing.T) {
		t.Parallel()
		var def, own bytes.Buffer
		r := NewExecRunner(&def, &def)

		err := r.Run(context.Background(), Command{
			Name:   "sh",
			Args:   []string{"-c", "printf captured"},
			Stdout: &own,
		})
		require.NoError(t, err)
		assert.Equal(t, "captured", own.String())
		assert.Empty(t, def.String())
	})

	t.Run("arguments are not word-split", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		r := NewExecRunner(&stdout, nil)

		err := r.Run(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", `printf '%s|' "$@"`, "sh", "my file.py", "other.py"},
		})
		require.NoError(t, err)
		assert.Equal(t, "my file.py|other.py|", stdout.String())
	})

	t.Run("working directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var stdout bytes.Buffer
		r := NewExecRunner(&stdout, nil)

		err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd -P"}, Dir: dir})
		require.NoError(t, err)
		assert.NotEmpty(t, stdout.String())
	})

	t.Run("non-zero exit status is preserved", func(t *testing.T) {
		t.Parallel()
		r := NewExecRunner(nil, nil)

		err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 123"}})
		require.Error(t, err)

		var ee *ExitError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 123, ee.Code)
		assert.Equal(t, "sh", ee.Name)
		assert.EqualError(t, err, "sh exited with status 123")
	})

	t.Run("missing binary", func(t *testing.T) {
		t.Parallel()
		r := NewExecRunner(nil, nil)

		err := r.Run(context.Background(), Command{Name: "stagefmt-no-such-binary"})
		require.Error(t, err)

		var ee *ExitError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, NotFoundCode, ee.Code)
		assert.ErrorIs(t, err, exec.ErrNotFound)
		assert.EqualError(t, err, "stagefmt-no-such-binary: command not found")
	})
}

func TestExecRunner_RunMissingPath(t *testing.T) {
	t.Parallel()
	r := NewExecRunner(nil, nil)

	err := r.Run(context.Background(), Command{Name: "/nonexistent/stagefmt/black"})
	var ee *ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, NotFoundCode, ee.Code)
	assert.EqualError(t, err, "/nonexistent/stagefmt/black: command not found")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"exit error", &ExitError{Name: "black", Code: 123}, 123},
		{"wrapped exit error", fmt.Errorf("formatting: %w", &ExitError{Name: "git", Code: 128}), 128},
		{"exit error without code", &ExitError{Name: "git"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()
	c := Command{Name: "git", Args: []string{"add", "--", "a.py"}}
	assert.Equal(t, "git add -- a.py", c.String())
}
