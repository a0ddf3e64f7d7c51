package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	InstallCmdName    = "install"
	PreCommitHookName = "pre-commit"

	hookMarker = "# installed by stagefmt"
)

type HookExistsError struct {
	Path string
}

func (e *HookExistsError) Error() string {
	return fmt.Sprintf("a pre-commit hook not written by stagefmt already exists: %s (use --force to replace it)",
		e.Path)
}

func hookScript(executable string) string {
	return "#!/bin/sh\n" +
		hookMarker + "\n" +
		"exec " + shellQuote(executable) + "\n"
}

// shellQuote wraps s in single quotes for /bin/sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// NewInstallCmd returns a new cobra command for installing the git hook.
func NewInstallCmd(mgr Manager) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   InstallCmdName,
		Short: "Install stagefmt as the repository's pre-commit hook",
		Long: `
Write a pre-commit hook into the repository's hooks directory that runs this
stagefmt executable before every commit. An existing hook that stagefmt did not
write is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := mgr.InstallHook(cmd.Context(), force)
			if err != nil {
				return err
			}
			cmd.Printf("Installed pre-commit hook: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing pre-commit hook")

	return cmd
}
