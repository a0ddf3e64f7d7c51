package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fusecore/stagefmt/internal/repo"
	"github.com/fusecore/stagefmt/internal/runner"
	"github.com/fusecore/stagefmt/internal/validator"
)

// Version is the current version of stagefmt, set at build time.
var Version = "dev"

var LongDescription = `
stagefmt is a git pre-commit hook. Run without arguments, it formats the staged
Python files with black (target py312, 80 columns, string quotes left alone)
and stages the formatted files again. A formatter failure blocks the commit.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "stagefmt",
		Short:         "Format staged files before they are committed",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() || cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}

			// Collaborator output goes straight to the user.
			r := runner.NewExecRunner(stdout, stderr)
			gitter := repo.NewCLIGitter(r, "")

			// Outside a repository the log file is skipped; the command reports the error.
			logPath, _ := gitter.GitPath(cmd.Context(), LogFile)
			logger, closer, err := setupLogger(stderr, ll, logPath)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			realMgr := NewCLIManager(logger, gitter, r, validator.NewSanthoshCompiler())
			realMgr.logCloser = closer
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := lazy.RunHook(cmd.Context())
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(NewInstallCmd(lazy))
	rootCmd.AddCommand(NewInitCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
