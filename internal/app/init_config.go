package app

import (
	"github.com/spf13/cobra"

	"github.com/fusecore/stagefmt/internal/config"
)

// NewInitCmd returns a new cobra command for writing the default configuration.
func NewInitCmd(mgr Manager) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default " + config.FileName + " to the repository root",
		Long: `
Write a commented ` + config.FileName + ` with the built-in settings to the root of
the repository. Without it stagefmt uses the same settings, so the file is only
needed to change them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := mgr.InitConfig(cmd.Context(), force)
			if err != nil {
				return err
			}
			cmd.Printf("Wrote configuration: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")

	return cmd
}
