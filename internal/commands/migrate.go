package commands

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/pkg/database"
)

func newMigrateCommand(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, path, a.logger(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().StringVar(&path, "path", "file://migrations", "migrations source URL")

	return cmd
}
