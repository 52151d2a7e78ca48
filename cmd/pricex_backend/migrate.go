package main

import (
	"errors"
	"log/slog"

	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/SscSPs/pricex_locale/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var migrationsPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Applies Postgres migrations for the preference store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL must be set to run migrations")
			}
			logger.Info("Running database migrations...")
			return database.RunMigrations(cfg.DatabaseURL, migrationsPath, logger)
		},
	}
	cmd.Flags().StringVar(&migrationsPath, "path", "file://migrations", "migration source URL")
	return cmd
}
