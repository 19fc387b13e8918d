package main

import (
	"fmt"

	"github.com/shenikar/shomrim_dispatch/internal/config"
	"github.com/shenikar/shomrim_dispatch/pkg/logger"
	"github.com/shenikar/shomrim_dispatch/pkg/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Applies the embedded schema migrations to DATABASE_URL.

Safe to run multiple times: an up-to-date schema is left unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)
			log.SetOutput(cmd.OutOrStdout())
			return postgres.RunMigrations(cfg.DatabaseURL, log)
		},
	}
}
