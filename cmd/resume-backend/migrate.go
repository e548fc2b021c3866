package main

import (
	"context"

	"github.com/spf13/cobra"

	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/storage/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return db.RunMigrations(ctx, sqlDB)
}
