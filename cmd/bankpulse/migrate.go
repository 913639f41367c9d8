package main

import (
	"context"
	"fmt"
	"log/slog"

	"bankpulse/internal/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the aggregate schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := migrationRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			if err := runner.Run(cmd.Context()); err != nil {
				return err
			}
			slog.Info("migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration, dropping aggregates and the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := migrationRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			if err := runner.Down(); err != nil {
				return err
			}
			slog.Info("migrations rolled back")
			return nil
		},
	})

	return cmd
}

func migrationRunner(ctx context.Context) (*database.MigrationRunner, func(), error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}
	return database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath), closeDB, nil
}
