package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/migrations"

	"github.com/spf13/cobra"
)

func connectDB(ctx context.Context) (database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return dbpostgres.Connect(ctx, cfg.Database)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			db, err := connectDB(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			logger := log.New(cmd.OutOrStdout(), "", log.LstdFlags)
			return migration.Runner{FS: migrations.FS, Logger: logger}.Run(ctx, db.SQLDB())
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo companies and jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			db, err := connectDB(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "demo data seeded")
			return nil
		},
	}
}
