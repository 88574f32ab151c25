package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"jersey-quiz-service/internal/config"
	pgmigrations "jersey-quiz-service/internal/infra/postgres/migrations"
	"jersey-quiz-service/internal/logging"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and seed the player roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if cfg.Postgres.URL == "" && cfg.SQLite.Path == "" {
		return fmt.Errorf("no sql database configured: set postgres.url or sqlite.path")
	}
	if cfg.Postgres.URL != "" {
		if err := migratePostgres(ctx, cfg.Postgres.URL); err != nil {
			return err
		}
		logger.Info("postgres migrations applied")
	}
	if cfg.SQLite.Path != "" {
		db, err := openSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return err
		}
		db.Close()
		logger.Info("sqlite migrations applied", "path", cfg.SQLite.Path)
	}
	return nil
}

func migratePostgres(ctx context.Context, dsn string) error {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
