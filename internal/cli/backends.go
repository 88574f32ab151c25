package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/catalog"
	"jersey-quiz-service/internal/config"
	"jersey-quiz-service/internal/infra/memory"
	pgstore "jersey-quiz-service/internal/infra/postgres"
	redisstore "jersey-quiz-service/internal/infra/redis"
	"jersey-quiz-service/internal/infra/sqlite"
	sqlitemigrations "jersey-quiz-service/internal/infra/sqlite/migrations"
	transport "jersey-quiz-service/internal/transport/http"
)

// backends is the storage wiring picked from config.
// SQL (postgres, else sqlite) owns the roster and scores; Redis caches the
// catalog and keeps scores when no SQL store is configured; memory is the fallback.
type backends struct {
	catalog app.CatalogRepository
	scores  app.ScoreStore
	checks  map[string]transport.Checker
	closers []func()
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func openBackends(ctx context.Context, cfg config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{checks: map[string]transport.Checker{}}

	var (
		loader memory.CatalogLoader = memory.NewStaticCatalogLoader(catalog.Seed())
		scores app.ScoreStore
	)

	switch {
	case cfg.Postgres.URL != "":
		if err := migratePostgres(ctx, cfg.Postgres.URL); err != nil {
			return nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		b.checks["postgres"] = transport.CheckFunc(pool.Ping)
		loader = pgstore.NewCatalogLoader(pool)
		scores = pgstore.NewScoreStore(pool)
		logger.Info("connected to postgres")

	case cfg.SQLite.Path != "":
		db, err := openSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, func() { db.Close() })
		b.checks["sqlite"] = transport.CheckFunc(db.PingContext)
		store := sqlite.NewStore(db)
		loader = store
		scores = store
		logger.Info("connected to sqlite", "path", cfg.SQLite.Path)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			b.Close()
			return nil, fmt.Errorf("pinging redis: %w", err)
		}
		b.closers = append(b.closers, func() { client.Close() })
		b.checks["redis"] = transport.CheckFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
		b.catalog = redisstore.NewCatalogRepository(client, loader, config.TTLDuration(cfg.Redis.TTL, catalogTTL))
		if scores == nil {
			scores = redisstore.NewScoreStore(client)
		}
		logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	} else {
		b.catalog = memory.NewCatalogRepository(loader, catalogTTL)
	}

	if scores == nil {
		logger.Warn("no persistent score store configured, scores are kept in memory")
		scores = memory.NewScoreStore()
	}
	b.scores = scores
	return b, nil
}

// openSQLite opens the database file, applies migrations and seeds the roster.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating sqlite dir: %w", err)
		}
	}
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	if err := sqlitemigrations.Run(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := sqlite.NewStore(db).SeedPlayers(ctx, catalog.Seed()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
