package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/database"
	"github.com/osse101/BrandishSpin_Go/internal/database/memory"
	"github.com/osse101/BrandishSpin_Go/internal/database/postgres"
	"github.com/osse101/BrandishSpin_Go/internal/repository"
)

// InitializeStore opens the configured spin store. The pool is nil for the
// in-memory backend; otherwise the caller must close it.
func InitializeStore(ctx context.Context, cfg *config.Config) (repository.Spin, *pgxpool.Pool, error) {
	switch cfg.StoreBackend {
	case BackendMemory:
		slog.Info(LogMsgStoreReady, "backend", BackendMemory)
		return memory.NewStore(), nil, nil

	case BackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreReady, "backend", BackendPostgres, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		return postgres.NewSpinRepository(pool), pool, nil
	}

	return nil, nil, fmt.Errorf("%s: store %q", ErrMsgUnknownBackend, cfg.StoreBackend)
}
