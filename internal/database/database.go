package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/BrandishSpin_Go/internal/database/migrations"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// Migrate applies the embedded goose migrations through the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := useEmbeddedMigrations(); err != nil {
		return err
	}
	defer goose.SetBaseFS(nil)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	return nil
}

// RunMigrationCommand runs a goose command (up, down, status, version,
// redo, reset, up-to, down-to) against the embedded migrations
func RunMigrationCommand(ctx context.Context, pool *pgxpool.Pool, command string, args ...string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := useEmbeddedMigrations(); err != nil {
		return err
	}
	defer goose.SetBaseFS(nil)

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToRunMigrationCmd, command, err)
	}
	return nil
}

func useEmbeddedMigrations() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(gooseDialect); err != nil {
		goose.SetBaseFS(nil)
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return nil
}
