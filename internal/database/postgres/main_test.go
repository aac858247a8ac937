package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/BrandishSpin_Go/internal/database"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		if connStr != "" {
			pool, err := database.NewPool(connStr, 10, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
			if err != nil {
				fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
			} else if err := database.Migrate(ctx, pool); err != nil {
				fmt.Printf("WARNING: Failed to migrate test database: %v\n", err)
				pool.Close()
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}

	// testcontainers panics when Docker is unavailable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", terminate
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}
