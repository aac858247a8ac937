package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/database"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

const usage = `Usage: migrate <command> [args]

Commands:
  up                 apply all pending migrations
  up-to VERSION      apply migrations up to VERSION
  down               roll back the last migration
  down-to VERSION    roll back to VERSION
  redo               roll back and reapply the last migration
  reset              roll back all migrations
  status             print the status of every migration
  version            print the current schema version
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	logger.InitLogger(logger.DefaultConfig())

	// only the database settings matter here, so skip full validation
	cfg := &config.Config{
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "brandishspin"),
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), 2, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrationCommand(context.Background(), pool, flag.Arg(0), flag.Args()[1:]...); err != nil {
		slog.Error("Migration failed", "command", flag.Arg(0), "error", err)
		pool.Close()
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
