package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/BrandishSpin_Go/docs"
	"github.com/osse101/BrandishSpin_Go/internal/bootstrap"
	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/database"
	"github.com/osse101/BrandishSpin_Go/internal/handler"
	"github.com/osse101/BrandishSpin_Go/internal/scheduler"
	"github.com/osse101/BrandishSpin_Go/internal/server"
	"github.com/osse101/BrandishSpin_Go/internal/spin"
	"github.com/osse101/BrandishSpin_Go/internal/sse"
	"github.com/osse101/BrandishSpin_Go/internal/stats"
	"github.com/osse101/BrandishSpin_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

// @title                      Brandish Spin API
// @version                    1.0
// @description                Pay-to-play spin game settled by a randomness oracle.
// @BasePath                   /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Load already enforced what the server needs; the .env check is advisory
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// everything registered here is stopped on the way out, including on
	// startup failure
	var components bootstrap.ShutdownComponents
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, components)
	}()

	repo, dbPool, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}
	components.DBPool = dbPool

	ledgerClient, memLedger, err := bootstrap.InitializeLedger(cfg)
	if err != nil {
		return err
	}

	oracleClient, localOracle, err := bootstrap.InitializeOracle(cfg)
	if err != nil {
		return err
	}
	components.LocalOracle = localOracle

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	components.ResilientPublisher = publisher

	hub := sse.NewHub()
	hub.Start()
	components.Hub = hub

	subs, err := bootstrap.RegisterEventHandlers(ctx, cfg, bus, hub)
	components.Subscribers = subs
	if err != nil {
		return err
	}

	statsService := stats.NewService(repo)
	spinService, err := spin.NewService(repo, statsService, ledgerClient, oracleClient, publisher, cfg.SpinConfig())
	if err != nil {
		return fmt.Errorf("invalid spin configuration: %w", err)
	}
	if localOracle != nil {
		localOracle.Bind(spinService.OnRandomnessReady)
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	components.WorkerPool = pool

	sched := scheduler.New(pool)
	if err := sched.Schedule(cfg.PayoutRetrySchedule, worker.NewPayoutRetryJob(spinService, spin.DefaultFailedPayoutBatch)); err != nil {
		return err
	}
	if err := sched.Schedule(cfg.PoolMonitorSchedule, worker.NewPoolMonitorJob(ledgerClient, cfg.PoolLowWatermark, cfg.TokenDecimals, cfg.TokenSymbol)); err != nil {
		return err
	}
	sched.Start()
	components.Scheduler = sched

	// a nil *pgxpool.Pool must not become a non-nil interface
	var readiness database.Pool
	if dbPool != nil {
		readiness = dbPool
	}

	opts := server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		OracleSecret:   cfg.OracleSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Display:        handler.Display{Decimals: cfg.TokenDecimals, Symbol: cfg.TokenSymbol},
		Ledger:         ledgerClient,
	}
	// players on the in-memory ledger can only be funded through the admin routes
	if memLedger != nil {
		opts.DevLedger = memLedger
	}
	srv := server.NewServer(opts, readiness, spinService, statsService, hub)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		return nil
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}
