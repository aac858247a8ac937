package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/oracle"
	"github.com/osse101/BrandishSpin_Go/internal/scheduler"
	"github.com/osse101/BrandishSpin_Go/internal/server"
	"github.com/osse101/BrandishSpin_Go/internal/sse"
	"github.com/osse101/BrandishSpin_Go/internal/worker"
)

// ShutdownComponents holds everything that needs graceful shutdown. Nil
// fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	LocalOracle        *oracle.LocalOracle
	Hub                *sse.Hub
	Subscribers        *Subscribers
	ResilientPublisher *event.ResilientPublisher
	DBPool             *pgxpool.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server, so no new spins or callbacks arrive
//  2. scheduler and workers, so no payout retries start
//  3. local oracle, cancelling undelivered words and waiting for callbacks in flight
//  4. fan-out subscribers, then the publisher so pending events are flushed
//  5. the database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop(ctx)
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.LocalOracle != nil {
		shutdownComponent(ctx, ComponentOracle, c.LocalOracle)
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Subscribers != nil {
		if c.Subscribers.Notifier != nil {
			shutdownComponent(ctx, ComponentNotifier, c.Subscribers.Notifier)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		shutdownComponent(ctx, ComponentPublisher, c.ResilientPublisher)
	}

	// the publisher's final drain may still forward to redis
	if c.Subscribers != nil && c.Subscribers.Redis != nil {
		if err := c.Subscribers.Redis.Close(); err != nil {
			slog.Error(ComponentRedis+LogMsgComponentShutdownFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownComponent(ctx context.Context, name string, s shutdownable) {
	if err := s.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgComponentShutdownFailed, "error", err)
	}
}
