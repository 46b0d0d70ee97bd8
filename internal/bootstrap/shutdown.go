package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/fragrewards/internal/player"
	"github.com/osse101/fragrewards/internal/scheduler"
	"github.com/osse101/fragrewards/internal/server"
	"github.com/osse101/fragrewards/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Players   *player.Registry
	Events    *EventSystem
	DB        *pgxpool.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. scheduler and workers (no more ticks or checkpoints race the close)
//  3. players (end sessions, drain notifications, final checkpoint)
//  4. event sinks, then the database
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingJobs)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Workers != nil {
		c.Workers.Stop()
	}

	slog.Info(LogMsgClosingPlayers)
	if c.Players != nil {
		if err := c.Players.Close(ctx); err != nil {
			slog.Error(LogMsgPlayerCloseFailed, "error", err)
		}
	}

	if c.Events != nil {
		if err := c.Events.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
