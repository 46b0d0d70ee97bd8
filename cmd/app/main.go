package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/fragrewards/internal/bootstrap"
	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/config"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/persistence"
	"github.com/osse101/fragrewards/internal/player"
	"github.com/osse101/fragrewards/internal/scheduler"
	"github.com/osse101/fragrewards/internal/server"
	"github.com/osse101/fragrewards/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title Frag Rewards API
// @version 1.0
// @description Per-player kill rewards, streaks, missions and achievements
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		fatal("Failed to load achievements", err)
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		fatal("Failed to initialize storage", err)
	}

	events, err := bootstrap.InitializeEventSystem(ctx, cfg, catalog.Achievements)
	if err != nil {
		fatal("Failed to initialize event system", err)
	}

	loc, _ := cfg.Location() // checked by Validate
	clk := clock.NewRealClockIn(loc)
	engineCfg := cfg.EngineConfig()
	registry := player.NewRegistry(persistence.NewStore(storage.Backend), func(playerID string) *engine.Engine {
		return engine.New(engineCfg, engine.Dependencies{
			PlayerID: playerID,
			Clock:    clk,
			Catalog:  catalog.Achievements,
			Bus:      events.Bus,
			Overflow: events.Overflow,
		})
	}, player.WithClock(clk))

	workers := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workers.Start(ctx)
	sched := scheduler.New(workers)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(registry, clk))
	sched.Schedule(cfg.CheckpointInterval, worker.NewCheckpointJob(registry))
	sched.Schedule(cfg.EvictInterval, worker.NewEvictJob(registry, cfg.PlayerIdleTTL))

	srv := server.NewServer(server.Options{
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		Version: cfg.Version,
		Players: registry,
		Ready:   storage.Ready(),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// The signal context is already cancelled; shutdown gets a fresh deadline
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   workers,
		Players:   registry,
		Events:    events,
		DB:        storage.DB,
	})
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
