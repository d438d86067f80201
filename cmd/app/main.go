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

	"github.com/luckstr/luckstr-go/internal/bootstrap"
	"github.com/luckstr/luckstr-go/internal/config"
	"github.com/luckstr/luckstr-go/internal/database"
	"github.com/luckstr/luckstr-go/internal/scheduler"
	"github.com/luckstr/luckstr-go/internal/server"
	"github.com/luckstr/luckstr-go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	// Schema check is advisory: Load already enforced the hard requirements.
	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment schema check failed", "error", err)
	} else {
		for _, warning := range warnings {
			slog.Warn(warning)
		}
	}

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), bootstrap.DBMaxConnections, bootstrap.DBMaxIdleTime, bootstrap.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	lotteryService, err := bootstrap.InitializeLotteryService(cfg, dbPool)
	if err != nil {
		slog.Error("Failed to initialize lottery service", "error", err)
		os.Exit(1)
	}

	// Background jobs. Either interval can be zero, in which case that job
	// only runs through the HTTP surface.
	pool := worker.NewPool(bootstrap.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.AnnounceInterval > 0 {
		sched.Schedule(cfg.AnnounceInterval, &worker.AnnounceJob{Service: lotteryService})
	}
	if cfg.DrawInterval > 0 {
		sched.Schedule(cfg.DrawInterval, &worker.DrawJob{Service: lotteryService})
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, lotteryService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     dbPool,
	})
}
