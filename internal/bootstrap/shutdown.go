package bootstrap

import (
	"context"
	"log/slog"

	"github.com/luckstr/luckstr-go/internal/database"
	"github.com/luckstr/luckstr-go/internal/scheduler"
	"github.com/luckstr/luckstr-go/internal/server"
	"github.com/luckstr/luckstr-go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new triggers)
// 2. Scheduler (stop enqueueing new jobs)
// 3. Worker pool (drain in-flight draw runs)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	// Stop the pool after the scheduler so queued jobs finish; an in-flight
	// draw holds a round claim and must complete or release it.
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgShutdownComplete)
}
