package bootstrap

import "time"

// =============================================================================
// Database Pool Configuration
// =============================================================================

const (
	// DBMaxConnections caps the connection pool; the lottery has one writer
	// path, so a small pool is plenty.
	DBMaxConnections = 10

	// DBMaxIdleTime is how long an idle connection is kept before recycling
	DBMaxIdleTime = 5 * time.Minute

	// DBMaxLifetime bounds the total lifetime of a pooled connection
	DBMaxLifetime = 30 * time.Minute
)

// =============================================================================
// Worker Pool Configuration
// =============================================================================

const (
	// WorkerCount is the number of background job workers. Announcement and
	// draw jobs are serialized through a single worker so two draws can
	// never run in-process at the same time.
	WorkerCount = 1

	// WorkerQueueSize bounds pending scheduled jobs
	WorkerQueueSize = 4
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopped     = "Scheduler stopped"
	LogMsgWorkerPoolStopped    = "Worker pool stopped"
	LogMsgDatabaseClosed       = "Database pool closed"
	LogMsgShutdownComplete     = "Shutdown complete"
)
