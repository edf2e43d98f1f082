package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PotionGacha_Go/internal/database"
)

// Stopper is anything that drains in-flight work before returning
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Pool   database.Pool
}

// GracefulShutdown stops the HTTP server first so no new transactions begin,
// then closes storage. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingStorage)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
