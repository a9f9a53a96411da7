package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that drains in-flight work on shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, which waits for in-flight requests.
// Errors are logged; shutdown always runs to completion.
func GracefulShutdown(ctx context.Context, server Stopper) {
	slog.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
