package bootstrap

import (
	"context"
	"log/slog"

	"github.com/emberworks/itemforge/internal/durability"
	"github.com/emberworks/itemforge/internal/metrics"
	"github.com/emberworks/itemforge/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	Reactor          *durability.Reactor
	MetricsCollector *metrics.EventMetricsCollector
}

// GracefulShutdown performs graceful shutdown of all application components.
// The server stops first so no new requests arrive, then event
// subscribers detach so late publishes fall on deaf ears rather than
// half-torn-down handlers.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Reactor != nil {
		components.Reactor.Close()
	}
	if components.MetricsCollector != nil {
		components.MetricsCollector.Close()
	}

	slog.Info(LogMsgServerStopped)
}
