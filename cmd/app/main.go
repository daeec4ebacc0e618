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

	"github.com/emberworks/itemforge/internal/bootstrap"
	"github.com/emberworks/itemforge/internal/config"
	"github.com/emberworks/itemforge/internal/server"
)

const (
	serviceName    = "itemforge"
	serviceVersion = "0.1.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingItemforge, "version", serviceVersion)
	slog.Info(bootstrap.LogMsgConfigurationLoaded, "port", cfg.Port, "items_path", cfg.ItemsPath)

	registry, err := bootstrap.InitializeRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize mechanic registry: %v", err)
	}

	eventBus, _, err := bootstrap.InitializeEventSystem(registry)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	store, err := bootstrap.LoadDefinitions(context.Background(), cfg.ItemsPath, registry, eventBus)
	if err != nil {
		log.Fatalf("Failed to load item definitions: %v", err)
	}

	reactor, collector, err := bootstrap.RegisterEventHandlers(registry, eventBus)
	if err != nil {
		log.Fatalf("Failed to register event handlers: %v", err)
	}

	srv := server.NewServer(cfg.Port, store)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:           srv,
		Reactor:          reactor,
		MetricsCollector: collector,
	})
}
