package main

import (
	"github.com/emberworks/itemforge/internal/config"
	"github.com/emberworks/itemforge/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		serviceVersion,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
