// Package main is the entry point for the hello service HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/jarcd/hello-service/internal/buildinfo"
	"github.com/jarcd/hello-service/internal/config"
	"github.com/jarcd/hello-service/internal/logging"
	"github.com/jarcd/hello-service/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(cfg.Log, os.Stderr)
	log.Logger = logger

	logger.Info().
		Str("build", buildinfo.String()).
		Str("port", cfg.Server.Port).
		Bool("rate_limit", cfg.RateLimit.Enabled()).
		Msg("Starting server")

	// Create server dependencies
	deps := &server.Dependencies{
		Config: cfg,
		Logger: logger,
	}
	router := server.New(deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server, router, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}
