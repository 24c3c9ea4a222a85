package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jarcd/hello-service/internal/config"
)

// Run listens on the configured port and serves handler until ctx is cancelled.
func Run(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, ln, cfg, handler, logger)
}

// Serve serves handler on ln until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to cfg.ShutdownTimeout to finish.
// A clean shutdown returns nil.
func Serve(ctx context.Context, ln net.Listener, cfg config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	srv := newHTTPServer(cfg, handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
