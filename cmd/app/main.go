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

	"github.com/osse101/TCGTourney_Go/internal/bootstrap"
	"github.com/osse101/TCGTourney_Go/internal/config"
	"github.com/osse101/TCGTourney_Go/internal/server"
	"github.com/osse101/TCGTourney_Go/internal/session"
	"github.com/osse101/TCGTourney_Go/internal/sse"
)

// @title TCG Tourney API
// @version 1.0
// @description Deterministic seeded single-elimination trading card tournaments.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	base, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	eventBus, err := bootstrap.InitializeEventSystem(hub)
	if err != nil {
		hub.Stop()
		return err
	}

	sessions := session.NewService(session.Config{
		CacheSize:   cfg.SessionCacheSize,
		TTL:         cfg.SessionTTL,
		DefaultSeed: cfg.DefaultSeed,
	}, base, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, sessions, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv)
	return nil
}
