// ABOUTME: Entry point for the PC build advisor service
// ABOUTME: Provides an HTTP API for build generation, compatibility checks, and budget planning

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markalston/pc-build-advisor/cache"
	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/config"
	"github.com/markalston/pc-build-advisor/handlers"
	"github.com/markalston/pc-build-advisor/logger"
	"github.com/markalston/pc-build-advisor/middleware"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/markalston/pc-build-advisor/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting PC Build Advisor")

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "source", cat.Source(), "components", cat.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize build cache
	cacheTTL := time.Duration(cfg.BuildCacheTTL) * time.Second
	store := services.NewBuildStore(cache.New[*models.FinishedBuild](ctx, cacheTTL))
	slog.Info("Build cache initialized", "ttl", cacheTTL)

	h := handlers.NewHandler(cfg, cat, store)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		slog.Info("Rate limiting enabled", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		slog.Info("CORS: no origins allowed, cross-origin requests blocked")
	} else {
		slog.Info("CORS configured", "origins", cfg.CORSAllowedOrigins)
	}

	mux := handlers.NewRouter(h, cfg.CORSAllowedOrigins, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
