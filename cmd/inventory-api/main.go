// Package main is the entry point for the inventory API.
// A single process serves categories, products and SKUs over HTTP.
//
// 12-Factor App compilance:
//   - I. Codebase: Single codebase tracked in version control
//   - II. Dependencies: Managed via go.mod
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes (with the postgres driver)
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/inventory-api
//
// Environment Variables:
//
//	INV_ENVIRONMENT     - Deployment environment (development, staging, production)
//	INV_SERVER_PORT     - HTTP server port (default: 8080)
//	INV_DATABASE_DRIVER - memory (default) or postgres
//	INV_DATABASE_URL    - PostgreSQL connection string
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/application/service"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/config"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/logging"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/persistance/postgres"
	"github.com/hapkiduki/inventory-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/inventory-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/inventory-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// store is what the entry point needs from either backend.
type store interface {
	port.HealthChecker
	Categories() repository.CategoryRepository
	Products() repository.ProductRepository
	SKUs() repository.SKURepository
	Close()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting inventory API",
		"version", version,
		"environment", cfg.App.Environment,
		"driver", cfg.Database.Driver,
	)

	// Create context that listens for shutdowns signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.NewAdapter(log)

	st, err := openStore(ctx, cfg.Database, logAdapter)
	if err != nil {
		return err
	}
	defer st.Close()

	services := handler.Services{
		Categories: service.NewCategoryService(st.Categories(), st.Products(), logAdapter),
		Products:   service.NewProductService(st.Categories(), st.Products(), st.SKUs(), logAdapter, cfg.Pagination.MaxPageSize),
		SKUs:       service.NewSKUService(st.Products(), st.SKUs(), logAdapter),
		Store:      st,
	}

	opts := handler.Options{
		Version:            version,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RequestTimeout:     cfg.Server.RequestTimeout,
		MaxRequestSize:     cfg.Server.MaxRequestSize,
		DefaultPageSize:    cfg.Pagination.DefaultPageSize,
		StartedAt:          startedAt,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimit = &middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RPS,
			Burst:             cfg.RateLimit.Burst,
			KeyFunc:           middleware.ClientIP,
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.NewRouter(opts, services, logAdapter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal or a failed listener
	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return err
	}
	log.Info("Server shutdown complete")
	return nil
}

// openStore connects the backend selected by cfg.Driver.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log port.Logger) (store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pool, err := postgres.NewPool(connectCtx, cfg)
		if err != nil {
			return nil, err
		}
		st := postgres.NewStore(pool)
		if cfg.AutoMigrate {
			if err := st.Migrate(connectCtx); err != nil {
				st.Close()
				return nil, err
			}
			log.Info("Database schema up to date")
		}
		return st, nil
	default:
		log.Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	}
}
