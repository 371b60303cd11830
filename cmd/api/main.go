package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-service/internal/config"
	"menu-service/internal/database"
	"menu-service/internal/handler"
	"menu-service/internal/metrics"
	"menu-service/internal/repository"
	"menu-service/internal/router"
	"menu-service/internal/seed"
	"menu-service/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menu API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	menuItemRepo := repository.NewMenuItemRepository(pool, logger)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, menuItemRepo, logger)
	menuItemService := service.NewMenuItemService(menuItemRepo, categoryRepo, logger)

	if cfg.Seed.Enabled {
		catalogs, err := seed.Catalogs(ctx, cfg.Seed, logger)
		if err != nil {
			return fmt.Errorf("failed to load seed data: %w", err)
		}
		if _, err := seed.NewSeeder(categoryService, menuItemService, logger).Apply(ctx, catalogs...); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize HTTP handlers
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	menuItemHandler := handler.NewMenuItemHandler(menuItemService, logger)

	var routerMetrics *router.Metrics
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector()
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collector,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		routerMetrics = &router.Metrics{
			Collector: collector,
			Gatherer:  registry,
			Path:      cfg.Metrics.Path,
		}
		logger.Info().Str("path", cfg.Metrics.Path).Msg("metrics endpoint enabled")
	}

	// Initialize router
	mux := router.New(categoryHandler, menuItemHandler, routerMetrics, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
