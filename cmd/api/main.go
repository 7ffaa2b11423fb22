package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-pickup/internal/config"
	"meal-pickup/internal/database"
	"meal-pickup/internal/handler"
	"meal-pickup/internal/middleware"
	"meal-pickup/internal/repository"
	"meal-pickup/internal/router"
	"meal-pickup/internal/seed"
	"meal-pickup/internal/service"
	"meal-pickup/web"

	"github.com/rs/zerolog"
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
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting meal-pickup server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed document source: S3 when enabled, with the local canonical file as fallback
	seedLoader := newSeedLoader(ctx, cfg, logger)

	repo, closeStore, err := openStore(ctx, cfg, seedLoader, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// All writes go through one queue
	queue := repository.NewWriteQueue(repo, logger)
	defer queue.Close()

	// Initialize services
	authService := service.NewAuthService(cfg.Auth.AdminPIN, logger)
	catalogService := service.NewCatalogService(repo, queue, logger)
	orderService := service.NewOrderService(queue, logger)

	// Initialize HTTP handlers
	publicHandler := handler.NewPublicHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(authService, catalogService, orderService, logger)

	assets, err := web.FS(cfg.Web.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
	limiter.StartCleanup(ctx, time.Minute, 10*time.Minute)

	// Initialize router
	mux := router.New(publicHandler, orderHandler, adminHandler, router.Options{
		Auth:           authService,
		Limiter:        limiter,
		Static:         web.Handler(assets),
		MetricsEnabled: cfg.Metrics.Enabled,
	}, logger)

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

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

func newSeedLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for the seed document (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.SeedKey, true, logger)
}

// openStore returns the document repository for the configured driver and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config, loader seed.Loader, logger zerolog.Logger) (repository.DocumentRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		seedDoc, err := loader.Load(ctx, cfg.Store.DataFile)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to load seed document: %w", err)
		}

		if err := repository.EnsureDocumentSchema(ctx, pool, seedDoc); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to prepare document table: %w", err)
		}

		return repository.NewPostgresRepository(pool, logger), pool.Close, nil

	default:
		path, err := repository.ResolveDataPath(ctx, cfg.Store.DataFile, cfg.Store.FallbackFile, loader, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to prepare data file: %w", err)
		}

		logger.Info().Str("path", path).Msg("document store ready")
		return repository.NewFileRepository(path, logger), func() {}, nil
	}
}
