package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"velour/internal/catalog"
	"velour/internal/config"
	"velour/internal/database"
	"velour/internal/handler"
	"velour/internal/referral"
	"velour/internal/router"
	"velour/internal/service"
	"velour/internal/store"
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
	logger.Info().Msg("starting velour API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize catalogue loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	catalogLoader := fileLoader

	if cfg.Catalog.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			catalogLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Catalog.S3Prefix, true, logger)
		}
	} else {
		logger.Info().Msg("using local file system for catalogue (S3 disabled)")
	}

	// Load the catalogue once; it is immutable for the process lifetime
	products, err := catalogLoader.Load(ctx, cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	cat := catalog.New(products)
	if cat.Len() == 0 {
		logger.Warn().Msg("catalogue is empty; storefront will serve no products")
	}

	// Initialize session state store
	var sessionStore store.Store
	if cfg.Store.Backend == config.StoreBackendPostgres {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		pgStore := store.NewPostgresStore(pool, logger)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare state store: %w", err)
		}
		sessionStore = pgStore
	} else {
		sessionStore = store.NewMemoryStore()
		logger.Info().Msg("using in-memory session state store")
	}

	wishlist := store.NewWishlist(sessionStore, logger)
	recent := store.NewRecentlyViewed(sessionStore, logger)

	// Initialize referral discount source
	var discountSource referral.Source
	if cfg.Referral.Path != "" {
		discountSource, err = referral.NewFileSource(cfg.Referral.Path, logger)
		if err != nil {
			return fmt.Errorf("failed to load referral discounts: %w", err)
		}
	} else {
		discountSource = referral.NewStaticSource(nil)
		logger.Info().Msg("no referral discount file configured")
	}

	// Initialize services
	storefrontService := service.NewStorefrontService(cat, sessionStore, recent, logger)
	cartService := service.NewCartService(cat, discountSource, logger)
	profileService := service.NewProfileService(cat, wishlist, recent, logger)

	// Initialize HTTP handlers
	storefrontHandler := handler.NewStorefrontHandler(storefrontService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	// Initialize router
	mux := router.New(storefrontHandler, cartHandler, profileHandler, cfg.Auth.APIKey, logger)

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
			Int("products", cat.Len()).
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
