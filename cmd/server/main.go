package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/velastore/vela/internal"
	"github.com/velastore/vela/internal/auth"
	"github.com/velastore/vela/internal/cookie"
	"github.com/velastore/vela/internal/handler/storefront"
	"github.com/velastore/vela/internal/middleware"
	"github.com/velastore/vela/internal/repository"
	"github.com/velastore/vela/internal/router"
	"github.com/velastore/vela/internal/routes"
	"github.com/velastore/vela/internal/service"
	"github.com/velastore/vela/internal/worker"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Initialize auth provider
	authProvider := auth.NewHTTPProvider(cfg.Auth.BaseURL)

	// Initialize cookie config
	cookies := cookie.NewConfig(cfg.Cookie.Secure, int(cfg.Guest.SessionTTL.Seconds()))

	// Initialize services
	sessionService := service.NewSessionService(repo, authProvider, cookies, cfg.Guest.SessionTTL, logger)
	cartService := service.NewCartService(repo, cfg.Cart.EstimatedShipping)
	catalogService := service.NewCatalogService(repo, cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize)

	// Initialize handlers
	productHandler := storefront.NewProductHandler(catalogService, logger)
	cartHandler := storefront.NewCartHandler(cartService, sessionService, logger)
	authHandler := storefront.NewAuthHandler(authProvider, cartService, sessionService, logger)

	// Initialize metrics
	metrics := middleware.NewMetrics("vela")

	// Build the router
	r := router.New(
		middleware.RequestID,
		middleware.WithRequestLogger(logger),
		metrics.Middleware,
	)

	routes.RegisterStorefrontRoutes(r, routes.StorefrontDeps{
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		AuthHandler:    authHandler,
		HealthHandler: func(w http.ResponseWriter, req *http.Request) {
			if err := pool.Ping(req.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		},
		MetricsHandler: metrics.Handler(),
	})

	// Start the maintenance worker
	cleanupWorker := worker.NewWorker(repo, worker.Config{Interval: cfg.Guest.CleanupInterval}, logger)
	go func() {
		if err := cleanupWorker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("worker stopped", "error", err)
		}
	}()

	// Start the server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
