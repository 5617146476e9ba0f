package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fxcalc/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	"github.com/SscSPs/fxcalc/internal/core/services"
	"github.com/SscSPs/fxcalc/internal/handlers"
	"github.com/SscSPs/fxcalc/internal/middleware"
	"github.com/SscSPs/fxcalc/internal/platform/config"
	"github.com/SscSPs/fxcalc/internal/platform/metrics"
	"github.com/SscSPs/fxcalc/internal/repositories/database/pgsql"
	"github.com/SscSPs/fxcalc/internal/repositories/memory"
	"github.com/SscSPs/fxcalc/internal/utils"
	"github.com/SscSPs/fxcalc/migrations"
	"github.com/SscSPs/fxcalc/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title fxcalc API
// @version 1.0
// @description Currency, crypto and precious-metal converter.

// @host localhost:5000
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireDurableLog(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources := newRateSources(cfg)

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured, using in-memory conversion history")
		repos = memory.NewRepositoryProvider(sources...)
	} else {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, migrations.FS)
		if err != nil {
			return err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		repos = pgsql.NewRepositoryProvider(dbPool, sources...)
	}

	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	container := services.NewServiceContainer(cfg, repos, appMetrics)

	lim, err := middleware.NewIPLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware. Logging runs first so later middleware can read the request id.
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Metrics(appMetrics),
		middleware.PosthogMiddleware(analytics),
		gin.Recovery(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, lim)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// newRateSources builds the three upstream adapters in merge order.
func newRateSources(cfg *config.Config) []portsrepo.RateSource {
	client := ratesource.NewHTTPClient(cfg.FetchTimeout)
	return []portsrepo.RateSource{
		ratesource.NewFiatSource(ratesource.WithHTTPClient(client), ratesource.WithURL(cfg.FiatRatesURL)),
		ratesource.NewCryptoSource(ratesource.WithHTTPClient(client), ratesource.WithURL(cfg.CryptoRatesURL)),
		ratesource.NewMetalsSource(ratesource.WithHTTPClient(client), ratesource.WithURL(cfg.MetalsRatesURL)),
	}
}
