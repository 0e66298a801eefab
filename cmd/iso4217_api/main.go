package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	portsrepo "github.com/SscSPs/iso4217/internal/core/ports/repositories"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/SscSPs/iso4217/internal/handlers"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/SscSPs/iso4217/internal/platform/config"
	"github.com/SscSPs/iso4217/internal/platform/logging"
	"github.com/SscSPs/iso4217/internal/repositories/database/pgsql"
	"github.com/SscSPs/iso4217/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title ISO 4217 Currency API
// @version 1.0
// @description Read-only catalog of active and withdrawn ISO 4217 currencies.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	sources, err := isoxml.LoadSources(cfg.ListOnePath, cfg.ListThreePath)
	if err != nil {
		logger.Error("Failed to read currency lists", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var repos *portsrepo.RepositoryProvider
	if cfg.EnableDBSync {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)

		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, "file://migrations")
		if err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		provider := pgsql.NewRepositoryProvider(dbPool)
		repos = &provider
	}

	container := services.NewServiceContainer(cfg, sources, repos)

	// Build eagerly so a broken list fails the process at start-up
	info, err := container.Catalog.DatasetInfo(ctx)
	if err != nil {
		logger.Error("Failed to build currency dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency dataset ready",
		slog.String("version", info.Version),
		slog.Int("currencies", info.Total),
		slog.Int("active", info.Active))

	if container.Snapshot != nil {
		written, err := container.Snapshot.SyncDataset(ctx)
		if err != nil {
			logger.Error("Failed to sync currency snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Currency snapshot sync finished", slog.Bool("written", written))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
