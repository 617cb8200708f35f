package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/workshop_manager_app/internal/core/services"
	"github.com/SscSPs/workshop_manager_app/internal/handlers"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/SscSPs/workshop_manager_app/internal/platform/config"
	"github.com/SscSPs/workshop_manager_app/internal/platform/events"
	"github.com/SscSPs/workshop_manager_app/internal/platform/lock"
	"github.com/SscSPs/workshop_manager_app/internal/repositories/backend"
	"github.com/SscSPs/workshop_manager_app/internal/repositories/cache"
	"github.com/SscSPs/workshop_manager_app/internal/utils"
	"github.com/SscSPs/workshop_manager_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Workshop Manager API
// @version 1.0
// @description Services, expenses, appointments, withdrawals and period closing for a two-party workshop.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := backend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Cleanup()
	repos := store.Repositories

	collab := services.Collaborators{Locker: lock.NewLocalOwnerLocker()}

	if cfg.RedisAddress != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		collab.Locker = lock.NewRedisOwnerLocker(rdb, cfg.CloseLockTTL)
		repos.SettingRepo = cache.NewSettingRepository(repos.SettingRepo, rdb, cfg.SettingsCacheTTL)
		logger.Info("Using redis for period close locking and settings cache")
	}

	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			logger.Error("Failed to connect to message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := publisher.Close(); cerr != nil {
				logger.Error("Error closing message broker connection", slog.String("error", cerr.Error()))
			}
		}()
		collab.Publisher = publisher
		logger.Info("Publishing period events", slog.String("exchange", cfg.AMQPExchange))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}

	// Global middleware
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(rateLimiter),
		middleware.RequestTimeout(cfg.RequestTimeout),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, collab)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
