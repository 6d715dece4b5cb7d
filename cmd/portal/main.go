package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/config"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/database"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/health"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/logger"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/middleware"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/server"
	"github.com/swetha2803/green-avenue-portal/services/portal"
	"github.com/swetha2803/green-avenue-portal/services/portal/gateway"
	"github.com/swetha2803/green-avenue-portal/services/portal/handler"
	httpHandler "github.com/swetha2803/green-avenue-portal/services/portal/handler/http"
	"github.com/swetha2803/green-avenue-portal/services/portal/repository"
	"github.com/swetha2803/green-avenue-portal/services/portal/usecase"
)

func main() {
	appName := "portal-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/portal.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Session store: Redis in production, in-memory for local runs
	var sessionRepo portal.SessionRepo
	var redisClient *database.RedisClient
	if configs.Session.Store == "memory" {
		sessionRepo = repository.NewMemorySessionRepo()
	} else {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionRepo = repository.NewSessionRepo(configs, redisClient)
	}

	// Directory gateway: real scripting endpoint or built-in fixtures
	var directoryGW portal.DirectoryGW
	if configs.Directory.Mock {
		zapLogger.Warn("Directory mock mode enabled, serving built-in fixtures")
		directoryGW = gateway.NewMockDirectory()
	} else {
		directoryGW, err = gateway.NewDirectoryClient(configs.Directory)
		if err != nil {
			zapLogger.Fatal("Failed to configure directory gateway", zap.Error(err))
		}
	}

	// Initialize UseCase
	portalUC := usecase.NewPortalUC(sessionRepo, directoryGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(portalUC, configs)
	visitorHandler := httpHandler.NewVisitorHandler(portalUC)
	communityHandler := httpHandler.NewCommunityHandler(portalUC)
	chatHandler := httpHandler.NewChatHandler(portalUC)

	h := handler.NewHandler(authHandler, visitorHandler, communityHandler, chatHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	checks := []health.Check{}
	if redisClient != nil {
		checks = append(checks, health.Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redisClient.Ping(ctx)
		}})
	}
	if dc, ok := directoryGW.(*gateway.DirectoryClient); ok {
		checks = append(checks, health.Check{Name: "directory", Probe: dc.Healthcheck})
	}
	health.RegisterHealthEndpoints(e, appName, checks...)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
