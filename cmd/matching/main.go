package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/china630/bolt-usta-app/internal/pkg/config"
	"github.com/china630/bolt-usta-app/internal/pkg/database"
	"github.com/china630/bolt-usta-app/internal/pkg/health"
	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/middleware"
	natspkg "github.com/china630/bolt-usta-app/internal/pkg/nats"
	nrpkg "github.com/china630/bolt-usta-app/internal/pkg/newrelic"
	"github.com/china630/bolt-usta-app/internal/pkg/server"
	"github.com/china630/bolt-usta-app/services/matching/gateway"
	"github.com/china630/bolt-usta-app/services/matching/handler"
	"github.com/china630/bolt-usta-app/services/matching/repository"
	"github.com/china630/bolt-usta-app/services/matching/usecase"
)

func main() {
	appName := "matching-service"
	configPath := "config/matching.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic (may be nil when disabled)
	nrApp := nrpkg.InitNewRelic(configs)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(configs, postgresClient.GetDB())
	masterRepo := repository.NewMasterRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	matchingGW := gateway.NewMatchingGW(natsClient)

	// Initialize usecase
	matchingUC := usecase.NewMatchingUC(configs, orderRepo, masterRepo, matchingGW)

	// Initialize handlers
	h := handler.NewHandler(matchingUC, natsClient, configs)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.RecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Check{
		"postgres": func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Client.Ping(ctx).Err()
		},
		"nats": func(ctx context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return errors.New("nats connection lost")
			}
			return nil
		},
	})
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.RegisterCleanup(func(ctx context.Context) error {
		h.Close()
		natsClient.Close()
		return nil
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.RegisterCleanup(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	logger.Info("Starting matching service",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
		logger.Float64("search_radius_km", configs.Match.SearchRadiusKm))

	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
