package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/config"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/database"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/health"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/middleware"
	natspkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/nats"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/server"
	wspkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/websocket"
	dispatchGateway "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/dispatch/gateway"
	dispatchUsecase "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/dispatch/usecase"
	locationGateway "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location/gateway"
	locationRepository "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location/repository"
	locationUsecase "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location/usecase"
	presenceHandler "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/handler"
	presenceRepository "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/repository"
	presenceUsecase "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/usecase"
	realtimeWS "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/realtime/websocket"
	ridesGateway "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/gateway"
	ridesHandler "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/handler"
	ridesRepository "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/repository"
	ridesUsecase "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/dispatch.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()
	producer := natspkg.NewProducer(natsClient)

	wsManager := wspkg.NewManager(configs.JWT)

	// Repositories
	presenceRepo := presenceRepository.NewPresenceRepository(configs, redisClient)
	ridesRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	locationRepo := locationRepository.NewLocationRepository(redisClient)

	// Gateways
	ridesGW := ridesGateway.NewRideGW(producer, wsManager)
	dispatchGW := dispatchGateway.NewDispatchGW(producer, wsManager)
	locationGW := locationGateway.NewLocationGW(producer, wsManager)

	// Use cases. The dispatch arbiter commits acceptance through the rides
	// repository, and the ride lifecycle opens rounds through the dispatcher.
	presenceUC := presenceUsecase.NewPresenceUC(configs, presenceRepo)
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, ridesRepo, presenceUC, dispatchGW)
	rideUC := ridesUsecase.NewRideUC(configs, ridesRepo, ridesGW, dispatchUC, presenceUC)
	locationUC := locationUsecase.NewLocationUC(locationRepo, ridesRepo, locationGW)

	// Handlers
	wsHandler := realtimeWS.NewWebSocketHandler(wsManager, presenceUC, rideUC, locationUC)
	rideRoutes := ridesHandler.NewHandler(rideUC, configs)
	presenceRoutes := presenceHandler.NewHandler(presenceUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	e.GET("/health", health.NewPingHandler(appName))

	authMW := middleware.JWTAuthMiddleware(configs.JWT)
	rideRoutes.RegisterRoutes(e, authMW)
	presenceRoutes.RegisterRoutes(e, authMW)

	// WebSocket edge authenticates inside the upgrade handshake
	e.GET("/ws", wsHandler.HandleWebSocket)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server stopped")
}
