package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"sattrack/internal/pkg/config"
	"sattrack/internal/pkg/database"
	"sattrack/internal/pkg/health"
	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/middleware"
	natspkg "sattrack/internal/pkg/nats"
	"sattrack/internal/pkg/server"
	positionsHandler "sattrack/services/positions/handler"
	positionsHTTP "sattrack/services/positions/handler/http"
	positionsRepo "sattrack/services/positions/repository"
	positionsUC "sattrack/services/positions/usecase"
	satellitesHandler "sattrack/services/satellites/handler"
	satellitesHTTP "sattrack/services/satellites/handler/http"
	satellitesRepo "sattrack/services/satellites/repository"
	satellitesUC "sattrack/services/satellites/usecase"
	"sattrack/services/tracker/client"
	trackerGW "sattrack/services/tracker/gateway"
	trackerHandler "sattrack/services/tracker/handler"
	trackerHTTP "sattrack/services/tracker/handler/http"
	trackerRepo "sattrack/services/tracker/repository"
	trackerUC "sattrack/services/tracker/usecase"
)

func main() {
	appName := "sattrack"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/tracker.env"))

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

	// Initialize PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgresClient.InitSchema(startupCtx); err != nil {
		cancelStartup()
		zapLogger.Fatal("Failed to initialize schema", logger.Err(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		cancelStartup()
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		cancelStartup()
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	satelliteRepo := satellitesRepo.NewSatelliteRepo(postgresClient.GetDB())
	positionRepo := positionsRepo.NewPositionRepo(postgresClient.GetDB())
	liveCache := trackerRepo.NewLiveCacheRepo(redisClient)

	// Seed the tracked satellite so history queries work before the
	// first successful fetch
	if _, err := satelliteRepo.EnsureSatellite(startupCtx, configs.Tracker.NoradID, configs.Tracker.SatelliteName); err != nil {
		cancelStartup()
		zapLogger.Fatal("Failed to seed tracked satellite", logger.Err(err))
	}
	cancelStartup()

	// Initialize gateway and feed client
	feedClient := client.NewFeedClient(configs.Tracker.FeedURL, time.Duration(configs.Tracker.FetchTimeout)*time.Second)
	positionGW := trackerGW.NewNATSGateway(natsClient)

	// Initialize usecases
	satelliteUsecase := satellitesUC.NewSatelliteUC(satelliteRepo)
	positionUsecase := positionsUC.NewPositionUC(positionRepo, satelliteRepo, configs)
	trackerUsecase := trackerUC.NewTrackerUC(satelliteRepo, positionRepo, feedClient, liveCache, positionGW, configs, zapLogger)

	// Initialize handlers
	satelliteHTTPHandler := satellitesHTTP.NewSatelliteHandler(satelliteUsecase)
	positionHTTPHandler := positionsHTTP.NewPositionHandler(positionUsecase)
	liveHTTPHandler := trackerHTTP.NewLiveHandler(trackerUsecase)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	satellitesHandler.NewHandler(satelliteHTTPHandler).RegisterRoutes(e)
	positionsHandler.NewHandler(positionHTTPHandler).RegisterRoutes(e)
	trackerHandler.NewHandler(liveHTTPHandler).RegisterRoutes(e)

	// Map and admin pages
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	e.File("/admin", "static/admin.html")

	// Start background poller
	pollCtx, cancelPoll := context.WithCancel(context.Background())
	defer cancelPoll()
	go trackerUsecase.StartPolling(pollCtx)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}

	cancelPoll()
}
