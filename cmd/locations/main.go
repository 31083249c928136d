package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/twende/twende/internal/pkg/config"
	"github.com/twende/twende/internal/pkg/database"
	"github.com/twende/twende/internal/pkg/health"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/middleware"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/services/locations/gateway"
	"github.com/twende/twende/services/locations/handler"
	"github.com/twende/twende/services/locations/repository"
	"github.com/twende/twende/services/locations/usecase"
)

const serviceName = "locations-service"

func main() {
	cfg := config.InitConfig(".env")
	cfg.App.Name = serviceName

	nrApp := nrpkg.InitNewRelic(cfg)

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg, nrApp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	locationRepo := repository.NewLocationRepository(cfg, pgClient.GetDB(), redisClient)
	geocodeGW := gateway.NewGeocodeGW(cfg)
	locationUC, err := usecase.NewLocationUC(cfg, locationRepo, geocodeGW)
	if err != nil {
		logger.Fatal("Failed to initialize location use case", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "rate:limit:locations",
		Limit:       60,
		Period:      time.Minute,
	}))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(pgClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version, healthService)

	h := handler.NewHandler(cfg, locationUC)
	h.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting locations service", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", logger.Err(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down locations service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server cleanly", logger.Err(err))
	}
}
