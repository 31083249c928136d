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
	natspkg "github.com/twende/twende/internal/pkg/nats"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	wspkg "github.com/twende/twende/internal/pkg/websocket"
	"github.com/twende/twende/services/bookings/gateway"
	"github.com/twende/twende/services/bookings/handler"
	"github.com/twende/twende/services/bookings/repository"
	"github.com/twende/twende/services/bookings/usecase"
)

const serviceName = "bookings-service"

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

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	bookingRepo := repository.NewBookingRepository(cfg, pgClient.GetDB())
	bookingGW := gateway.NewBookingGW(natsClient)
	paymentGW := gateway.NewPaymentGW(cfg)
	bookingUC, err := usecase.NewBookingUC(cfg, bookingRepo, bookingGW, paymentGW)
	if err != nil {
		logger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(pgClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version, healthService)

	wsManager := wspkg.NewManager(cfg.JWT)
	h := handler.NewHandler(cfg, bookingUC, natsClient, wsManager)
	h.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := h.InitNATSConsumers(ctx); err != nil {
		logger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}

	sweeper := usecase.NewExpirySweeper(cfg, bookingUC)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting bookings service", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", logger.Err(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down bookings service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server cleanly", logger.Err(err))
	}
}
