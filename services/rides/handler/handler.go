package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	"github.com/twende/twende/services/rides"
	httphandler "github.com/twende/twende/services/rides/handler/http"
	natshandler "github.com/twende/twende/services/rides/handler/nats"
)

// Handler combines the HTTP and NATS entry points of the rides service
type Handler struct {
	cfg              *models.Config
	ridesHTTP        *httphandler.RidesHandler
	bookingsConsumer *natshandler.BookingsConsumer
}

// NewHandler creates a combined rides handler
func NewHandler(cfg *models.Config, rideUC rides.RideUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		cfg:              cfg,
		ridesHTTP:        httphandler.NewRidesHandler(rideUC),
		bookingsConsumer: natshandler.NewBookingsConsumer(rideUC, natsClient),
	}
}

// RegisterRoutes wires the ride endpoints onto the Echo instance.
// Search and detail are public, mutations require a driver token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ridesGroup := e.Group("/rides")
	ridesGroup.GET("", h.ridesHTTP.SearchRides)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)

	authed := ridesGroup.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	authed.POST("", h.ridesHTTP.CreateRide)
	authed.POST("/:rideID/status", h.ridesHTTP.UpdateRideStatus)
}

// InitNATSConsumers starts the booking event consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.bookingsConsumer.Start(ctx)
}
