package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	wspkg "github.com/twende/twende/internal/pkg/websocket"
	"github.com/twende/twende/services/bookings"
	httphandler "github.com/twende/twende/services/bookings/handler/http"
	natshandler "github.com/twende/twende/services/bookings/handler/nats"
	wshandler "github.com/twende/twende/services/bookings/handler/websocket"
)

// Handler combines the HTTP, NATS and WebSocket entry points of the
// bookings service.
type Handler struct {
	cfg              *models.Config
	bookingsHTTP     *httphandler.BookingsHandler
	paymentsConsumer *natshandler.PaymentsConsumer
	push             *wshandler.PushHandler
}

// NewHandler creates a combined bookings handler
func NewHandler(cfg *models.Config, bookingUC bookings.BookingUC, natsClient *natspkg.Client, wsManager *wspkg.Manager) *Handler {
	return &Handler{
		cfg:              cfg,
		bookingsHTTP:     httphandler.NewBookingsHandler(bookingUC),
		paymentsConsumer: natshandler.NewPaymentsConsumer(bookingUC, natsClient),
		push:             wshandler.NewPushHandler(wsManager, natsClient),
	}
}

// RegisterRoutes wires the booking endpoints onto the Echo instance.
// Every booking operation requires a passenger token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.POST("", h.bookingsHTTP.CreateBooking)
	group.GET("", h.bookingsHTTP.ListBookings)
	group.GET("/:bookingID", h.bookingsHTTP.GetBooking)
	group.POST("/:bookingID/pay", h.bookingsHTTP.PayBooking)
	group.POST("/:bookingID/confirm", h.bookingsHTTP.ConfirmBooking)
	group.POST("/:bookingID/cancel", h.bookingsHTTP.CancelBooking)

	// Token travels in the Authorization header, validated on upgrade
	e.GET("/ws/bookings", h.push.HandleWebSocket)
}

// InitNATSConsumers starts the payment and push consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	if err := h.paymentsConsumer.Start(ctx); err != nil {
		return err
	}
	return h.push.Start(ctx)
}
