package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	wspkg "github.com/twende/twende/internal/pkg/websocket"
)

// eventBookingUpdate is the frame type pushed on booking transitions
const eventBookingUpdate = "booking_update"

// PushHandler bridges booking lifecycle events onto the passenger's
// websocket connection so the app sees transitions as they happen.
type PushHandler struct {
	manager    *wspkg.Manager
	natsClient *natspkg.Client
}

// NewPushHandler creates a new realtime push handler
func NewPushHandler(manager *wspkg.Manager, natsClient *natspkg.Client) *PushHandler {
	return &PushHandler{
		manager:    manager,
		natsClient: natsClient,
	}
}

// HandleWebSocket upgrades the connection and keeps it registered for
// pushes until the client disconnects.
func (h *PushHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *PushHandler) serveClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID))

	// The push channel is one-way. Reading only detects disconnects
	// and drains client pings.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Info("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}
	}
}

// Start creates the durable consumer over all booking events and
// begins pushing them to connected passengers.
func (h *PushHandler) Start(ctx context.Context) error {
	cfg, ok := natspkg.DefaultConsumerConfigs()["booking_events_push"]
	if !ok {
		return fmt.Errorf("missing consumer config: booking_events_push")
	}

	if err := h.natsClient.CreateConsumer(cfg); err != nil {
		return fmt.Errorf("failed to create push consumer: %w", err)
	}
	if err := h.natsClient.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, h.handleBookingEvent); err != nil {
		return fmt.Errorf("failed to consume booking events: %w", err)
	}

	logger.Info("Realtime booking push consumer started")
	return nil
}

func (h *PushHandler) handleBookingEvent(msg jetstream.Msg) error {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error("Failed to unmarshal booking event for push",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		return nil
	}

	h.manager.NotifyClient(event.PassengerID.String(), eventBookingUpdate, event)
	return nil
}
