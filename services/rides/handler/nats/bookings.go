package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/twende/twende/internal/pkg/constants"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	"github.com/twende/twende/services/rides"
)

// BookingsConsumer consumes booking lifecycle events so the rides
// service can rebroadcast updated seat availability.
type BookingsConsumer struct {
	rideUC     rides.RideUC
	natsClient *natspkg.Client
}

// NewBookingsConsumer creates a consumer for booking events
func NewBookingsConsumer(rideUC rides.RideUC, natsClient *natspkg.Client) *BookingsConsumer {
	return &BookingsConsumer{
		rideUC:     rideUC,
		natsClient: natsClient,
	}
}

// Start creates the durable consumers and begins consuming
func (bc *BookingsConsumer) Start(ctx context.Context) error {
	consumers := natspkg.DefaultConsumerConfigs()

	for _, name := range []string{"booking_paid_rides", "booking_cancelled_rides"} {
		cfg, ok := consumers[name]
		if !ok {
			return fmt.Errorf("missing consumer config: %s", name)
		}
		if err := bc.natsClient.CreateConsumer(cfg); err != nil {
			return fmt.Errorf("failed to create consumer %s: %w", name, err)
		}
		if err := bc.natsClient.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, bc.handleBookingEvent(ctx)); err != nil {
			return fmt.Errorf("failed to consume %s: %w", name, err)
		}
	}

	logger.Info("Rides service booking consumers started",
		logger.String("stream", constants.StreamBookings))
	return nil
}

func (bc *BookingsConsumer) handleBookingEvent(ctx context.Context) natspkg.JetStreamMessageHandler {
	return func(msg jetstream.Msg) error {
		var event models.BookingEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			logger.Error("Failed to unmarshal booking event",
				logger.String("subject", msg.Subject()),
				logger.Err(err))
			// Malformed payloads are never going to parse, ack and drop
			return nil
		}

		logger.Info("Processing booking event",
			logger.String("subject", msg.Subject()),
			logger.String("booking_id", event.BookingID.String()),
			logger.String("ride_id", event.RideID.String()))

		return bc.rideUC.HandleBookingEvent(ctx, event)
	}
}
