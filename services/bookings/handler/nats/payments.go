package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	"github.com/twende/twende/services/bookings"
)

// PaymentsConsumer consumes out-of-band payment settlements pushed by
// the mobile money aggregator bridge.
type PaymentsConsumer struct {
	bookingUC  bookings.BookingUC
	natsClient *natspkg.Client
}

// NewPaymentsConsumer creates a consumer for payment settlement events
func NewPaymentsConsumer(bookingUC bookings.BookingUC, natsClient *natspkg.Client) *PaymentsConsumer {
	return &PaymentsConsumer{
		bookingUC:  bookingUC,
		natsClient: natsClient,
	}
}

// Start creates the durable consumer and begins consuming
func (pc *PaymentsConsumer) Start(ctx context.Context) error {
	cfg, ok := natspkg.DefaultConsumerConfigs()["payment_settled_bookings"]
	if !ok {
		return fmt.Errorf("missing consumer config: payment_settled_bookings")
	}

	if err := pc.natsClient.CreateConsumer(cfg); err != nil {
		return fmt.Errorf("failed to create payment consumer: %w", err)
	}
	if err := pc.natsClient.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, pc.handlePaymentSettled(ctx)); err != nil {
		return fmt.Errorf("failed to consume payment events: %w", err)
	}

	logger.Info("Bookings service payment consumer started")
	return nil
}

func (pc *PaymentsConsumer) handlePaymentSettled(ctx context.Context) natspkg.JetStreamMessageHandler {
	return func(msg jetstream.Msg) error {
		var event models.PaymentSettledEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			logger.Error("Failed to unmarshal payment event",
				logger.String("subject", msg.Subject()),
				logger.Err(err))
			// Malformed payloads are never going to parse, ack and drop
			return nil
		}

		logger.Info("Processing payment settlement",
			logger.String("booking_id", event.BookingID.String()),
			logger.String("reference_id", event.ReferenceID),
			logger.String("status", string(event.Status)))

		return pc.bookingUC.HandlePaymentSettled(ctx, event)
	}
}
