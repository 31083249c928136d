package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twende/twende/internal/pkg/constants"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
)

// BookingGW publishes booking lifecycle events to JetStream
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{
		natsClient: natsClient,
	}
}

var bookingSubjects = map[models.BookingStatus]string{
	models.BookingStatusPending:   constants.SubjectBookingRequested,
	models.BookingStatusPaid:      constants.SubjectBookingPaid,
	models.BookingStatusConfirmed: constants.SubjectBookingConfirmed,
	models.BookingStatusCancelled: constants.SubjectBookingCancelled,
}

// PublishBookingEvent emits the booking's current state on the subject
// matching its status.
func (g *BookingGW) PublishBookingEvent(_ context.Context, booking *models.Booking) error {
	subject, ok := bookingSubjects[booking.Status]
	if !ok {
		return fmt.Errorf("no subject for booking status %s", booking.Status)
	}

	event := models.BookingEvent{
		BookingID:   booking.BookingID,
		RideID:      booking.RideID,
		PassengerID: booking.PassengerID,
		SeatsBooked: booking.SeatsBooked,
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
		OccurredAt:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	return g.natsClient.Publish(subject, data)
}
