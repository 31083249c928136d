package bookings

import (
	"context"

	"github.com/twende/twende/internal/pkg/models"
)

// BookingGW defines the interface for booking event publication
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/twende/twende/services/bookings BookingGW,PaymentGW
type BookingGW interface {
	// PublishBookingEvent emits the booking's current state on the
	// subject matching its status.
	PublishBookingEvent(ctx context.Context, booking *models.Booking) error
}

// PaymentGW defines the interface to the mobile money collector.
type PaymentGW interface {
	Charge(ctx context.Context, req models.ChargeRequest) (*models.PaymentResult, error)
	Refund(ctx context.Context, referenceID string, amount float64) error
}
