package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/twende/twende/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingCreateRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)
	ListPassengerBookings(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error)
	PayBooking(ctx context.Context, bookingID, passengerID uuid.UUID, req models.BookingPayRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)
	HandlePaymentSettled(ctx context.Context, event models.PaymentSettledEvent) error
	ExpireStale(ctx context.Context) (int, error)
}
