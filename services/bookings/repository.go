package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations.
// Seat counts on rides are mutated only through the transactional
// methods here, never by the rides service.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/twende/twende/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error)
	GetRideForBooking(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// MarkPaidWithSeats transitions a pending booking to paid and takes
	// its seats from the ride in a single transaction. Returns
	// models.ErrSeatsUnavailable when the ride no longer has enough
	// seats, models.ErrInvalidTransition when the booking is not
	// pending anymore.
	MarkPaidWithSeats(ctx context.Context, bookingID, rideID uuid.UUID, seats int) error

	// UpdateStatusGuarded applies a guarded status transition without
	// touching seats.
	UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) error

	// CancelWithSeatRestore cancels a booking from the given status and,
	// when restoreSeats is positive, returns that many seats to the ride
	// in the same transaction.
	CancelWithSeatRestore(ctx context.Context, bookingID, rideID uuid.UUID, from models.BookingStatus, restoreSeats int) error

	// ExpirePending cancels pending bookings older than the TTL and
	// returns them so lifecycle events can be published.
	ExpirePending(ctx context.Context, olderThan time.Duration) ([]models.Booking, error)
}
