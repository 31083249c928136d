package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/internal/utils"
	"github.com/twende/twende/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	paymentGW   bookings.PaymentGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	paymentGW bookings.PaymentGW,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		paymentGW:   paymentGW,
	}, nil
}

// CreateBooking requests seats on a ride. The booking starts pending
// and holds no seats until payment goes through.
func (uc *bookingUC) CreateBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingCreateRequest) (*models.Booking, error) {
	if req.Seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", models.ErrServerRejected)
	}

	ride, err := uc.bookingRepo.GetRideForBooking(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	if ride.Status != models.RideStatusPending {
		return nil, fmt.Errorf("%w: ride is no longer accepting bookings", models.ErrServerRejected)
	}
	if !ride.DepartureTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: ride has already departed", models.ErrServerRejected)
	}
	// Fast-fail on an obviously full ride. The authoritative seat check
	// happens in the payment transaction.
	if ride.AvailableSeats < req.Seats {
		return nil, fmt.Errorf("%w: only %d seats left", models.ErrSeatsUnavailable, ride.AvailableSeats)
	}

	booking := &models.Booking{
		RideID:      req.RideID,
		PassengerID: passengerID,
		SeatsBooked: req.Seats,
		TotalAmount: ride.PricePerSeat * float64(req.Seats),
	}

	created, err := uc.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("ride_id", req.RideID.String()),
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
		return nil, err
	}

	uc.publishEvent(ctx, created)

	logger.Info("Booking created",
		logger.String("booking_id", created.BookingID.String()),
		logger.String("ride_id", created.RideID.String()),
		logger.Int("seats_booked", created.SeatsBooked),
		logger.Float64("total_amount", created.TotalAmount))

	return created, nil
}

// GetBooking returns a booking owned by the passenger
func (uc *bookingUC) GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != passengerID {
		return nil, models.ErrBookingNotFound
	}
	return booking, nil
}

// ListPassengerBookings lists all bookings owned by the passenger
func (uc *bookingUC) ListPassengerBookings(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error) {
	return uc.bookingRepo.GetBookingsByPassenger(ctx, passengerID)
}

// PayBooking charges the passenger's mobile money account and, on
// settlement, atomically takes the seats and moves the booking to paid.
// A failed charge cancels the booking; seats gone after the charge
// settled triggers a refund and cancellation.
func (uc *bookingUC) PayBooking(ctx context.Context, bookingID, passengerID uuid.UUID, req models.BookingPayRequest) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != passengerID {
		return nil, models.ErrBookingNotFound
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can be paid", models.ErrInvalidTransition, booking.Status)
	}

	provider, msisdn, err := utils.ValidateMSISDN(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrServerRejected, err)
	}
	if req.Provider != "" && models.PaymentProvider(req.Provider) != provider {
		return nil, fmt.Errorf("%w: number %s belongs to %s", models.ErrServerRejected, msisdn, provider)
	}

	var result *models.PaymentResult
	chargeErr := nrpkg.WithSegment(ctx, "PaymentGW.Charge", func() error {
		var err error
		result, err = uc.paymentGW.Charge(ctx, models.ChargeRequest{
			BookingID: booking.BookingID,
			Phone:     msisdn,
			Amount:    booking.TotalAmount,
			Provider:  provider,
		})
		return err
	})
	if chargeErr != nil || result.Status != models.PaymentStatusSettled {
		uc.cancelAfterPaymentFailure(ctx, booking)
		if chargeErr != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrPaymentFailed, chargeErr)
		}
		return nil, fmt.Errorf("%w: %s", models.ErrPaymentFailed, result.Message)
	}

	if err := uc.bookingRepo.MarkPaidWithSeats(ctx, booking.BookingID, booking.RideID, booking.SeatsBooked); err != nil {
		if errors.Is(err, models.ErrSeatsUnavailable) {
			// The money moved but the seats are gone. Give it back.
			if refundErr := uc.paymentGW.Refund(ctx, result.ReferenceID, booking.TotalAmount); refundErr != nil {
				logger.Error("Refund failed after losing seat race",
					logger.String("booking_id", booking.BookingID.String()),
					logger.String("reference_id", result.ReferenceID),
					logger.Err(refundErr))
			}
			uc.cancelAfterPaymentFailure(ctx, booking)
		}
		return nil, err
	}
	booking.Status = models.BookingStatusPaid

	uc.publishEvent(ctx, booking)

	logger.Info("Booking paid",
		logger.String("booking_id", booking.BookingID.String()),
		logger.String("reference_id", result.ReferenceID),
		logger.String("provider", string(provider)))

	if uc.cfg.Bookings.AutoConfirm {
		return uc.confirmPaid(ctx, booking)
	}

	return booking, nil
}

// ConfirmBooking moves a paid booking to confirmed. Only the driver of
// the booked ride may confirm.
func (uc *bookingUC) ConfirmBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	ride, err := uc.bookingRepo.GetRideForBooking(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, models.ErrBookingNotFound
	}
	if booking.Status != models.BookingStatusPaid {
		return nil, fmt.Errorf("%w: booking is %s, only paid bookings can be confirmed", models.ErrInvalidTransition, booking.Status)
	}

	return uc.confirmPaid(ctx, booking)
}

// CancelBooking cancels a pending or paid booking. Seats held by a paid
// booking go back to the ride.
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != passengerID {
		return nil, models.ErrBookingNotFound
	}
	if !booking.CanTransition(models.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: booking is %s", models.ErrInvalidTransition, booking.Status)
	}

	restoreSeats := 0
	if booking.Status == models.BookingStatusPaid {
		restoreSeats = booking.SeatsBooked
	}

	if err := uc.bookingRepo.CancelWithSeatRestore(ctx, booking.BookingID, booking.RideID, booking.Status, restoreSeats); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled

	uc.publishEvent(ctx, booking)

	logger.Info("Booking cancelled",
		logger.String("booking_id", booking.BookingID.String()),
		logger.Int("seats_restored", restoreSeats))

	return booking, nil
}

// HandlePaymentSettled applies an externally-settled payment to its
// booking. Duplicate deliveries for an already-paid booking are no-ops.
func (uc *bookingUC) HandlePaymentSettled(ctx context.Context, event models.PaymentSettledEvent) error {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, event.BookingID)
	if err != nil {
		return err
	}

	if booking.Status != models.BookingStatusPending {
		logger.Info("Ignoring payment event for non-pending booking",
			logger.String("booking_id", booking.BookingID.String()),
			logger.String("status", string(booking.Status)),
			logger.String("reference_id", event.ReferenceID))
		return nil
	}

	if event.Status == models.PaymentStatusFailed {
		uc.cancelAfterPaymentFailure(ctx, booking)
		return nil
	}

	if err := uc.bookingRepo.MarkPaidWithSeats(ctx, booking.BookingID, booking.RideID, booking.SeatsBooked); err != nil {
		if errors.Is(err, models.ErrSeatsUnavailable) {
			if refundErr := uc.paymentGW.Refund(ctx, event.ReferenceID, booking.TotalAmount); refundErr != nil {
				logger.Error("Refund failed after losing seat race",
					logger.String("booking_id", booking.BookingID.String()),
					logger.String("reference_id", event.ReferenceID),
					logger.Err(refundErr))
			}
			uc.cancelAfterPaymentFailure(ctx, booking)
			return nil
		}
		return err
	}
	booking.Status = models.BookingStatusPaid

	uc.publishEvent(ctx, booking)

	if uc.cfg.Bookings.AutoConfirm {
		_, err := uc.confirmPaid(ctx, booking)
		return err
	}

	return nil
}

// ExpireStale cancels pending bookings older than the configured TTL
// and publishes their cancellation events.
func (uc *bookingUC) ExpireStale(ctx context.Context) (int, error) {
	ttl := time.Duration(uc.cfg.Bookings.PendingTTLMinutes) * time.Minute

	expired, err := uc.bookingRepo.ExpirePending(ctx, ttl)
	if err != nil {
		return 0, err
	}

	for i := range expired {
		uc.publishEvent(ctx, &expired[i])
	}

	if len(expired) > 0 {
		logger.Info("Expired stale pending bookings",
			logger.Int("count", len(expired)),
			logger.Int("ttl_minutes", uc.cfg.Bookings.PendingTTLMinutes))
	}

	return len(expired), nil
}

func (uc *bookingUC) confirmPaid(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := uc.bookingRepo.UpdateStatusGuarded(ctx, booking.BookingID, models.BookingStatusPaid, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusConfirmed

	uc.publishEvent(ctx, booking)

	logger.Info("Booking confirmed",
		logger.String("booking_id", booking.BookingID.String()))

	return booking, nil
}

func (uc *bookingUC) cancelAfterPaymentFailure(ctx context.Context, booking *models.Booking) {
	// A pending booking holds no seats, nothing to restore
	if err := uc.bookingRepo.CancelWithSeatRestore(ctx, booking.BookingID, booking.RideID, models.BookingStatusPending, 0); err != nil {
		logger.Error("Failed to cancel booking after payment failure",
			logger.String("booking_id", booking.BookingID.String()),
			logger.Err(err))
		return
	}
	booking.Status = models.BookingStatusCancelled
	uc.publishEvent(ctx, booking)
}

// publishEvent is best-effort: the booking state is already durable and
// consumers resync from the database.
func (uc *bookingUC) publishEvent(ctx context.Context, booking *models.Booking) {
	if err := uc.bookingGW.PublishBookingEvent(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", booking.BookingID.String()),
			logger.String("status", string(booking.Status)),
			logger.Err(err))
	}
}
