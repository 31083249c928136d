package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
)

// BookingRepo owns booking persistence and the seat accounting on
// rides. Every seat mutation is a conditional update inside a
// transaction so two concurrent payments can never oversell a ride.
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	booking_id, ride_id, passenger_id, seats_booked, total_amount,
	status, created_at, updated_at`

// CreateBooking inserts a new booking in pending status
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (
			booking_id, ride_id, passenger_id, seats_booked, total_amount,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	if booking.BookingID == uuid.Nil {
		booking.BookingID = uuid.New()
	}
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.BookingID,
		booking.RideID,
		booking.PassengerID,
		booking.SeatsBooked,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return nil, classifyError(err)
	}

	return booking, nil
}

// GetBookingByID retrieves a booking by its ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, classifyError(err)
	}

	return &booking, nil
}

// GetBookingsByPassenger lists a passenger's bookings, newest first
func (r *BookingRepo) GetBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM bookings
		WHERE passenger_id = $1
		ORDER BY created_at DESC
	`

	bookingList := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookingList, query, passengerID); err != nil {
		return nil, classifyError(err)
	}

	return bookingList, nil
}

// GetRideForBooking loads the ride a booking targets
func (r *BookingRepo) GetRideForBooking(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT ride_id, driver_id, origin_address, destination_address,
			departure_time, price_per_seat, available_seats, status,
			created_at, updated_at
		FROM rides
		WHERE ride_id = $1
	`

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRideNotFound
		}
		return nil, classifyError(err)
	}

	return &ride, nil
}

// MarkPaidWithSeats takes the booking's seats from the ride and moves
// the booking to paid, atomically. The seat decrement is guarded by
// available_seats >= seats, so a ride can never go negative no matter
// how many payments race.
func (r *BookingRepo) MarkPaidWithSeats(ctx context.Context, bookingID, rideID uuid.UUID, seats int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE rides
			SET available_seats = available_seats - $1, updated_at = NOW()
			WHERE ride_id = $2 AND available_seats >= $1
		`, seats, rideID)
		if err != nil {
			return classifyError(err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: ride %s has fewer than %d seats left", models.ErrSeatsUnavailable, rideID, seats)
		}

		result, err = tx.ExecContext(ctx, `
			UPDATE bookings
			SET status = $1, updated_at = NOW()
			WHERE booking_id = $2 AND status = $3
		`, models.BookingStatusPaid, bookingID, models.BookingStatusPending)
		if err != nil {
			return classifyError(err)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: booking %s is not pending", models.ErrInvalidTransition, bookingID)
		}

		return nil
	})
}

// UpdateStatusGuarded applies a guarded booking status transition
func (r *BookingRepo) UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) error {
	query := `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE booking_id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, bookingID, from)
	if err != nil {
		return classifyError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking %s is not in status %s", models.ErrInvalidTransition, bookingID, from)
	}

	return nil
}

// CancelWithSeatRestore cancels a booking and hands any held seats back
// to the ride in the same transaction.
func (r *BookingRepo) CancelWithSeatRestore(ctx context.Context, bookingID, rideID uuid.UUID, from models.BookingStatus, restoreSeats int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE bookings SET status = $1, updated_at = NOW()
			WHERE booking_id = $2 AND status = $3
		`, models.BookingStatusCancelled, bookingID, from)
		if err != nil {
			return classifyError(err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: booking %s is not in status %s", models.ErrInvalidTransition, bookingID, from)
		}

		if restoreSeats > 0 {
			if _, err := tx.ExecContext(ctx, `
				UPDATE rides
				SET available_seats = available_seats + $1, updated_at = NOW()
				WHERE ride_id = $2
			`, restoreSeats, rideID); err != nil {
				return classifyError(err)
			}
		}

		return nil
	})
}

// ExpirePending cancels pending bookings older than the TTL. Pending
// bookings hold no seats, so no restore is needed.
func (r *BookingRepo) ExpirePending(ctx context.Context, olderThan time.Duration) ([]models.Booking, error) {
	query := `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
		RETURNING` + bookingColumns + `
	`

	cutoff := time.Now().Add(-olderThan)
	expired := []models.Booking{}
	if err := r.db.SelectContext(ctx, &expired, query, models.BookingStatusCancelled, models.BookingStatusPending, cutoff); err != nil {
		return nil, classifyError(err)
	}

	return expired, nil
}

func (r *BookingRepo) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyError(err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back booking transaction", logger.Err(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyError(err)
	}
	return nil
}

// classifyError maps transport-level failures onto the error taxonomy.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s", models.ErrServerRejected, pgErr.Message)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrNetworkUnavailable, err)
	}

	return err
}
