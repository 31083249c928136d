package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/twende/twende/internal/pkg/models"
)

// RideRepo is the sole owner of ride persistence. Seat counts are only
// ever mutated through the bookings repository's conditional updates.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// rideRow is the scan target for the denormalized ride+driver join.
type rideRow struct {
	models.Ride
	FullName    string  `db:"full_name"`
	AvatarURL   string  `db:"avatar_url"`
	Rating      float64 `db:"rating"`
	RatingCount int     `db:"rating_count"`
}

func (r rideRow) toRide() models.Ride {
	ride := r.Ride
	ride.Driver = &models.DriverInfo{
		DriverID:    ride.DriverID,
		FullName:    r.FullName,
		AvatarURL:   r.AvatarURL,
		Rating:      r.Rating,
		RatingCount: r.RatingCount,
	}
	return ride
}

const rideColumns = `
	r.ride_id, r.driver_id, r.origin_address, r.destination_address,
	r.departure_time, r.price_per_seat, r.available_seats, r.status,
	r.created_at, r.updated_at,
	d.full_name, d.avatar_url, d.rating, d.rating_count`

// CreateRide inserts a new ride in pending status
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (
			ride_id, driver_id, origin_address, destination_address,
			departure_time, price_per_seat, available_seats, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	if ride.RideID == uuid.Nil {
		ride.RideID = uuid.New()
	}
	ride.Status = models.RideStatusPending
	ride.CreatedAt = now
	ride.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.RideID,
		ride.DriverID,
		ride.OriginAddress,
		ride.DestinationAddress,
		ride.DepartureTime,
		ride.PricePerSeat,
		ride.AvailableSeats,
		ride.Status,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		return nil, classifyError(err)
	}

	return ride, nil
}

// GetRideByID retrieves a ride with its driver projection
func (r *RideRepo) GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT` + rideColumns + `
		FROM rides r
		JOIN drivers d ON d.driver_id = r.driver_id
		WHERE r.ride_id = $1
	`

	var row rideRow
	if err := r.db.GetContext(ctx, &row, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRideNotFound
		}
		return nil, classifyError(err)
	}

	ride := row.toRide()
	return &ride, nil
}

// SearchRides returns rides matching the criteria. The eligibility
// floor (pending, seats available, future departure) is applied
// unconditionally and is not caller-controllable.
func (r *RideRepo) SearchRides(ctx context.Context, criteria models.SearchCriteria) ([]models.Ride, error) {
	var (
		conditions = []string{
			"r.status = 'pending'",
			"r.available_seats > 0",
			"r.departure_time >= NOW()",
		}
		args []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if criteria.OriginSubstring != "" {
		conditions = append(conditions, fmt.Sprintf("r.origin_address ILIKE '%%' || %s || '%%'", arg(criteria.OriginSubstring)))
	}
	if criteria.DestinationSubstring != "" {
		conditions = append(conditions, fmt.Sprintf("r.destination_address ILIKE '%%' || %s || '%%'", arg(criteria.DestinationSubstring)))
	}
	if criteria.Date != nil {
		dayStart := time.Date(criteria.Date.Year(), criteria.Date.Month(), criteria.Date.Day(), 0, 0, 0, 0, criteria.Date.Location())
		conditions = append(conditions, fmt.Sprintf("r.departure_time >= %s", arg(dayStart)))
		conditions = append(conditions, fmt.Sprintf("r.departure_time < %s", arg(dayStart.Add(24*time.Hour))))
	}
	if criteria.MinSeats != nil {
		conditions = append(conditions, fmt.Sprintf("r.available_seats >= %s", arg(*criteria.MinSeats)))
	}
	if criteria.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("r.price_per_seat >= %s", arg(*criteria.MinPrice)))
	}
	if criteria.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("r.price_per_seat <= %s", arg(*criteria.MaxPrice)))
	}

	query := `
		SELECT` + rideColumns + `
		FROM rides r
		JOIN drivers d ON d.driver_id = r.driver_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY r.departure_time ASC
	`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classifyError(err)
	}

	// An empty result set means "no matches", never a failure
	rideList := make([]models.Ride, 0, len(rows))
	for _, row := range rows {
		rideList = append(rideList, row.toRide())
	}

	return rideList, nil
}

// UpdateRideStatus applies a guarded status transition. The WHERE guard
// on the current status makes externally raced updates lose cleanly.
func (r *RideRepo) UpdateRideStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error {
	query := `
		UPDATE rides SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, rideID, from)
	if err != nil {
		return classifyError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: ride %s is not in status %s", models.ErrInvalidTransition, rideID, from)
	}

	return nil
}

// classifyError maps transport-level failures onto the error taxonomy:
// database rejections become ErrServerRejected, connectivity problems
// become ErrNetworkUnavailable.
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
