package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/services/rides"
	"github.com/twende/twende/services/rides/pipeline"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}, nil
}

// CreateRide posts a new ride for a driver.
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error) {
	if req.AvailableSeats < 1 {
		return nil, fmt.Errorf("%w: available_seats must be at least 1", models.ErrServerRejected)
	}
	if req.PricePerSeat < 0 {
		return nil, fmt.Errorf("%w: price_per_seat must not be negative", models.ErrServerRejected)
	}
	if !req.DepartureTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: departure_time must be in the future", models.ErrServerRejected)
	}

	ride := &models.Ride{
		DriverID:           driverID,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		DepartureTime:      req.DepartureTime,
		PricePerSeat:       req.PricePerSeat,
		AvailableSeats:     req.AvailableSeats,
	}

	created, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		logger.Error("Failed to create ride",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return nil, err
	}

	if err := uc.rideGW.PublishRideCreated(ctx, created); err != nil {
		// The ride exists; a lost event only delays listings
		logger.Warn("Failed to publish ride created event",
			logger.String("ride_id", created.RideID.String()),
			logger.Err(err))
	}

	logger.Info("Ride created",
		logger.String("ride_id", created.RideID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int("available_seats", created.AvailableSeats))

	return created, nil
}

// GetRide returns a single ride with its driver projection.
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.GetRideByID(ctx, rideID)
}

// SearchRides queries eligible rides and applies the in-memory
// filter/sort pass over the snapshot.
func (uc *rideUC) SearchRides(ctx context.Context, criteria models.SearchCriteria, filters pipeline.FilterSpec, sortKey pipeline.SortKey) ([]models.Ride, error) {
	var snapshot []models.Ride
	err := nrpkg.WithSegment(ctx, "RideRepo.SearchRides", func() error {
		var searchErr error
		snapshot, searchErr = uc.rideRepo.SearchRides(ctx, criteria)
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	return pipeline.Apply(snapshot, filters, sortKey), nil
}

// UpdateRideStatus applies a driver-initiated lifecycle transition.
func (uc *rideUC) UpdateRideStatus(ctx context.Context, rideID, driverID uuid.UUID, to models.RideStatus) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != driverID {
		return nil, fmt.Errorf("%w: ride belongs to another driver", models.ErrServerRejected)
	}
	if !ride.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, ride.Status, to)
	}

	if err := uc.rideRepo.UpdateRideStatus(ctx, rideID, ride.Status, to); err != nil {
		return nil, err
	}
	ride.Status = to

	if err := uc.rideGW.PublishRideStatus(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride status event",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	return ride, nil
}

// HandleBookingEvent reacts to booking transitions pushed over the
// event bus. The seat mutation itself happens in the bookings service's
// transaction; here we refresh and rebroadcast the ride so listings see
// the new seat count.
func (uc *rideUC) HandleBookingEvent(ctx context.Context, event models.BookingEvent) error {
	ride, err := uc.rideRepo.GetRideByID(ctx, event.RideID)
	if err != nil {
		return fmt.Errorf("failed to load ride %s for booking event: %w", event.RideID, err)
	}

	logger.Info("Applying booking event to ride",
		logger.String("ride_id", event.RideID.String()),
		logger.String("booking_id", event.BookingID.String()),
		logger.String("booking_status", string(event.Status)),
		logger.Int("available_seats", ride.AvailableSeats))

	return uc.rideGW.PublishRideStatus(ctx, ride)
}
