package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
	"github.com/twende/twende/services/rides/pipeline"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/twende/twende/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	SearchRides(ctx context.Context, criteria models.SearchCriteria, filters pipeline.FilterSpec, sortKey pipeline.SortKey) ([]models.Ride, error)
	UpdateRideStatus(ctx context.Context, rideID, driverID uuid.UUID, to models.RideStatus) (*models.Ride, error)
	HandleBookingEvent(ctx context.Context, event models.BookingEvent) error
}
