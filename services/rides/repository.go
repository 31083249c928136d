package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/twende/twende/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	SearchRides(ctx context.Context, criteria models.SearchCriteria) ([]models.Ride, error)
	UpdateRideStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error
}
