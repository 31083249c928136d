package locations

import (
	"context"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/twende/twende/services/locations LocationUC
type LocationUC interface {
	ListCities(ctx context.Context) ([]models.City, error)
	Geocode(ctx context.Context, address string) (*models.LocationPoint, error)
	RecordSearch(ctx context.Context, userID uuid.UUID, point models.LocationPoint) error
	GetRecentLocations(ctx context.Context, userID uuid.UUID) []models.RecentLocation
}
