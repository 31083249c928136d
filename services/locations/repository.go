package locations

import (
	"context"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/models"
)

// LocationRepo defines the interface for location data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/twende/twende/services/locations LocationRepo
type LocationRepo interface {
	// ListCities returns the static city reference data, cached in Redis.
	ListCities(ctx context.Context) ([]models.City, error)

	// AddRecentLocation prepends a searched location to the user's
	// recents, deduplicating nearby points.
	AddRecentLocation(ctx context.Context, userID uuid.UUID, location models.RecentLocation) error

	// GetRecentLocations returns the user's recents, newest first.
	GetRecentLocations(ctx context.Context, userID uuid.UUID) ([]models.RecentLocation, error)
}
