package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/services/locations"
)

// locationUC implements the locations.LocationUC interface
type locationUC struct {
	cfg          *models.Config
	locationRepo locations.LocationRepo
	geocodeGW    locations.GeocodeGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo locations.LocationRepo,
	geocodeGW locations.GeocodeGW,
) (locations.LocationUC, error) {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		geocodeGW:    geocodeGW,
	}, nil
}

// ListCities returns the selectable city reference data
func (uc *locationUC) ListCities(ctx context.Context) ([]models.City, error) {
	return uc.locationRepo.ListCities(ctx)
}

// Geocode resolves a free-form address to coordinates
func (uc *locationUC) Geocode(ctx context.Context, address string) (*models.LocationPoint, error) {
	var point *models.LocationPoint
	err := nrpkg.WithSegment(ctx, "GeocodeGW.Geocode", func() error {
		var geocodeErr error
		point, geocodeErr = uc.geocodeGW.Geocode(ctx, address)
		return geocodeErr
	})
	if err != nil {
		return nil, err
	}
	return point, nil
}

// RecordSearch remembers a searched location for the user
func (uc *locationUC) RecordSearch(ctx context.Context, userID uuid.UUID, point models.LocationPoint) error {
	return uc.locationRepo.AddRecentLocation(ctx, userID, models.RecentLocation{
		Point:      point,
		SearchedAt: time.Now(),
	})
}

// GetRecentLocations returns the user's recent searches. Recents are a
// convenience; a failing store degrades to an empty list rather than an
// error.
func (uc *locationUC) GetRecentLocations(ctx context.Context, userID uuid.UUID) []models.RecentLocation {
	recents, err := uc.locationRepo.GetRecentLocations(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load recent locations",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return []models.RecentLocation{}
	}
	return recents
}
