package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/models"
	"github.com/twende/twende/services/locations/mocks"
)

func setupLocationUC(t *testing.T) (*locationUC, *mocks.MockLocationRepo, *mocks.MockGeocodeGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGeocode := mocks.NewMockGeocodeGW(ctrl)

	uc, err := NewLocationUC(&models.Config{}, mockRepo, mockGeocode)
	require.NoError(t, err)

	return uc.(*locationUC), mockRepo, mockGeocode
}

func TestGeocode_DelegatesToGateway(t *testing.T) {
	uc, _, mockGeocode := setupLocationUC(t)

	expected := &models.LocationPoint{Latitude: 0.3476, Longitude: 32.5825, Address: "Kampala, Uganda"}
	mockGeocode.EXPECT().Geocode(gomock.Any(), "Kampala").Return(expected, nil)

	point, err := uc.Geocode(context.Background(), "Kampala")

	require.NoError(t, err)
	assert.Equal(t, expected, point)
}

func TestRecordSearch_StampsTime(t *testing.T) {
	uc, mockRepo, _ := setupLocationUC(t)

	userID := uuid.New()
	point := models.LocationPoint{Latitude: 0.4, Longitude: 33.2, Address: "Jinja"}

	mockRepo.EXPECT().
		AddRecentLocation(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, loc models.RecentLocation) error {
			assert.Equal(t, point, loc.Point)
			assert.False(t, loc.SearchedAt.IsZero())
			return nil
		})

	err := uc.RecordSearch(context.Background(), userID, point)

	assert.NoError(t, err)
}

func TestGetRecentLocations_FailureDegradesToEmpty(t *testing.T) {
	uc, mockRepo, _ := setupLocationUC(t)

	userID := uuid.New()
	mockRepo.EXPECT().
		GetRecentLocations(gomock.Any(), userID).
		Return(nil, errors.New("redis: connection refused"))

	recents := uc.GetRecentLocations(context.Background(), userID)

	assert.NotNil(t, recents)
	assert.Empty(t, recents)
}

func TestGetRecentLocations_PassesThrough(t *testing.T) {
	uc, mockRepo, _ := setupLocationUC(t)

	userID := uuid.New()
	stored := []models.RecentLocation{
		{Point: models.LocationPoint{Address: "Entebbe Airport"}},
	}
	mockRepo.EXPECT().GetRecentLocations(gomock.Any(), userID).Return(stored, nil)

	recents := uc.GetRecentLocations(context.Background(), userID)

	assert.Equal(t, stored, recents)
}
