package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/models"
	"github.com/twende/twende/services/rides/mocks"
	"github.com/twende/twende/services/rides/pipeline"
)

func setupRideUC(t *testing.T) (*rideUC, *mocks.MockRideRepo, *mocks.MockRideGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	cfg := &models.Config{}
	uc, err := NewRideUC(cfg, mockRepo, mockGW)
	require.NoError(t, err)

	return uc.(*rideUC), mockRepo, mockGW
}

func TestCreateRide_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupRideUC(t)

	driverID := uuid.New()
	req := models.RideCreateRequest{
		OriginAddress:      "Kampala, Wandegeya",
		DestinationAddress: "Jinja, Main Street",
		DepartureTime:      time.Now().Add(6 * time.Hour),
		PricePerSeat:       25000,
		AvailableSeats:     3,
	}

	mockRepo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, driverID, ride.DriverID)
			assert.Equal(t, 3, ride.AvailableSeats)
			ride.RideID = uuid.New()
			ride.Status = models.RideStatusPending
			return ride, nil
		})
	mockGW.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := uc.CreateRide(context.Background(), driverID, req)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusPending, ride.Status)
	assert.NotEqual(t, uuid.Nil, ride.RideID)
}

func TestCreateRide_Validation(t *testing.T) {
	uc, _, _ := setupRideUC(t)

	base := models.RideCreateRequest{
		OriginAddress:      "Kampala",
		DestinationAddress: "Entebbe",
		DepartureTime:      time.Now().Add(2 * time.Hour),
		PricePerSeat:       10000,
		AvailableSeats:     2,
	}

	tests := []struct {
		name   string
		mutate func(*models.RideCreateRequest)
	}{
		{"zero seats", func(r *models.RideCreateRequest) { r.AvailableSeats = 0 }},
		{"negative price", func(r *models.RideCreateRequest) { r.PricePerSeat = -1 }},
		{"past departure", func(r *models.RideCreateRequest) { r.DepartureTime = time.Now().Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			ride, err := uc.CreateRide(context.Background(), uuid.New(), req)

			assert.Nil(t, ride)
			assert.ErrorIs(t, err, models.ErrServerRejected)
		})
	}
}

func TestCreateRide_PublishFailureDoesNotFailRequest(t *testing.T) {
	uc, mockRepo, mockGW := setupRideUC(t)

	req := models.RideCreateRequest{
		OriginAddress:      "Kampala",
		DestinationAddress: "Mbarara",
		DepartureTime:      time.Now().Add(time.Hour),
		PricePerSeat:       40000,
		AvailableSeats:     4,
	}

	mockRepo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			ride.RideID = uuid.New()
			ride.Status = models.RideStatusPending
			return ride, nil
		})
	mockGW.EXPECT().
		PublishRideCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	ride, err := uc.CreateRide(context.Background(), uuid.New(), req)

	require.NoError(t, err)
	assert.NotNil(t, ride)
}

func TestSearchRides_AppliesFiltersAndSort(t *testing.T) {
	uc, mockRepo, _ := setupRideUC(t)

	now := time.Now().Add(24 * time.Hour)
	snapshot := []models.Ride{
		{RideID: uuid.New(), PricePerSeat: 50000, AvailableSeats: 3, DepartureTime: now},
		{RideID: uuid.New(), PricePerSeat: 30000, AvailableSeats: 1, DepartureTime: now},
		{RideID: uuid.New(), PricePerSeat: 40000, AvailableSeats: 5, DepartureTime: now},
	}

	criteria := models.SearchCriteria{OriginSubstring: "Kampala"}
	mockRepo.EXPECT().SearchRides(gomock.Any(), criteria).Return(snapshot, nil)

	minSeats := 2
	result, err := uc.SearchRides(context.Background(), criteria,
		pipeline.FilterSpec{MinSeats: &minSeats}, pipeline.SortPriceAsc)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, float64(40000), result[0].PricePerSeat)
	assert.Equal(t, float64(50000), result[1].PricePerSeat)
}

func TestSearchRides_RepoError(t *testing.T) {
	uc, mockRepo, _ := setupRideUC(t)

	mockRepo.EXPECT().
		SearchRides(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrNetworkUnavailable)

	result, err := uc.SearchRides(context.Background(), models.SearchCriteria{},
		pipeline.FilterSpec{}, pipeline.SortDateAsc)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNetworkUnavailable)
}

func TestUpdateRideStatus_Success(t *testing.T) {
	uc, mockRepo, mockGW := setupRideUC(t)

	rideID := uuid.New()
	driverID := uuid.New()
	ride := &models.Ride{
		RideID:   rideID,
		DriverID: driverID,
		Status:   models.RideStatusConfirmed,
	}

	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().
		UpdateRideStatus(gomock.Any(), rideID, models.RideStatusConfirmed, models.RideStatusInProgress).
		Return(nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateRideStatus(context.Background(), rideID, driverID, models.RideStatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, updated.Status)
}

func TestUpdateRideStatus_WrongDriver(t *testing.T) {
	uc, mockRepo, _ := setupRideUC(t)

	rideID := uuid.New()
	ride := &models.Ride{
		RideID:   rideID,
		DriverID: uuid.New(),
		Status:   models.RideStatusPending,
	}

	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	updated, err := uc.UpdateRideStatus(context.Background(), rideID, uuid.New(), models.RideStatusCancelled)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrServerRejected)
}

func TestUpdateRideStatus_InvalidTransition(t *testing.T) {
	uc, mockRepo, _ := setupRideUC(t)

	rideID := uuid.New()
	driverID := uuid.New()
	ride := &models.Ride{
		RideID:   rideID,
		DriverID: driverID,
		Status:   models.RideStatusCompleted,
	}

	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)

	updated, err := uc.UpdateRideStatus(context.Background(), rideID, driverID, models.RideStatusInProgress)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestHandleBookingEvent_RebroadcastsRide(t *testing.T) {
	uc, mockRepo, mockGW := setupRideUC(t)

	rideID := uuid.New()
	event := models.BookingEvent{
		BookingID:   uuid.New(),
		RideID:      rideID,
		Status:      models.BookingStatusPaid,
		SeatsBooked: 2,
	}
	ride := &models.Ride{
		RideID:         rideID,
		Status:         models.RideStatusPending,
		AvailableSeats: 1,
	}

	mockRepo.EXPECT().GetRideByID(gomock.Any(), rideID).Return(ride, nil)
	mockGW.EXPECT().PublishRideStatus(gomock.Any(), ride).Return(nil)

	err := uc.HandleBookingEvent(context.Background(), event)

	assert.NoError(t, err)
}

func TestHandleBookingEvent_RideLookupFails(t *testing.T) {
	uc, mockRepo, _ := setupRideUC(t)

	event := models.BookingEvent{
		BookingID: uuid.New(),
		RideID:    uuid.New(),
		Status:    models.BookingStatusCancelled,
	}

	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), event.RideID).
		Return(nil, models.ErrRideNotFound)

	err := uc.HandleBookingEvent(context.Background(), event)

	assert.ErrorIs(t, err, models.ErrRideNotFound)
}
