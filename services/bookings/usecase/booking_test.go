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
	"github.com/twende/twende/services/bookings/mocks"
)

func setupBookingUC(t *testing.T, autoConfirm bool) (*bookingUC, *mocks.MockBookingRepo, *mocks.MockBookingGW, *mocks.MockPaymentGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)
	mockPayment := mocks.NewMockPaymentGW(ctrl)

	cfg := &models.Config{
		Bookings: models.BookingsConfig{
			AutoConfirm:       autoConfirm,
			PendingTTLMinutes: 15,
		},
	}
	uc, err := NewBookingUC(cfg, mockRepo, mockGW, mockPayment)
	require.NoError(t, err)

	return uc.(*bookingUC), mockRepo, mockGW, mockPayment
}

func pendingBooking(passengerID uuid.UUID) *models.Booking {
	return &models.Booking{
		BookingID:   uuid.New(),
		RideID:      uuid.New(),
		PassengerID: passengerID,
		SeatsBooked: 2,
		TotalAmount: 50000,
		Status:      models.BookingStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, true)

	passengerID := uuid.New()
	rideID := uuid.New()
	ride := &models.Ride{
		RideID:         rideID,
		Status:         models.RideStatusPending,
		DepartureTime:  time.Now().Add(5 * time.Hour),
		PricePerSeat:   25000,
		AvailableSeats: 3,
	}

	mockRepo.EXPECT().GetRideForBooking(gomock.Any(), rideID).Return(ride, nil)
	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
			assert.Equal(t, float64(50000), b.TotalAmount)
			b.BookingID = uuid.New()
			b.Status = models.BookingStatusPending
			return b, nil
		})
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.CreateBooking(context.Background(), passengerID, models.BookingCreateRequest{
		RideID: rideID,
		Seats:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 2, booking.SeatsBooked)
}

func TestCreateBooking_RideFull(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	rideID := uuid.New()
	ride := &models.Ride{
		RideID:         rideID,
		Status:         models.RideStatusPending,
		DepartureTime:  time.Now().Add(time.Hour),
		PricePerSeat:   10000,
		AvailableSeats: 1,
	}

	mockRepo.EXPECT().GetRideForBooking(gomock.Any(), rideID).Return(ride, nil)

	booking, err := uc.CreateBooking(context.Background(), uuid.New(), models.BookingCreateRequest{
		RideID: rideID,
		Seats:  2,
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, models.ErrSeatsUnavailable)
}

func TestCreateBooking_RideNotBookable(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	tests := []struct {
		name string
		ride *models.Ride
	}{
		{"cancelled ride", &models.Ride{
			Status:         models.RideStatusCancelled,
			DepartureTime:  time.Now().Add(time.Hour),
			AvailableSeats: 3,
		}},
		{"departed ride", &models.Ride{
			Status:         models.RideStatusPending,
			DepartureTime:  time.Now().Add(-time.Hour),
			AvailableSeats: 3,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rideID := uuid.New()
			tt.ride.RideID = rideID
			mockRepo.EXPECT().GetRideForBooking(gomock.Any(), rideID).Return(tt.ride, nil)

			booking, err := uc.CreateBooking(context.Background(), uuid.New(), models.BookingCreateRequest{
				RideID: rideID,
				Seats:  1,
			})

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, models.ErrServerRejected)
		})
	}
}

func TestPayBooking_SettledAndAutoConfirmed(t *testing.T) {
	uc, mockRepo, mockGW, mockPayment := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockPayment.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChargeRequest) (*models.PaymentResult, error) {
			assert.Equal(t, models.ProviderMTN, req.Provider)
			assert.Equal(t, "256772123456", req.Phone)
			assert.Equal(t, booking.TotalAmount, req.Amount)
			return &models.PaymentResult{
				ReferenceID: "MM-2026-001",
				Status:      models.PaymentStatusSettled,
				SettledAt:   time.Now(),
			}, nil
		})
	mockRepo.EXPECT().
		MarkPaidWithSeats(gomock.Any(), booking.BookingID, booking.RideID, booking.SeatsBooked).
		Return(nil)
	mockRepo.EXPECT().
		UpdateStatusGuarded(gomock.Any(), booking.BookingID, models.BookingStatusPaid, models.BookingStatusConfirmed).
		Return(nil)
	// One event for paid, one for confirmed
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
		Phone: "0772123456",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, paid.Status)
}

func TestPayBooking_NoAutoConfirmStaysPaid(t *testing.T) {
	uc, mockRepo, mockGW, mockPayment := setupBookingUC(t, false)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockPayment.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&models.PaymentResult{
		ReferenceID: "MM-2026-002",
		Status:      models.PaymentStatusSettled,
	}, nil)
	mockRepo.EXPECT().
		MarkPaidWithSeats(gomock.Any(), booking.BookingID, booking.RideID, booking.SeatsBooked).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
		Phone: "0701234567",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaid, paid.Status)
}

func TestPayBooking_ChargeFailedCancelsBooking(t *testing.T) {
	uc, mockRepo, mockGW, mockPayment := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockPayment.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&models.PaymentResult{
		Status:  models.PaymentStatusFailed,
		Message: "insufficient balance",
	}, nil)
	mockRepo.EXPECT().
		CancelWithSeatRestore(gomock.Any(), booking.BookingID, booking.RideID, models.BookingStatusPending, 0).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
		Phone: "0772123456",
	})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, models.ErrPaymentFailed)
}

func TestPayBooking_SeatsGoneRefundsAndCancels(t *testing.T) {
	uc, mockRepo, mockGW, mockPayment := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockPayment.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&models.PaymentResult{
		ReferenceID: "MM-2026-003",
		Status:      models.PaymentStatusSettled,
	}, nil)
	mockRepo.EXPECT().
		MarkPaidWithSeats(gomock.Any(), booking.BookingID, booking.RideID, booking.SeatsBooked).
		Return(models.ErrSeatsUnavailable)
	mockPayment.EXPECT().Refund(gomock.Any(), "MM-2026-003", booking.TotalAmount).Return(nil)
	mockRepo.EXPECT().
		CancelWithSeatRestore(gomock.Any(), booking.BookingID, booking.RideID, models.BookingStatusPending, 0).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
		Phone: "0783456789",
	})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, models.ErrSeatsUnavailable)
}

func TestPayBooking_InvalidPhone(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
		Phone: "0712345678",
	})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, models.ErrServerRejected)
}

func TestPayBooking_NonPendingRejected(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	passengerID := uuid.New()

	for _, status := range []models.BookingStatus{
		models.BookingStatusPaid,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := pendingBooking(passengerID)
			booking.Status = status

			mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)

			paid, err := uc.PayBooking(context.Background(), booking.BookingID, passengerID, models.BookingPayRequest{
				Phone: "0772123456",
			})

			assert.Nil(t, paid)
			assert.ErrorIs(t, err, models.ErrInvalidTransition)
		})
	}
}

func TestPayBooking_NotOwner(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	booking := pendingBooking(uuid.New())
	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)

	paid, err := uc.PayBooking(context.Background(), booking.BookingID, uuid.New(), models.BookingPayRequest{
		Phone: "0772123456",
	})

	assert.Nil(t, paid)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestConfirmBooking_OnlyFromPaid(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, false)

	driverID := uuid.New()
	booking := pendingBooking(uuid.New())
	booking.Status = models.BookingStatusPaid
	ride := &models.Ride{RideID: booking.RideID, DriverID: driverID}

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().GetRideForBooking(gomock.Any(), booking.RideID).Return(ride, nil)
	mockRepo.EXPECT().
		UpdateStatusGuarded(gomock.Any(), booking.BookingID, models.BookingStatusPaid, models.BookingStatusConfirmed).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	confirmed, err := uc.ConfirmBooking(context.Background(), booking.BookingID, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
}

func TestConfirmBooking_PendingRejected(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, false)

	driverID := uuid.New()
	booking := pendingBooking(uuid.New())
	ride := &models.Ride{RideID: booking.RideID, DriverID: driverID}

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().GetRideForBooking(gomock.Any(), booking.RideID).Return(ride, nil)

	confirmed, err := uc.ConfirmBooking(context.Background(), booking.BookingID, driverID)

	assert.Nil(t, confirmed)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestConfirmBooking_WrongDriver(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, false)

	booking := pendingBooking(uuid.New())
	booking.Status = models.BookingStatusPaid
	ride := &models.Ride{RideID: booking.RideID, DriverID: uuid.New()}

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().GetRideForBooking(gomock.Any(), booking.RideID).Return(ride, nil)

	confirmed, err := uc.ConfirmBooking(context.Background(), booking.BookingID, uuid.New())

	assert.Nil(t, confirmed)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestCancelBooking_PaidRestoresSeats(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)
	booking.Status = models.BookingStatusPaid

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().
		CancelWithSeatRestore(gomock.Any(), booking.BookingID, booking.RideID, models.BookingStatusPaid, booking.SeatsBooked).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	cancelled, err := uc.CancelBooking(context.Background(), booking.BookingID, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelBooking_PendingRestoresNothing(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, true)

	passengerID := uuid.New()
	booking := pendingBooking(passengerID)

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().
		CancelWithSeatRestore(gomock.Any(), booking.BookingID, booking.RideID, models.BookingStatusPending, 0).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	cancelled, err := uc.CancelBooking(context.Background(), booking.BookingID, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelBooking_TerminalRejected(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	passengerID := uuid.New()

	for _, status := range []models.BookingStatus{
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := pendingBooking(passengerID)
			booking.Status = status

			mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)

			cancelled, err := uc.CancelBooking(context.Background(), booking.BookingID, passengerID)

			assert.Nil(t, cancelled)
			assert.ErrorIs(t, err, models.ErrInvalidTransition)
		})
	}
}

func TestHandlePaymentSettled_PendingBecomesPaid(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, true)

	booking := pendingBooking(uuid.New())
	event := models.PaymentSettledEvent{
		BookingID:   booking.BookingID,
		ReferenceID: "MM-2026-010",
		Status:      models.PaymentStatusSettled,
	}

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().
		MarkPaidWithSeats(gomock.Any(), booking.BookingID, booking.RideID, booking.SeatsBooked).
		Return(nil)
	mockRepo.EXPECT().
		UpdateStatusGuarded(gomock.Any(), booking.BookingID, models.BookingStatusPaid, models.BookingStatusConfirmed).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := uc.HandlePaymentSettled(context.Background(), event)

	assert.NoError(t, err)
}

func TestHandlePaymentSettled_DuplicateDeliveryIsNoop(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	booking := pendingBooking(uuid.New())
	booking.Status = models.BookingStatusConfirmed

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)

	err := uc.HandlePaymentSettled(context.Background(), models.PaymentSettledEvent{
		BookingID: booking.BookingID,
		Status:    models.PaymentStatusSettled,
	})

	assert.NoError(t, err)
}

func TestHandlePaymentSettled_SeatsGoneRefunds(t *testing.T) {
	uc, mockRepo, mockGW, mockPayment := setupBookingUC(t, true)

	booking := pendingBooking(uuid.New())
	event := models.PaymentSettledEvent{
		BookingID:   booking.BookingID,
		ReferenceID: "MM-2026-011",
		Status:      models.PaymentStatusSettled,
	}

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), booking.BookingID).Return(booking, nil)
	mockRepo.EXPECT().
		MarkPaidWithSeats(gomock.Any(), booking.BookingID, booking.RideID, booking.SeatsBooked).
		Return(models.ErrSeatsUnavailable)
	mockPayment.EXPECT().Refund(gomock.Any(), "MM-2026-011", booking.TotalAmount).Return(nil)
	mockRepo.EXPECT().
		CancelWithSeatRestore(gomock.Any(), booking.BookingID, booking.RideID, models.BookingStatusPending, 0).
		Return(nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.HandlePaymentSettled(context.Background(), event)

	assert.NoError(t, err)
}

func TestExpireStale_PublishesCancellations(t *testing.T) {
	uc, mockRepo, mockGW, _ := setupBookingUC(t, true)

	expired := []models.Booking{
		{BookingID: uuid.New(), RideID: uuid.New(), Status: models.BookingStatusCancelled},
		{BookingID: uuid.New(), RideID: uuid.New(), Status: models.BookingStatusCancelled},
	}

	mockRepo.EXPECT().ExpirePending(gomock.Any(), 15*time.Minute).Return(expired, nil)
	mockGW.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	count, err := uc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExpireStale_RepoError(t *testing.T) {
	uc, mockRepo, _, _ := setupBookingUC(t, true)

	mockRepo.EXPECT().ExpirePending(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	count, err := uc.ExpireStale(context.Background())

	assert.Zero(t, count)
	assert.Error(t, err)
}
