package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/models"
)

func paymentConfig(baseURL string) *models.Config {
	return &models.Config{
		Payment: models.PaymentConfig{
			BaseURL:        baseURL,
			APIKey:         "test-api-key",
			TimeoutSeconds: 5,
		},
	}
}

func TestCharge_MTNSettled(t *testing.T) {
	bookingID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/momo/collections", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, bookingID.String(), r.Header.Get("X-Idempotency-Key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "256772123456", body["msisdn"])
		assert.Equal(t, "UGX", body["currency"])

		json.NewEncoder(w).Encode(models.PaymentResult{
			ReferenceID: "MM-REF-42",
			Status:      models.PaymentStatusSettled,
			SettledAt:   time.Now(),
		})
	}))
	defer server.Close()

	gw := NewPaymentGW(paymentConfig(server.URL))

	result, err := gw.Charge(context.Background(), models.ChargeRequest{
		BookingID: bookingID,
		Phone:     "256772123456",
		Amount:    50000,
		Provider:  models.ProviderMTN,
	})

	require.NoError(t, err)
	assert.Equal(t, "MM-REF-42", result.ReferenceID)
	assert.Equal(t, models.PaymentStatusSettled, result.Status)
}

func TestCharge_AirtelRoutesToAirtelPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/airtel/collections", r.URL.Path)
		json.NewEncoder(w).Encode(models.PaymentResult{
			ReferenceID: "AM-REF-7",
			Status:      models.PaymentStatusFailed,
			Message:     "insufficient balance",
		})
	}))
	defer server.Close()

	gw := NewPaymentGW(paymentConfig(server.URL))

	result, err := gw.Charge(context.Background(), models.ChargeRequest{
		BookingID: uuid.New(),
		Phone:     "256701234567",
		Amount:    20000,
		Provider:  models.ProviderAirtel,
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, result.Status)
	assert.Equal(t, "insufficient balance", result.Message)
}

func TestCharge_UnsupportedProvider(t *testing.T) {
	gw := NewPaymentGW(paymentConfig("http://localhost:0"))

	result, err := gw.Charge(context.Background(), models.ChargeRequest{
		BookingID: uuid.New(),
		Provider:  models.PaymentProvider("mpesa"),
	})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestCharge_GatewayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewPaymentGW(paymentConfig(server.URL))

	result, err := gw.Charge(context.Background(), models.ChargeRequest{
		BookingID: uuid.New(),
		Phone:     "256772123456",
		Amount:    1000,
		Provider:  models.ProviderMTN,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNetworkUnavailable)
}

func TestCharge_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewPaymentGW(paymentConfig(server.URL))

	result, err := gw.Charge(context.Background(), models.ChargeRequest{
		BookingID: uuid.New(),
		Phone:     "256772123456",
		Amount:    1000,
		Provider:  models.ProviderMTN,
	})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestRefund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/momo/refunds", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "MM-REF-42", body["reference_id"])
		assert.Equal(t, float64(50000), body["amount"])

		json.NewEncoder(w).Encode(models.PaymentResult{
			ReferenceID: "MM-REF-42",
			Status:      models.PaymentStatusSettled,
		})
	}))
	defer server.Close()

	gw := NewPaymentGW(paymentConfig(server.URL))

	err := gw.Refund(context.Background(), "MM-REF-42", 50000)

	assert.NoError(t, err)
}
