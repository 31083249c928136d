package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/models"
)

func geocodeConfig(baseURL string) *models.Config {
	return &models.Config{
		Geocode: models.GeocodeConfig{
			BaseURL:        baseURL,
			APIKey:         "geo-key",
			TimeoutSeconds: 5,
		},
	}
}

func TestGeocode_ResolvesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/geocode", r.URL.Path)
		assert.Equal(t, "Nakasero Market Kampala", r.URL.Query().Get("q"))
		assert.Equal(t, "geo-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{"results":[{"lat":0.3175,"lng":32.5825,"formatted_address":"Nakasero Market, Kampala, Uganda"}]}`))
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))

	point, err := gw.Geocode(context.Background(), "Nakasero Market Kampala")

	require.NoError(t, err)
	assert.Equal(t, 0.3175, point.Latitude)
	assert.Equal(t, 32.5825, point.Longitude)
	assert.Equal(t, "Nakasero Market, Kampala, Uganda", point.Address)
}

func TestGeocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))

	point, err := gw.Geocode(context.Background(), "xyzzy")

	assert.Nil(t, point)
	assert.Error(t, err)
}

func TestGeocode_ServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))

	point, err := gw.Geocode(context.Background(), "Kampala")

	assert.Nil(t, point)
	assert.ErrorIs(t, err, models.ErrNetworkUnavailable)
}

func TestGeocode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	gw := NewGeocodeGW(geocodeConfig(server.URL))

	point, err := gw.Geocode(context.Background(), "Kampala")

	assert.Nil(t, point)
	assert.Error(t, err)
}
