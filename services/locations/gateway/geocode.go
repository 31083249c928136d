package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/twende/twende/internal/pkg/models"
)

// GeocodeGW resolves free-form addresses to coordinates through the
// external geocoding API.
type GeocodeGW struct {
	cfg        *models.Config
	httpClient *http.Client
}

// NewGeocodeGW creates a new geocoding gateway
func NewGeocodeGW(cfg *models.Config) *GeocodeGW {
	timeout := time.Duration(cfg.Geocode.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GeocodeGW{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude         float64 `json:"lat"`
		Longitude        float64 `json:"lng"`
		FormattedAddress string  `json:"formatted_address"`
	} `json:"results"`
}

// Geocode resolves an address to a location point. An address the
// provider cannot resolve returns an error, not a zero point.
func (g *GeocodeGW) Geocode(ctx context.Context, address string) (*models.LocationPoint, error) {
	endpoint := fmt.Sprintf("%s/v1/geocode?q=%s&key=%s",
		g.cfg.Geocode.BaseURL, url.QueryEscape(address), url.QueryEscape(g.cfg.Geocode.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding service unreachable: %v", models.ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned %d: %s", resp.StatusCode, string(body))
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("no results for address: %s", address)
	}

	best := decoded.Results[0]
	return &models.LocationPoint{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Address:   best.FormattedAddress,
	}, nil
}
