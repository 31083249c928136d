package locations

import (
	"context"

	"github.com/twende/twende/internal/pkg/models"
)

// GeocodeGW defines the interface to the external geocoding service
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/twende/twende/services/locations GeocodeGW
type GeocodeGW interface {
	Geocode(ctx context.Context, address string) (*models.LocationPoint, error)
}
