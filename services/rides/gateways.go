package rides

import (
	"context"

	"github.com/twende/twende/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/twende/twende/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideStatus(ctx context.Context, ride *models.Ride) error
}
