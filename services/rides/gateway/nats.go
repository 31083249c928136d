package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twende/twende/internal/pkg/constants"
	"github.com/twende/twende/internal/pkg/models"
	natspkg "github.com/twende/twende/internal/pkg/nats"
	"github.com/twende/twende/services/rides"
)

// RideGW handles NATS publishing for ride events
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideCreated publishes a ride created event to NATS
func (g *RideGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideCreated, ride)
}

// PublishRideStatus publishes a ride status/seat change event to NATS
func (g *RideGW) PublishRideStatus(ctx context.Context, ride *models.Ride) error {
	return g.publish(constants.SubjectRideStatus, ride)
}

func (g *RideGW) publish(subject string, ride *models.Ride) error {
	event := models.RideEvent{
		RideID:         ride.RideID,
		DriverID:       ride.DriverID,
		Status:         ride.Status,
		AvailableSeats: ride.AvailableSeats,
		OccurredAt:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
