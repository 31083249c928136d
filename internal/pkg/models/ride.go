package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusConfirmed  RideStatus = "confirmed"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// Ride represents a driver-posted trip offering a fixed number of seats
// at a fixed per-seat price. Rides are never deleted, only transitioned
// to a terminal status.
type Ride struct {
	RideID             uuid.UUID  `json:"ride_id" db:"ride_id"`
	DriverID           uuid.UUID  `json:"driver_id" db:"driver_id"`
	OriginAddress      string     `json:"origin_address" db:"origin_address"`
	DestinationAddress string     `json:"destination_address" db:"destination_address"`
	DepartureTime      time.Time  `json:"departure_time" db:"departure_time"`
	PricePerSeat       float64    `json:"price_per_seat" db:"price_per_seat"`
	AvailableSeats     int        `json:"available_seats" db:"available_seats"`
	Status             RideStatus `json:"status" db:"status"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	// Driver is the denormalized driver projection joined for display.
	Driver *DriverInfo `json:"driver,omitempty" db:"-"`
}

// DriverInfo is the read-only driver projection joined onto rides.
type DriverInfo struct {
	DriverID    uuid.UUID `json:"driver_id" db:"p_driver_id"`
	FullName    string    `json:"full_name" db:"full_name"`
	AvatarURL   string    `json:"avatar_url" db:"avatar_url"`
	Rating      float64   `json:"rating" db:"rating"`
	RatingCount int       `json:"rating_count" db:"rating_count"`
}

// rideTransitions lists the allowed driver-initiated status changes.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:    {RideStatusConfirmed, RideStatusCancelled},
	RideStatusConfirmed:  {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted},
}

// CanTransition reports whether a ride may move from its current status
// to the target status.
func (r *Ride) CanTransition(to RideStatus) bool {
	for _, s := range rideTransitions[r.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the ride status is terminal.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// SearchCriteria narrows a ride search. Nil fields impose no constraint.
// The repository always applies the eligibility floor (pending status,
// seats available, future departure) regardless of criteria.
type SearchCriteria struct {
	OriginSubstring      string     `json:"origin,omitempty"`
	DestinationSubstring string     `json:"destination,omitempty"`
	Date                 *time.Time `json:"date,omitempty"`
	MinSeats             *int       `json:"min_seats,omitempty"`
	MinPrice             *float64   `json:"min_price,omitempty"`
	MaxPrice             *float64   `json:"max_price,omitempty"`
}

// RideCreateRequest is the driver-facing payload for posting a ride.
type RideCreateRequest struct {
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	DepartureTime      time.Time `json:"departure_time"`
	PricePerSeat       float64   `json:"price_per_seat"`
	AvailableSeats     int       `json:"available_seats"`
}
