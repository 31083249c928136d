package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published on booking lifecycle transitions and
// consumed by the rides service and the realtime push layer.
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	RideID      uuid.UUID     `json:"ride_id"`
	PassengerID uuid.UUID     `json:"passenger_id"`
	SeatsBooked int           `json:"seats_booked"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// RideEvent is published when a ride is created or its status changes.
type RideEvent struct {
	RideID         uuid.UUID  `json:"ride_id"`
	DriverID       uuid.UUID  `json:"driver_id"`
	Status         RideStatus `json:"status"`
	AvailableSeats int        `json:"available_seats"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// PaymentSettledEvent is pushed by the payment collaborator when a
// charge settles out of band. The booking state machine must accept
// these externally-initiated transitions.
type PaymentSettledEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	ReferenceID string        `json:"reference_id"`
	Status      PaymentStatus `json:"status"`
	SettledAt   time.Time     `json:"settled_at"`
}
