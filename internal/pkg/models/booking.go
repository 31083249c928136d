package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a passenger's request to occupy one or more seats
// on a ride.
type Booking struct {
	BookingID   uuid.UUID     `json:"booking_id" db:"booking_id"`
	RideID      uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatsBooked int           `json:"seats_booked" db:"seats_booked"`
	TotalAmount float64       `json:"total_amount" db:"total_amount"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// bookingTransitions is the lifecycle table: pending -> paid -> confirmed,
// with cancelled reachable from pending or paid only.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {BookingStatusPaid, BookingStatusCancelled},
	BookingStatusPaid:    {BookingStatusConfirmed, BookingStatusCancelled},
}

// CanTransition reports whether a booking may move from its current
// status to the target status. Confirmed and cancelled are terminal.
func (b *Booking) CanTransition(to BookingStatus) bool {
	return CanTransitionBooking(b.Status, to)
}

// CanTransitionBooking reports whether the from -> to booking status
// change is allowed by the lifecycle table.
func CanTransitionBooking(from, to BookingStatus) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the booking status is terminal.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// BookingCreateRequest is the passenger-facing payload for requesting seats.
type BookingCreateRequest struct {
	RideID uuid.UUID `json:"ride_id"`
	Seats  int       `json:"seats"`
}

// BookingPayRequest is the payload for paying a pending booking.
type BookingPayRequest struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}
