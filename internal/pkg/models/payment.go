package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProvider identifies a mobile money provider.
type PaymentProvider string

const (
	ProviderMTN    PaymentProvider = "mtn"
	ProviderAirtel PaymentProvider = "airtel"
)

// PaymentStatus represents the terminal outcome of a charge.
type PaymentStatus string

const (
	PaymentStatusSettled PaymentStatus = "settled"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ChargeRequest is the request sent to the mobile money gateway.
type ChargeRequest struct {
	BookingID uuid.UUID       `json:"booking_id"`
	Phone     string          `json:"phone"`
	Amount    float64         `json:"amount"`
	Provider  PaymentProvider `json:"provider"`
}

// PaymentResult is the gateway's terminal response to a charge. The
// booking flow only reacts to Status; it never retries a charge itself.
type PaymentResult struct {
	ReferenceID string        `json:"reference_id"`
	Status      PaymentStatus `json:"status"`
	Message     string        `json:"message,omitempty"`
	SettledAt   time.Time     `json:"settled_at"`
}
