package models

import "errors"

// Error taxonomy for the carpooling core. Handlers map these to HTTP
// statuses at the boundary; everything in between wraps with %w.
var (
	// ErrNetworkUnavailable marks a transient transport failure. The
	// caller may retry at the UI layer.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrServerRejected marks a validation failure such as a malformed
	// filter. Not retryable without changing the request.
	ErrServerRejected = errors.New("server rejected request")

	// ErrSeatsUnavailable is returned when a booking would drive a
	// ride's available seats below zero. The booking keeps its prior
	// status; callers must re-query before retrying.
	ErrSeatsUnavailable = errors.New("seats unavailable")

	// ErrPaymentFailed terminates the booking flow; the booking is
	// returned to a cancellable state.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrInvalidTransition marks a booking or ride status change not
	// allowed by the lifecycle table.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrRideNotFound    = errors.New("ride not found")
	ErrBookingNotFound = errors.New("booking not found")
)
