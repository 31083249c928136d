package constants

// NATS Subjects
const (
	// Ride events
	SubjectRideCreated = "ride.created"
	SubjectRideStatus  = "ride.status"

	// Booking lifecycle events
	SubjectBookingRequested = "booking.requested"
	SubjectBookingPaid      = "booking.paid"
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingCancelled = "booking.cancelled"

	// Payment collaborator
	SubjectPaymentSettled = "payment.settled"
)

// JetStream stream names
const (
	StreamRides    = "RIDE_STREAM"
	StreamBookings = "BOOKING_STREAM"
	StreamPayments = "PAYMENT_STREAM"
)
