package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/twende/twende/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream.
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

// ConsumerConfig describes a durable JetStream consumer.
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	ReplayPolicy  jetstream.ReplayPolicy
	MaxAckPending int
}

// DefaultStreamConfigs returns the stream layout for the carpooling system.
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		{
			Name: constants.StreamRides,
			Subjects: []string{
				constants.SubjectRideCreated,
				constants.SubjectRideStatus,
			},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024,
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
		{
			Name: constants.StreamBookings,
			Subjects: []string{
				constants.SubjectBookingRequested,
				constants.SubjectBookingPaid,
				constants.SubjectBookingConfirmed,
				constants.SubjectBookingCancelled,
			},
			// InterestPolicy: booking events are consumed by both the
			// rides service and the realtime push layer
			Retention: jetstream.InterestPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024,
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
		{
			Name: constants.StreamPayments,
			Subjects: []string{
				constants.SubjectPaymentSettled,
			},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    1 * time.Hour,
			MaxBytes:  50 * 1024 * 1024,
			MaxMsgs:   500000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// DefaultConsumerConfigs returns the durable consumers used by the services.
func DefaultConsumerConfigs() map[string]ConsumerConfig {
	base := func(stream, name, subject string) ConsumerConfig {
		return ConsumerConfig{
			StreamName:    stream,
			ConsumerName:  name,
			FilterSubject: subject,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			ReplayPolicy:  jetstream.ReplayInstantPolicy,
			MaxAckPending: 1000,
		}
	}

	return map[string]ConsumerConfig{
		// Rides service watches booking lifecycle events
		"booking_paid_rides":      base(constants.StreamBookings, "booking_paid_rides", constants.SubjectBookingPaid),
		"booking_cancelled_rides": base(constants.StreamBookings, "booking_cancelled_rides", constants.SubjectBookingCancelled),

		// Bookings service watches externally-settled payments
		"payment_settled_bookings": base(constants.StreamPayments, "payment_settled_bookings", constants.SubjectPaymentSettled),

		// Realtime push layer watches every booking event
		"booking_events_push": base(constants.StreamBookings, "booking_events_push", "booking.>"),
	}
}
