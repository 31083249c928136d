package nats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/twende/twende/internal/pkg/logger"
)

// JetStreamMessageHandler is a function that processes JetStream
// messages; returning an error NAKs the message for redelivery.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Client represents a JetStream-enabled NATS client.
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	mu        sync.Mutex
	streams   map[string]jetstream.Stream
	consumers map[string]jetstream.Consumer
	consuming []jetstream.ConsumeContext
}

// NewClient connects to NATS, enables JetStream and provisions the
// default streams.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		conn:      conn,
		js:        js,
		streams:   make(map[string]jetstream.Stream),
		consumers: make(map[string]jetstream.Consumer),
	}

	if err := client.initStreams(); err != nil {
		conn.Close()
		return nil, err
	}

	return client, nil
}

// initStreams creates or updates the default streams
func (c *Client) initStreams() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, cfg := range DefaultStreamConfigs() {
		stream, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      cfg.Name,
			Subjects:  cfg.Subjects,
			Retention: cfg.Retention,
			Storage:   cfg.Storage,
			Replicas:  cfg.Replicas,
			MaxAge:    cfg.MaxAge,
			MaxBytes:  cfg.MaxBytes,
			MaxMsgs:   cfg.MaxMsgs,
			Discard:   cfg.Discard,
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
		}
		c.streams[cfg.Name] = stream

		logger.Info("JetStream stream ready",
			logger.String("stream", cfg.Name),
			logger.Any("subjects", cfg.Subjects))
	}

	return nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports whether the NATS connection is alive.
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Publish sends a message to the specified subject through JetStream.
func (c *Client) Publish(subject string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", subject, err)
	}
	return nil
}

// CreateConsumer creates a durable consumer on a stream.
func (c *Client) CreateConsumer(config ConsumerConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stream, ok := c.streams[config.StreamName]
	if !ok {
		return fmt.Errorf("unknown stream: %s", config.StreamName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		ReplayPolicy:  config.ReplayPolicy,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	c.consumers[consumerKey(config.StreamName, config.ConsumerName)] = consumer
	return nil
}

// ConsumeMessages starts consuming messages from a previously created
// consumer. Handler errors NAK the message for redelivery.
func (c *Client) ConsumeMessages(streamName, consumerName string, handler JetStreamMessageHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	consumer, ok := c.consumers[consumerKey(streamName, consumerName)]
	if !ok {
		return fmt.Errorf("consumer %s not found on stream %s", consumerName, streamName)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", consumerName, err)
	}

	c.consuming = append(c.consuming, consumeCtx)
	return nil
}

// Close stops all consumers and closes the NATS connection
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cc := range c.consuming {
		cc.Stop()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

func consumerKey(stream, consumer string) string {
	return fmt.Sprintf("%s:%s", stream, consumer)
}
