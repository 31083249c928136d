package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the New Relic transaction from an Echo context.
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	if txn, ok := c.Get("newrelic_txn").(*newrelic.Transaction); ok {
		return txn
	}
	return newrelic.FromContext(c.Request().Context())
}

// FromContext extracts the New Relic transaction from a context.
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// SetTransactionName names the transaction if present.
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction.
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError records an error on the transaction.
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// StartSegment starts a timed segment on the transaction.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// WithSegment runs fn inside a timed segment on the context's transaction.
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return fn()
	}
	seg := txn.StartSegment(segmentName)
	defer seg.End()
	return fn()
}
