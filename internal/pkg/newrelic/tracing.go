package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the transaction nrecho attached to the request
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the transaction from a standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// AddAttribute adds a custom attribute to the transaction in ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports err on the transaction in ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment runs fn inside a named segment
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}

// WithSegmentAndReturn runs fn inside a named segment and returns its value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}

// WithDatastoreSegment times a Postgres or Redis call
func WithDatastoreSegment(ctx context.Context, product newrelic.DatastoreProduct, collection, operation string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		segment := newrelic.DatastoreSegment{
			StartTime:  txn.StartSegmentNow(),
			Product:    product,
			Collection: collection,
			Operation:  operation,
		}
		defer segment.End()
	}
	return fn()
}

// WithMessageSegment times a NATS publish
func WithMessageSegment(ctx context.Context, subject string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		segment := newrelic.MessageProducerSegment{
			StartTime:       txn.StartSegmentNow(),
			Library:         "NATS",
			DestinationType: newrelic.MessageTopic,
			DestinationName: subject,
		}
		defer segment.End()
	}
	return fn()
}

// TraceHandler names the transaction after the handler and reports its error
func TraceHandler(handlerName string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := FromEchoContext(c)
		if txn != nil {
			txn.SetName(handlerName)
		}

		err := handler(c)
		if err != nil && txn != nil {
			txn.NoticeError(err)
		}
		return err
	}
}
