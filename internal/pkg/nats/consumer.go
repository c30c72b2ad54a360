package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
)

// MessageHandler processes the payload of one message
type MessageHandler func(data []byte) error

// Consumer delivers every message of a subject to a handler. Handler errors
// are logged; core NATS has no redelivery.
type Consumer struct {
	subject string
	sub     *nats.Subscription
}

// NewConsumer subscribes handler to subject on client
func NewConsumer(client *Client, subject string, handler MessageHandler) (*Consumer, error) {
	sub, err := client.Subscribe(subject, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Failed to handle NATS message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consumer for %s: %w", subject, err)
	}

	logger.Info("NATS consumer started", logger.String("subject", subject))
	return &Consumer{subject: subject, sub: sub}, nil
}

// Subject returns the subscribed subject
func (c *Consumer) Subject() string {
	return c.subject
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.sub == nil {
		return
	}
	if err := c.sub.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", logger.String("subject", c.subject), logger.Err(err))
	}
}
