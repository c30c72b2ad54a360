package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	natspkg "github.com/pawsfam/pawhaven/internal/pkg/nats"
	"github.com/pawsfam/pawhaven/services/shipping"
)

// ShippingHandler handles NATS subscriptions for the shipping service
type ShippingHandler struct {
	shippingUC shipping.ShippingUC
	natsClient *natspkg.Client
	metrics    *metrics.Metrics
	consumers  []*natspkg.Consumer
}

// NewShippingHandler creates a new shipping NATS handler
func NewShippingHandler(shippingUC shipping.ShippingUC, client *natspkg.Client, m *metrics.Metrics) *ShippingHandler {
	return &ShippingHandler{
		shippingUC: shippingUC,
		natsClient: client,
		metrics:    m,
	}
}

// InitNATSConsumers initializes all NATS consumers for the shipping service
func (h *ShippingHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectPricingConfigUpdated, h.handlePricingConfigUpdated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to pricing config updates: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop unsubscribes every consumer
func (h *ShippingHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

// handlePricingConfigUpdated drops the local cached copy after another
// instance saved a new config for the mode
func (h *ShippingHandler) handlePricingConfigUpdated(msg []byte) error {
	ctx := context.Background()

	var event models.PricingConfigUpdatedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		h.metrics.RecordEventConsumed(constants.SubjectPricingConfigUpdated, false)
		logger.ErrorCtx(ctx, "Failed to unmarshal pricing config update", logger.Err(err))
		return err
	}

	logger.InfoCtx(ctx, "Received pricing config update",
		logger.Mode(string(event.Mode)),
		logger.String("updated_at", event.UpdatedAt.String()))

	if err := h.shippingUC.InvalidatePricingConfig(ctx, event.Mode); err != nil {
		h.metrics.RecordEventConsumed(constants.SubjectPricingConfigUpdated, false)
		return err
	}

	h.metrics.RecordEventConsumed(constants.SubjectPricingConfigUpdated, true)
	return nil
}
