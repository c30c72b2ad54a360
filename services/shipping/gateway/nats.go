package gateway

import (
	"context"

	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	natspkg "github.com/pawsfam/pawhaven/internal/pkg/nats"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/services/shipping"
)

// shippingGW publishes shipping events to NATS
type shippingGW struct {
	natsClient *natspkg.Client
	metrics    *metrics.Metrics
}

// NewShippingGW creates a new NATS gateway instance
func NewShippingGW(client *natspkg.Client, m *metrics.Metrics) shipping.ShippingGW {
	return &shippingGW{
		natsClient: client,
		metrics:    m,
	}
}

// PublishPricingConfigUpdated tells every instance to drop its cached config of a mode
func (g *shippingGW) PublishPricingConfigUpdated(ctx context.Context, event models.PricingConfigUpdatedEvent) error {
	return g.publish(ctx, constants.SubjectPricingConfigUpdated, event)
}

// PublishShippingMethodSelected announces a shipping method attached to a cart
func (g *shippingGW) PublishShippingMethodSelected(ctx context.Context, event models.ShippingMethodSelectedEvent) error {
	logger.Debug("Publishing shipping method selected",
		logger.String("method_id", event.MethodID),
		logger.Mode(string(event.Mode)))
	return g.publish(ctx, constants.SubjectShippingMethodSelected, event)
}

func (g *shippingGW) publish(ctx context.Context, subject string, event interface{}) error {
	err := nrpkg.WithMessageSegment(ctx, subject, func() error {
		return g.natsClient.PublishJSON(subject, event)
	})
	g.metrics.RecordEventPublished(subject, err == nil)
	return err
}
