package shipping

import (
	"context"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

// ShippingGW defines the shipping event publishing interface
type ShippingGW interface {
	PublishPricingConfigUpdated(ctx context.Context, event models.PricingConfigUpdatedEvent) error
	PublishShippingMethodSelected(ctx context.Context, event models.ShippingMethodSelectedEvent) error
}
