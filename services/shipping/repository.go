package shipping

import (
	"context"
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// ShippingRepo defines the shipping data access operations
type ShippingRepo interface {
	// Pricing configs in PostgreSQL. GetPricingConfig returns
	// errors.ErrPricingConfigNotFound when the mode was never saved.
	GetPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error)
	ListPricingConfigs(ctx context.Context) ([]models.PricingConfig, error)
	UpsertPricingConfig(ctx context.Context, cfg *models.PricingConfig) (*models.PricingConfig, error)

	// Pricing config cache in Redis. A miss returns nil, nil.
	GetCachedPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error)
	CachePricingConfig(ctx context.Context, cfg *models.PricingConfig, ttl time.Duration) error
	DeleteCachedPricingConfig(ctx context.Context, mode models.TransportMode) error

	// Quote sessions in Redis. GetSession returns errors.ErrSessionNotFound
	// once the session expired.
	SaveSession(ctx context.Context, session *selection.Selection, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*selection.Selection, error)
}
