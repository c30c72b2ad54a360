package shipping

import (
	"context"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// ShippingUC defines the shipping quote business logic
type ShippingUC interface {
	// Gazetteer
	ListCountries() []models.Country
	GetCountry(countryID string) (*models.Country, error)
	GetRegion(countryID, regionID string) (*models.GeoPoint, error)

	// Stateless quotes
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.ShippingQuote, error)
	Options(ctx context.Context, req *models.RouteRequest) (*models.ShippingOptions, error)

	// Quote sessions
	CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*selection.Selection, error)
	GetSession(ctx context.Context, sessionID string) (*selection.Selection, error)
	SelectCountry(ctx context.Context, sessionID, countryID string) (*selection.Selection, error)
	SelectRegion(ctx context.Context, sessionID, regionID string) (*selection.Selection, error)
	SetCompanion(ctx context.Context, sessionID string, hasCompanion bool) (*selection.Selection, error)
	SetTier(ctx context.Context, sessionID string, tier models.ServiceTier) (*selection.Selection, error)
	SetMode(ctx context.Context, sessionID string, mode models.TransportMode) (*selection.Selection, error)

	// Cart integration
	ConfirmShippingMethod(ctx context.Context, req *models.ConfirmMethodRequest) (*models.ShippingMethod, error)

	// Pricing configuration
	PricingConfig(ctx context.Context, mode models.TransportMode) (models.PricingConfig, error)
	ListPricingConfigs(ctx context.Context) ([]models.PricingConfig, error)
	GetPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error)
	UpdatePricingConfig(ctx context.Context, cfg *models.PricingConfig) (*models.PricingConfig, error)
	InvalidatePricingConfig(ctx context.Context, mode models.TransportMode) error
}
