package pricing

import (
	"fmt"
	"math"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// Breakdown is the unrounded price of a distance under one pricing config
type Breakdown struct {
	Mode          models.TransportMode
	DistanceKm    float64
	StandardPrice float64
	PrivatePrice  float64
	CompanionFee  float64
}

// TierPrice returns the price of the requested tier
func (b *Breakdown) TierPrice(tier models.ServiceTier) float64 {
	if tier == models.ServiceTierPrivate {
		return b.PrivatePrice
	}
	return b.StandardPrice
}

// Total returns the tier price plus the companion fee when a companion is booked
func (b *Breakdown) Total(tier models.ServiceTier, hasCompanion bool) float64 {
	total := b.TierPrice(tier)
	if hasCompanion {
		total += b.CompanionFee
	}
	return total
}

// Calculate prices a distance. It refuses disabled modes, invalid configs and
// out of range routes rather than returning a zero price.
func Calculate(distanceKm float64, cfg models.PricingConfig) (*Breakdown, error) {
	strategy, err := StrategyFor(cfg.Mode)
	if err != nil {
		return nil, err
	}
	if !cfg.IsEnabled {
		return nil, apperrors.TransportDisabled(string(cfg.Mode))
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return nil, fmt.Errorf("%w: distance %v", apperrors.ErrInvalidInput, distanceKm)
	}
	if err := strategy.CheckRange(distanceKm, cfg); err != nil {
		return nil, err
	}

	standard, private := strategy.TierPrices(distanceKm, cfg)
	return &Breakdown{
		Mode:          cfg.Mode,
		DistanceKm:    distanceKm,
		StandardPrice: standard,
		PrivatePrice:  private,
		CompanionFee:  strategy.CompanionFee(distanceKm, cfg),
	}, nil
}

// Quote prices the route between two resolved locations. Nil locations are
// unresolved and never priced.
func Quote(origin, destination *models.Location, cfg models.PricingConfig, tier models.ServiceTier, hasCompanion bool) (*models.ShippingQuote, error) {
	if origin == nil {
		return nil, apperrors.UnresolvedLocation("origin is not resolved")
	}
	if destination == nil {
		return nil, apperrors.UnresolvedLocation("destination is not resolved")
	}
	if tier == "" {
		tier = models.ServiceTierStandard
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown service tier %q", apperrors.ErrInvalidInput, tier)
	}

	distanceKm := utils.DistanceBetween(*origin, *destination)

	breakdown, err := Calculate(distanceKm, cfg)
	if err != nil {
		return nil, err
	}

	travelTime, err := utils.EstimateTravelTime(distanceKm, cfg.AverageSpeedKmh)
	if err != nil {
		return nil, err
	}

	return &models.ShippingQuote{
		Mode:              cfg.Mode,
		Tier:              tier,
		Origin:            *origin,
		Destination:       *destination,
		DistanceKm:        distanceKm,
		DistanceMiles:     utils.KmToMiles(distanceKm),
		TravelTime:        travelTime,
		HasCompanion:      hasCompanion,
		StandardPrice:     breakdown.StandardPrice,
		PrivatePrice:      breakdown.PrivatePrice,
		BaseShippingPrice: breakdown.TierPrice(tier),
		CompanionFee:      breakdown.CompanionFee,
		TotalPrice:        breakdown.Total(tier, hasCompanion),
		DestinationLabel:  destination.Label,
	}, nil
}
