package pricing

import (
	"math"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

// Strategy holds the parts of the price formula that differ between transport modes.
type Strategy interface {
	Mode() models.TransportMode
	// TierPrices returns the standard and private prices for a distance.
	TierPrices(distanceKm float64, cfg models.PricingConfig) (standard, private float64)
	// CompanionFee returns the handler add-on fee for a distance.
	CompanionFee(distanceKm float64, cfg models.PricingConfig) float64
	// CheckRange rejects distances the mode cannot serve.
	CheckRange(distanceKm float64, cfg models.PricingConfig) error
}

// StrategyFor returns the pricing strategy of a transport mode
func StrategyFor(mode models.TransportMode) (Strategy, error) {
	switch mode {
	case models.TransportModeGround:
		return groundStrategy{}, nil
	case models.TransportModeAir:
		return airStrategy{}, nil
	default:
		return nil, apperrors.InvalidConfiguration("unknown transport mode %q", mode)
	}
}

type groundStrategy struct{}

func (groundStrategy) Mode() models.TransportMode { return models.TransportModeGround }

func (groundStrategy) TierPrices(distanceKm float64, cfg models.PricingConfig) (float64, float64) {
	standard := cfg.BasePrice + distanceKm*cfg.PricePerKm
	return standard, standard * cfg.PrivateMultiplier
}

func (groundStrategy) CompanionFee(distanceKm float64, cfg models.PricingConfig) float64 {
	return cappedCompanionFee(distanceKm, cfg)
}

func (groundStrategy) CheckRange(distanceKm float64, cfg models.PricingConfig) error {
	if cfg.MaxGroundDistanceKm > 0 && distanceKm > cfg.MaxGroundDistanceKm {
		return apperrors.RouteOutOfRange(string(models.TransportModeGround), distanceKm, cfg.MaxGroundDistanceKm)
	}
	return nil
}

type airStrategy struct{}

func (airStrategy) Mode() models.TransportMode { return models.TransportModeAir }

func (airStrategy) TierPrices(distanceKm float64, cfg models.PricingConfig) (float64, float64) {
	baseCalc := cfg.BasePrice + distanceKm*cfg.PricePerKm
	return baseCalc * cfg.StandardMultiplier, baseCalc * cfg.PrivateMultiplier
}

// CompanionFee switches to the flat long flight fee at the threshold, inclusive.
func (airStrategy) CompanionFee(distanceKm float64, cfg models.PricingConfig) float64 {
	if distanceKm >= cfg.LongFlightThresholdKm {
		return cfg.LongFlightCompanionFee
	}
	return cappedCompanionFee(distanceKm, cfg)
}

func (airStrategy) CheckRange(float64, models.PricingConfig) error {
	return nil
}

func cappedCompanionFee(distanceKm float64, cfg models.PricingConfig) float64 {
	return math.Min(cfg.CompanionBaseFee+distanceKm*cfg.CompanionPerKm, cfg.CompanionMaxFee)
}
