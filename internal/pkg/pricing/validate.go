package pricing

import (
	"math"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

// Validate rejects a configuration that would produce negative, NaN or infinite prices.
func Validate(cfg models.PricingConfig) error {
	if !cfg.Mode.Valid() {
		return apperrors.InvalidConfiguration("unknown transport mode %q", cfg.Mode)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"basePrice", cfg.BasePrice},
		{"pricePerKm", cfg.PricePerKm},
		{"pricePerMile", cfg.PricePerMile},
		{"standardMultiplier", cfg.StandardMultiplier},
		{"privateMultiplier", cfg.PrivateMultiplier},
		{"companionBaseFee", cfg.CompanionBaseFee},
		{"companionPerKm", cfg.CompanionPerKm},
		{"companionMaxFee", cfg.CompanionMaxFee},
		{"maxGroundDistanceKm", cfg.MaxGroundDistanceKm},
		{"longFlightThresholdKm", cfg.LongFlightThresholdKm},
		{"longFlightCompanionFee", cfg.LongFlightCompanionFee},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return apperrors.InvalidConfiguration("%s pricing %s must be a finite number", cfg.Mode, f.name)
		}
		if f.value < 0 {
			return apperrors.InvalidConfiguration("%s pricing %s must not be negative, got %v", cfg.Mode, f.name, f.value)
		}
	}

	if math.IsNaN(cfg.AverageSpeedKmh) || math.IsInf(cfg.AverageSpeedKmh, 0) || cfg.AverageSpeedKmh <= 0 {
		return apperrors.InvalidConfiguration("%s pricing averageSpeedKmh must be positive, got %v", cfg.Mode, cfg.AverageSpeedKmh)
	}

	return nil
}
