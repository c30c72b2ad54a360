package pricing

import "github.com/pawsfam/pawhaven/internal/pkg/models"

// DefaultConfig returns the documented pricing defaults used when no stored
// configuration exists for a mode.
func DefaultConfig(mode models.TransportMode) (models.PricingConfig, bool) {
	switch mode {
	case models.TransportModeGround:
		return models.PricingConfig{
			Mode:                models.TransportModeGround,
			BasePrice:           200,
			PricePerKm:          0.80,
			PricePerMile:        1.29,
			StandardMultiplier:  1.0,
			PrivateMultiplier:   1.75,
			CompanionBaseFee:    150,
			CompanionPerKm:      0.10,
			CompanionMaxFee:     300,
			MaxGroundDistanceKm: 5000,
			AverageSpeedKmh:     60,
			IsEnabled:           true,
		}, true
	case models.TransportModeAir:
		return models.PricingConfig{
			Mode:                   models.TransportModeAir,
			BasePrice:              400,
			PricePerKm:             0.60,
			PricePerMile:           0.96,
			StandardMultiplier:     1.0,
			PrivateMultiplier:      1.75,
			CompanionBaseFee:       300,
			CompanionPerKm:         0.05,
			CompanionMaxFee:        700,
			LongFlightThresholdKm:  3000,
			LongFlightCompanionFee: 700,
			AverageSpeedKmh:        800,
			IsEnabled:              true,
		}, true
	default:
		return models.PricingConfig{}, false
	}
}
