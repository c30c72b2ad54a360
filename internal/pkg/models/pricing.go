package models

import "time"

// TransportMode is how a pet travels
type TransportMode string

const (
	TransportModeGround TransportMode = "ground"
	TransportModeAir    TransportMode = "air"
)

// TransportModes lists every mode in display order
var TransportModes = []TransportMode{TransportModeGround, TransportModeAir}

// Valid reports whether m is a known transport mode
func (m TransportMode) Valid() bool {
	return m == TransportModeGround || m == TransportModeAir
}

// ServiceTier is the shared (standard) or dedicated (private/VIP) transport tier
type ServiceTier string

const (
	ServiceTierStandard ServiceTier = "standard"
	ServiceTierPrivate  ServiceTier = "private"
)

// Valid reports whether t is a known service tier
func (t ServiceTier) Valid() bool {
	return t == ServiceTierStandard || t == ServiceTierPrivate
}

// PricingConfig holds the admin editable rate constants of one transport mode.
// Ground and air share the shape; MaxGroundDistanceKm only applies to ground and
// the long flight fields only apply to air.
type PricingConfig struct {
	Mode                   TransportMode `json:"mode" db:"mode"`
	BasePrice              float64       `json:"basePrice" db:"base_price" validate:"gte=0"`
	PricePerKm             float64       `json:"pricePerKm" db:"price_per_km" validate:"gte=0"`
	PricePerMile           float64       `json:"pricePerMile" db:"price_per_mile" validate:"gte=0"`
	StandardMultiplier     float64       `json:"standardMultiplier" db:"standard_multiplier" validate:"gte=0"`
	PrivateMultiplier      float64       `json:"privateMultiplier" db:"private_multiplier" validate:"gte=0"`
	CompanionBaseFee       float64       `json:"companionBaseFee" db:"companion_base_fee" validate:"gte=0"`
	CompanionPerKm         float64       `json:"companionPerKm" db:"companion_per_km" validate:"gte=0"`
	CompanionMaxFee        float64       `json:"companionMaxFee" db:"companion_max_fee" validate:"gte=0"`
	MaxGroundDistanceKm    float64       `json:"maxGroundDistanceKm" db:"max_ground_distance_km" validate:"gte=0"`
	LongFlightThresholdKm  float64       `json:"longFlightThresholdKm" db:"long_flight_threshold_km" validate:"gte=0"`
	LongFlightCompanionFee float64       `json:"longFlightCompanionFee" db:"long_flight_companion_fee" validate:"gte=0"`
	AverageSpeedKmh        float64       `json:"averageSpeedKmh" db:"average_speed_kmh" validate:"gt=0"`
	IsEnabled              bool          `json:"isEnabled" db:"is_enabled"`
	UpdatedAt              time.Time     `json:"updatedAt" db:"updated_at"`
}
