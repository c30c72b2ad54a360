package models

// CreateSessionRequest opens a quote session for one pet. The origin is the
// pet's location: a country/region pair, legacy free text or raw coordinates.
type CreateSessionRequest struct {
	Mode            TransportMode `json:"mode" validate:"required,oneof=ground air"`
	Tier            ServiceTier   `json:"tier" validate:"omitempty,oneof=standard private"`
	HasCompanion    bool          `json:"hasCompanion"`
	OriginCountryID string        `json:"originCountryId" validate:"omitempty,geo_id"`
	OriginRegionID  string        `json:"originRegionId" validate:"omitempty,geo_id"`
	OriginText      string        `json:"originText" validate:"omitempty,max=200"`
	OriginLatitude  *float64      `json:"originLatitude" validate:"omitempty,gte=-90,lte=90"`
	OriginLongitude *float64      `json:"originLongitude" validate:"omitempty,gte=-180,lte=180"`
}

// SelectCountryRequest picks the destination country of a session
type SelectCountryRequest struct {
	CountryID string `json:"countryId" validate:"required,geo_id"`
}

// SelectRegionRequest picks the destination region of a session
type SelectRegionRequest struct {
	RegionID string `json:"regionId" validate:"required,geo_id"`
}

// CompanionRequest toggles the travel companion add-on
type CompanionRequest struct {
	HasCompanion *bool `json:"hasCompanion" validate:"required"`
}

// TierRequest switches the service tier
type TierRequest struct {
	Tier ServiceTier `json:"tier" validate:"required,oneof=standard private"`
}

// ModeRequest switches the transport mode
type ModeRequest struct {
	Mode TransportMode `json:"mode" validate:"required,oneof=ground air"`
}

// ConfirmMethodRequest turns a finished quote session into a cart shipping method
type ConfirmMethodRequest struct {
	SessionID  string `json:"sessionId" validate:"required,uuid"`
	CartItemID string `json:"cartItemId" validate:"omitempty,max=64"`
}
