package models

import (
	"math"
	"time"
)

// TravelTime is an estimated door-to-door duration
type TravelTime struct {
	Hours   float64 `json:"hours"`
	Days    int     `json:"days"`
	Minutes int     `json:"minutes"`
	Display string  `json:"display"`
}

// ShippingQuote is a priced origin/destination pair. It is derived on every
// selection change and never persisted. Prices are kept unrounded.
type ShippingQuote struct {
	Mode              TransportMode `json:"mode"`
	Tier              ServiceTier   `json:"tier"`
	Origin            Location      `json:"origin"`
	Destination       Location      `json:"destination"`
	DistanceKm        float64       `json:"distanceKm"`
	DistanceMiles     float64       `json:"distanceMiles"`
	TravelTime        TravelTime    `json:"travelTime"`
	HasCompanion      bool          `json:"hasCompanion"`
	StandardPrice     float64       `json:"standardPrice"`
	PrivatePrice      float64       `json:"privatePrice"`
	BaseShippingPrice float64       `json:"baseShippingPrice"`
	CompanionFee      float64       `json:"companionFee"`
	TotalPrice        float64       `json:"totalPrice"`
	DestinationLabel  string        `json:"destinationLabel"`
}

// QuoteDisplay holds whole currency unit subtotals for presentation
type QuoteDisplay struct {
	DistanceKm        int64 `json:"distanceKm"`
	DistanceMiles     int64 `json:"distanceMiles"`
	BaseShippingPrice int64 `json:"baseShippingPrice"`
	CompanionFee      int64 `json:"companionFee"`
	TotalPrice        int64 `json:"totalPrice"`
}

// Display rounds the quote for presentation without touching the quote itself.
// The total is the sum of the rounded subtotals so the breakdown always adds up.
func (q *ShippingQuote) Display() QuoteDisplay {
	base := int64(math.Round(q.BaseShippingPrice))
	var companion int64
	if q.HasCompanion {
		companion = int64(math.Round(q.CompanionFee))
	}
	return QuoteDisplay{
		DistanceKm:        int64(math.Round(q.DistanceKm)),
		DistanceMiles:     int64(math.Round(q.DistanceMiles)),
		BaseShippingPrice: base,
		CompanionFee:      companion,
		TotalPrice:        base + companion,
	}
}

// RouteRequest describes a route to price in every mode. The origin is either
// an explicit country/region pair or, for legacy pet records, free text.
type RouteRequest struct {
	OriginCountryID string      `json:"originCountryId" validate:"required_without=OriginText"`
	OriginRegionID  string      `json:"originRegionId"`
	OriginText      string      `json:"originText" validate:"omitempty,max=200"`
	DestCountryID   string      `json:"destCountryId" validate:"required,geo_id"`
	DestRegionID    string      `json:"destRegionId" validate:"required,geo_id"`
	Tier            ServiceTier `json:"tier" validate:"omitempty,oneof=standard private"`
	HasCompanion    bool        `json:"hasCompanion"`
}

// QuoteRequest asks for the quote of a single transport mode
type QuoteRequest struct {
	Mode TransportMode `json:"mode" validate:"required,oneof=ground air"`
	RouteRequest
}

// ShippingOption is one priced transport choice offered to the shopper
type ShippingOption struct {
	Mode  TransportMode  `json:"mode"`
	Quote *ShippingQuote `json:"quote"`
}

// UnavailableOption explains why a transport mode is not offered
type UnavailableOption struct {
	Mode      TransportMode `json:"mode"`
	ErrorKind string        `json:"errorKind"`
	Message   string        `json:"message"`
}

// ShippingOptions lists the offered and withheld modes for a route
type ShippingOptions struct {
	Options     []ShippingOption    `json:"options"`
	Unavailable []UnavailableOption `json:"unavailable,omitempty"`
}

// ShippingMethod is the shipping line of a cart item, built from a confirmed quote
type ShippingMethod struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Mode         TransportMode `json:"mode"`
	Tier         ServiceTier   `json:"tier"`
	HasCompanion bool          `json:"hasCompanion"`
	CreatedAt    time.Time     `json:"createdAt"`
}
