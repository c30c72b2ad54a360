package models

import "time"

// PricingConfigUpdatedEvent is broadcast after an admin saves a pricing config
type PricingConfigUpdatedEvent struct {
	Mode      TransportMode `json:"mode"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ShippingMethodSelectedEvent is published when the cart confirms a shipping quote
type ShippingMethodSelectedEvent struct {
	MethodID     string        `json:"methodId"`
	SessionID    string        `json:"sessionId"`
	CartItemID   string        `json:"cartItemId,omitempty"`
	Mode         TransportMode `json:"mode"`
	Tier         ServiceTier   `json:"tier"`
	HasCompanion bool          `json:"hasCompanion"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Origin       Location      `json:"origin"`
	Destination  Location      `json:"destination"`
	SelectedAt   time.Time     `json:"selectedAt"`
}
