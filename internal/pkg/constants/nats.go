package constants

// NATS Subjects
const (
	// Broadcast to every shipping instance after an admin changes a mode's pricing
	SubjectPricingConfigUpdated = "shipping.pricing.updated"

	// Consumed by the cart and order services
	SubjectShippingMethodSelected = "shipping.method.selected"
)
