package constants

// Redis key formats
const (
	KeyPricingConfig   = "shipping:pricing:%s" // Format: shipping:pricing:{mode}
	KeyQuoteSession    = "shipping:session:%s" // Format: shipping:session:{session_id}
	KeyRateLimitPrefix = "shipping:rate:ip"
)
