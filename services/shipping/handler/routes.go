package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/middleware"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
)

// RouteConfig carries the middlewares guarding each route group
type RouteConfig struct {
	RateLimiter echo.MiddlewareFunc // public routes, may be nil
	AdminAuth   echo.MiddlewareFunc
	APIKeys     map[string]string
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, cfg RouteConfig) {
	var public []echo.MiddlewareFunc
	if cfg.RateLimiter != nil {
		public = append(public, cfg.RateLimiter)
	}

	// Public routes used by the storefront
	api := e.Group("/api/v1/shipping", public...)
	api.GET("/countries", nrpkg.TraceHandler("shipping.ListCountries", h.shippingHTTP.ListCountries))
	api.GET("/countries/:countryId", nrpkg.TraceHandler("shipping.GetCountry", h.shippingHTTP.GetCountry))
	api.GET("/countries/:countryId/regions/:regionId", nrpkg.TraceHandler("shipping.GetRegion", h.shippingHTTP.GetRegion))
	api.POST("/quote", nrpkg.TraceHandler("shipping.Quote", h.shippingHTTP.Quote))
	api.POST("/options", nrpkg.TraceHandler("shipping.Options", h.shippingHTTP.Options))

	sessions := api.Group("/sessions")
	sessions.POST("", nrpkg.TraceHandler("shipping.CreateSession", h.shippingHTTP.CreateSession))
	sessions.GET("/:id", nrpkg.TraceHandler("shipping.GetSession", h.shippingHTTP.GetSession))
	sessions.PUT("/:id/country", nrpkg.TraceHandler("shipping.SelectCountry", h.shippingHTTP.SelectCountry))
	sessions.PUT("/:id/region", nrpkg.TraceHandler("shipping.SelectRegion", h.shippingHTTP.SelectRegion))
	sessions.PUT("/:id/companion", nrpkg.TraceHandler("shipping.SetCompanion", h.shippingHTTP.SetCompanion))
	sessions.PUT("/:id/tier", nrpkg.TraceHandler("shipping.SetTier", h.shippingHTTP.SetTier))
	sessions.PUT("/:id/mode", nrpkg.TraceHandler("shipping.SetMode", h.shippingHTTP.SetMode))

	// Admin pricing settings (admin JWT required)
	admin := e.Group("/api/v1/admin/shipping", cfg.AdminAuth)
	admin.GET("/pricing", nrpkg.TraceHandler("shipping.ListPricingConfigs", h.shippingHTTP.ListPricingConfigs))
	admin.GET("/pricing/:mode", nrpkg.TraceHandler("shipping.GetPricingConfig", h.shippingHTTP.GetPricingConfig))
	admin.PUT("/pricing/:mode", nrpkg.TraceHandler("shipping.UpdatePricingConfig", h.shippingHTTP.UpdatePricingConfig))

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/shipping", middleware.ValidateAPIKey(cfg.APIKeys, middleware.ServiceCart))
	internal.POST("/methods", nrpkg.TraceHandler("shipping.ConfirmShippingMethod", h.shippingHTTP.ConfirmShippingMethod))
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.shippingNATS.InitNATSConsumers()
}

// StopNATSConsumers unsubscribes all NATS consumers
func (h *Handler) StopNATSConsumers() {
	h.shippingNATS.Stop()
}
