package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	ServiceCart  = "cart-service"
	ServiceAdmin = "admin-service"
)

// ServiceAPIKeys maps calling service names to their configured keys
func ServiceAPIKeys(cfg models.APIKeyConfig) map[string]string {
	return map[string]string{
		ServiceCart:  cfg.CartService,
		ServiceAdmin: cfg.AdminService,
	}
}

// ValidateAPIKey lets through requests carrying the key of one of allowedServices
func ValidateAPIKey(keys map[string]string, allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set("caller_id", service)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
