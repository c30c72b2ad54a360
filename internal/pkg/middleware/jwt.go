package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/pawsfam/pawhaven/internal/pkg/jwt"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// AdminAuthMiddleware only lets through bearer tokens whose role claim is the
// configured admin role.
func AdminAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret, config.Issuer)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if claims.Role != config.AdminRole {
				return utils.ForbiddenResponse(c, "Admin role required")
			}

			c.Set("caller_id", claims.UserID)
			c.Set("caller_role", claims.Role)

			return next(c)
		}
	}
}
