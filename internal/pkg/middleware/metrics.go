package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency by route template
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.IncrementHTTPRequestsInFlight()
			defer m.DecrementHTTPRequestsInFlight()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return nil
		}
	}
}

// MetricsEndpoint serves the prometheus registry
func MetricsEndpoint(m *metrics.Metrics) echo.HandlerFunc {
	return echo.WrapHandler(m.Handler())
}
