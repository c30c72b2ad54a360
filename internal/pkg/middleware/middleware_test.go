package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "admin-secret", Issuer: "pawhaven-auth", AdminRole: "admin"}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"role":    role,
		"iss":     testJWT.Issuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWT.Secret))
	require.NoError(t, err)
	return token
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuthMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("caller_id").(string))
	}, AdminAuthMiddleware(testJWT))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"not admin", "Bearer " + adminToken(t, "shopper"), http.StatusForbidden},
		{"admin", "Bearer " + adminToken(t, "admin"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := serve(e, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin-1", rec.Body.String())
			}
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	keys := ServiceAPIKeys(models.APIKeyConfig{CartService: "cart-key"})
	e := echo.New()
	e.POST("/internal", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("caller_id").(string))
	}, ValidateAPIKey(keys, ServiceCart, ServiceAdmin))

	req := httptest.NewRequest(http.MethodPost, "/internal", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/internal", nil)
	req.Header.Set(APIKeyHeader, "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)

	// an unset key must never match an empty or guessed header
	req = httptest.NewRequest(http.MethodPost, "/internal", nil)
	req.Header.Set(APIKeyHeader, "")
	assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/internal", nil)
	req.Header.Set(APIKeyHeader, "cart-key")
	rec := serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServiceCart, rec.Body.String())
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(logger.NewNopLogger()))
	e.GET("/boom", func(c echo.Context) error {
		panic("pricing table exploded")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected error")
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}

func TestIPRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.POST("/quote", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(2, time.Minute, client))

	for i := 0; i < 2; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/quote", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/quote", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	mr.FastForward(2 * time.Minute)
	rec = serve(e, httptest.NewRequest(http.MethodPost, "/quote", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()

	e := echo.New()
	e.POST("/quote", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(1, time.Minute, client))

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/quote", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_ExpireFailureDropsCounter(t *testing.T) {
	client, mock := redismock.NewClientMock()
	key := constants.KeyRateLimitPrefix + ":/quote:192.0.2.1"
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetErr(errors.New("READONLY"))
	mock.ExpectDel(key).SetVal(1)

	e := echo.New()
	e.POST("/quote", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(1, time.Minute, client))

	req := httptest.NewRequest(http.MethodPost, "/quote", nil)
	req.RemoteAddr = "192.0.2.1:4100"
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIPRateLimiter_RestoresMissingWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	key := constants.KeyRateLimitPrefix + ":/quote:192.0.2.1"
	require.NoError(t, mr.Set(key, "5"))

	e := echo.New()
	e.POST("/quote", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(2, time.Minute, client))

	req := httptest.NewRequest(http.MethodPost, "/quote", nil)
	req.RemoteAddr = "192.0.2.1:4100"
	rec := serve(e, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(metrics.DefaultConfig("shipping"))

	e := echo.New()
	e.Use(MetricsMiddleware(m))
	e.GET("/api/v1/shipping/countries/:countryId", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "unknown country")
	})
	e.GET("/metrics", MetricsEndpoint(m))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/shipping/countries/zz", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	counter := m.HTTPRequestsTotal.WithLabelValues("shipping", http.MethodGet, "/api/v1/shipping/countries/:countryId", "404")
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pawhaven_http_requests_total")
}
