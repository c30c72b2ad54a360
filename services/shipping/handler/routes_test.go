package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsfam/pawhaven/internal/pkg/middleware"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/pkg/validator"
	"github.com/pawsfam/pawhaven/services/shipping/mocks"
)

var testJWT = models.JWTConfig{Secret: "admin-secret", Issuer: "pawhaven-auth", AdminRole: "admin"}

func setupRoutes(t *testing.T, rateLimit int) (*echo.Echo, *mocks.MockShippingUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockShippingUC := mocks.NewMockShippingUC(ctrl)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.Validator = validator.New()
	NewHandler(mockShippingUC, nil, nil).RegisterRoutes(e, RouteConfig{
		RateLimiter: middleware.IPRateLimiter(rateLimit, time.Minute, redisClient),
		AdminAuth:   middleware.AdminAuthMiddleware(testJWT),
		APIKeys:     middleware.ServiceAPIKeys(models.APIKeyConfig{CartService: "cart-key", AdminService: "admin-key"}),
	})
	return e, mockShippingUC
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"role":    "admin",
		"iss":     testJWT.Issuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWT.Secret))
	require.NoError(t, err)
	return token
}

func serve(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRoutes_Public(t *testing.T) {
	e, mockShippingUC := setupRoutes(t, 100)
	mockShippingUC.EXPECT().ListCountries().Return([]models.Country{{ID: "us"}})
	mockShippingUC.EXPECT().GetRegion("fr", "paca").Return(&models.GeoPoint{ID: "paca"}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/shipping/countries", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "99", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(e, http.MethodGet, "/api/v1/shipping/countries/fr/regions/paca", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_PublicRateLimited(t *testing.T) {
	e, mockShippingUC := setupRoutes(t, 1)
	mockShippingUC.EXPECT().ListCountries().Return(nil)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/v1/shipping/countries", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, http.MethodGet, "/api/v1/shipping/countries", "", nil).Code)
}

func TestRegisterRoutes_Admin(t *testing.T) {
	e, mockShippingUC := setupRoutes(t, 100)
	mockShippingUC.EXPECT().ListPricingConfigs(gomock.Any()).Return([]models.PricingConfig{}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/admin/shipping/pricing", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/api/v1/admin/shipping/pricing", "", map[string]string{
		echo.HeaderAuthorization: "Bearer " + adminToken(t),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_Internal(t *testing.T) {
	e, mockShippingUC := setupRoutes(t, 100)
	mockShippingUC.EXPECT().ConfirmShippingMethod(gomock.Any(), gomock.Any()).Return(&models.ShippingMethod{ID: "m-1"}, nil)
	body := `{"sessionId":"7d0bd5a6-3a8f-4f39-9a53-1b2b7e9d4b11"}`

	rec := serve(e, http.MethodPost, "/internal/shipping/methods", body, map[string]string{middleware.APIKeyHeader: "admin-key"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodPost, "/internal/shipping/methods", body, map[string]string{middleware.APIKeyHeader: "cart-key"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
