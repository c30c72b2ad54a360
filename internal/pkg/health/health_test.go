package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/database"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoints_Healthy(t *testing.T) {
	svc := NewHealthService(logger.NewNopLogger())
	svc.AddChecker("postgres", CheckerFunc(func(context.Context) error { return nil }))

	e := echo.New()
	RegisterHealthEndpoints(e, "shipping-service", "1.2.0", svc)

	for _, path := range []string{"/ping", "/health", "/health/detailed", "/health/ready", "/health/live"} {
		assert.Equal(t, http.StatusOK, get(e, path).Code, path)
	}

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(get(e, "/health/detailed").Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.0", resp.Version)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(get(e, "/ping").Body.Bytes(), &info))
	assert.Equal(t, "shipping-service", info.ServiceName)
}

func TestHealthEndpoints_Unhealthy(t *testing.T) {
	svc := NewHealthService(logger.NewNopLogger())
	svc.AddChecker("redis", CheckerFunc(func(context.Context) error { return errors.New("connection refused") }))

	e := echo.New()
	RegisterHealthEndpoints(e, "shipping-service", "", svc)

	assert.Equal(t, http.StatusOK, get(e, "/health").Code)
	assert.Equal(t, http.StatusOK, get(e, "/health/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(e, "/health/ready").Code)

	rec := get(e, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestPostgresHealthChecker(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	checker := NewPostgresHealthChecker(database.NewPostgresClientFromDB(sqlx.NewDb(db, "pgx")))

	mock.ExpectPing()
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("db down"))
	assert.Error(t, checker.CheckHealth(context.Background()))

	assert.NoError(t, NewPostgresHealthChecker(nil).CheckHealth(context.Background()))
}

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	checker := NewRedisHealthChecker(client)

	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNATSHealthChecker(t *testing.T) {
	assert.NoError(t, NewNATSHealthChecker(nil).CheckHealth(context.Background()))
	assert.Error(t, NewNATSHealthChecker(&nats.Client{}).CheckHealth(context.Background()))
}
