package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestHelpers_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	assert.NoError(t, WithSegment(ctx, "noop", func() error { return nil }))
	assert.Equal(t, boom, WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "shipping_pricing_configs", "SELECT", func() error { return boom }))
	assert.Equal(t, boom, WithMessageSegment(ctx, "shipping.pricing.updated", func() error { return boom }))

	v, err := WithSegmentAndReturn(ctx, "value", func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	AddAttribute(ctx, "mode", "air")
	NoticeError(ctx, boom)
}

func TestTraceHandler_WithoutAgent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := TraceHandler("GetCountries", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = true

	assert.Nil(t, InitNewRelic(cfg))
}
