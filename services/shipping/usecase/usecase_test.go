package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsfam/pawhaven/internal/pkg/circuitbreaker"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/gazetteer"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/pkg/pricing"
	"github.com/pawsfam/pawhaven/services/shipping/mocks"
	"github.com/pawsfam/pawhaven/services/shipping/usecase"
)

var testShippingConfig = models.ShippingConfig{
	Currency:          "USD",
	SessionTTL:        30 * time.Minute,
	ConfigCacheTTL:    10 * time.Minute,
	GeohashPrecision:  7,
	ConfigLoadRetries: 1,
}

type fixture struct {
	uc      *usecase.ShippingUC
	repo    *mocks.MockShippingRepo
	gw      *mocks.MockShippingGW
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockShippingRepo(ctrl)
	gw := mocks.NewMockShippingGW(ctrl)
	m := metrics.New(metrics.DefaultConfig("shipping"))
	return &fixture{
		uc:      usecase.NewShippingUC(testShippingConfig, repo, gw, gazetteer.Default(), m),
		repo:    repo,
		gw:      gw,
		metrics: m,
	}
}

func defaultConfig(t *testing.T, mode models.TransportMode) *models.PricingConfig {
	t.Helper()
	cfg, ok := pricing.DefaultConfig(mode)
	require.True(t, ok)
	return &cfg
}

// cached makes every config lookup of mode a cache hit
func (f *fixture) cached(cfg *models.PricingConfig) {
	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), cfg.Mode).Return(cfg, nil).AnyTimes()
}

func route(originCountry, originRegion, destCountry, destRegion string) models.RouteRequest {
	return models.RouteRequest{
		OriginCountryID: originCountry,
		OriginRegionID:  originRegion,
		DestCountryID:   destCountry,
		DestRegionID:    destRegion,
	}
}

func TestPricingConfig_CacheHit(t *testing.T) {
	f := newFixture(t)
	ground := defaultConfig(t, models.TransportModeGround)
	ground.BasePrice = 210

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeGround).Return(ground, nil)

	cfg, err := f.uc.PricingConfig(context.Background(), models.TransportModeGround)

	require.NoError(t, err)
	assert.Equal(t, 210.0, cfg.BasePrice)
	loads := f.metrics.ConfigLoadsTotal.WithLabelValues("shipping", "ground", metrics.SourceCache, metrics.OutcomeSuccess)
	assert.Equal(t, 1.0, testutil.ToFloat64(loads))
}

func TestPricingConfig_LoadsAndCachesStoredConfig(t *testing.T) {
	f := newFixture(t)
	stored := defaultConfig(t, models.TransportModeAir)
	stored.PricePerKm = 0.7

	gomock.InOrder(
		f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, nil),
		f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeAir).Return(stored, nil),
		f.repo.EXPECT().CachePricingConfig(gomock.Any(), stored, 10*time.Minute).Return(nil),
	)

	cfg, err := f.uc.PricingConfig(context.Background(), models.TransportModeAir)

	require.NoError(t, err)
	assert.Equal(t, *stored, cfg)
}

func TestPricingConfig_NotFoundUsesDefaults(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeGround).Return(nil, nil)
	f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeGround).
		Return(nil, apperrors.ErrPricingConfigNotFound).Times(1)
	f.repo.EXPECT().CachePricingConfig(gomock.Any(), gomock.Any(), 10*time.Minute).Return(nil)

	cfg, err := f.uc.PricingConfig(context.Background(), models.TransportModeGround)

	require.NoError(t, err)
	assert.Equal(t, *defaultConfig(t, models.TransportModeGround), cfg)
	loads := f.metrics.ConfigLoadsTotal.WithLabelValues("shipping", "ground", metrics.SourceDefault, metrics.OutcomeSuccess)
	assert.Equal(t, 1.0, testutil.ToFloat64(loads))
}

func TestPricingConfig_LoadErrorIsRetriedThenSurfaced(t *testing.T) {
	f := newFixture(t)
	dbErr := errors.New("connection refused")

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, nil)
	f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, dbErr).Times(2)

	cfg, err := f.uc.PricingConfig(context.Background(), models.TransportModeAir)

	assert.Equal(t, models.PricingConfig{}, cfg)
	assert.True(t, errors.Is(err, apperrors.ErrConfigurationLoad))
	assert.True(t, errors.Is(err, dbErr))
}

func TestPricingConfig_RecoversOnRetry(t *testing.T) {
	f := newFixture(t)
	stored := defaultConfig(t, models.TransportModeAir)

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, nil)
	gomock.InOrder(
		f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, errors.New("timeout")),
		f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeAir).Return(stored, nil),
	)
	f.repo.EXPECT().CachePricingConfig(gomock.Any(), stored, gomock.Any()).Return(nil)

	_, err := f.uc.PricingConfig(context.Background(), models.TransportModeAir)

	assert.NoError(t, err)
}

func TestPricingConfig_InvalidStoredConfigIsNotCached(t *testing.T) {
	f := newFixture(t)
	stored := defaultConfig(t, models.TransportModeGround)
	stored.AverageSpeedKmh = 0

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeGround).Return(nil, nil)
	f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeGround).Return(stored, nil)

	_, err := f.uc.PricingConfig(context.Background(), models.TransportModeGround)

	assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestPricingConfig_CacheOutageFallsThroughToDatabase(t *testing.T) {
	f := newFixture(t)
	stored := defaultConfig(t, models.TransportModeGround)

	f.repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeGround).Return(nil, errors.New("redis down"))
	f.repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeGround).Return(stored, nil)
	f.repo.EXPECT().CachePricingConfig(gomock.Any(), stored, gomock.Any()).Return(errors.New("redis down"))

	cfg, err := f.uc.PricingConfig(context.Background(), models.TransportModeGround)

	require.NoError(t, err)
	assert.Equal(t, *stored, cfg)
}

func TestPricingConfig_CircuitBreakerFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockShippingRepo(ctrl)
	cfg := testShippingConfig
	cfg.ConfigLoadRetries = 0
	uc := usecase.NewShippingUC(cfg, repo, mocks.NewMockShippingGW(ctrl), gazetteer.Default(), nil)
	ctx := context.Background()

	repo.EXPECT().GetCachedPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, nil).Times(6)
	repo.EXPECT().GetPricingConfig(gomock.Any(), models.TransportModeAir).Return(nil, errors.New("too many connections")).Times(5)

	for i := 0; i < 5; i++ {
		_, err := uc.PricingConfig(ctx, models.TransportModeAir)
		require.True(t, errors.Is(err, apperrors.ErrConfigurationLoad))
	}

	_, err := uc.PricingConfig(ctx, models.TransportModeAir)
	assert.True(t, errors.Is(err, apperrors.ErrConfigurationLoad))
	assert.True(t, errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen))
}

func TestPricingConfig_UnknownMode(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.PricingConfig(context.Background(), "sea")

	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
