package usecase

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pawsfam/pawhaven/internal/pkg/circuitbreaker"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/gazetteer"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/pkg/retry"
	"github.com/pawsfam/pawhaven/services/shipping"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// ShippingUC implements the shipping use case interface
type ShippingUC struct {
	cfg       models.ShippingConfig
	repo      shipping.ShippingRepo
	gw        shipping.ShippingGW
	gazetteer *gazetteer.Gazetteer
	machine   *selection.Machine
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
	metrics   *metrics.Metrics
}

// NewShippingUC creates a new shipping use case
func NewShippingUC(
	cfg models.ShippingConfig,
	repo shipping.ShippingRepo,
	gw shipping.ShippingGW,
	gaz *gazetteer.Gazetteer,
	m *metrics.Metrics,
) *ShippingUC {
	uc := &ShippingUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		gazetteer: gaz,
		metrics:   m,
	}

	uc.retrier = retry.New(retry.Config{
		MaxRetries:    cfg.ConfigLoadRetries,
		BaseDelay:     50 * time.Millisecond,
		MaxDelay:      time.Second,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: retry.Permanent(apperrors.ErrPricingConfigNotFound),
	}, nil)

	breakerConfig := circuitbreaker.DefaultConfig("pricing-config-db")
	breakerConfig.IsFailure = func(err error) bool {
		return !errors.Is(err, apperrors.ErrPricingConfigNotFound)
	}
	breakerConfig.OnStateChange = func(name string, _, to gobreaker.State) {
		m.SetCircuitBreakerState(name, int(to))
	}
	uc.breaker = circuitbreaker.New(breakerConfig, nil)

	uc.machine = selection.NewMachine(gaz, uc)
	return uc
}
