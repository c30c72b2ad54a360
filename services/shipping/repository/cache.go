package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
)

// GetCachedPricingConfig returns the cached config of a mode, or nil on a miss
func (r *ShippingRepo) GetCachedPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error) {
	key := fmt.Sprintf(constants.KeyPricingConfig, mode)

	var cfg models.PricingConfig
	var found bool
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "pricing_config", "GET", func() error {
		var err error
		found, err = r.redisClient.GetJSON(ctx, key, &cfg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read cached %s pricing config: %w", mode, err)
	}
	if !found {
		return nil, nil
	}

	return &cfg, nil
}

// CachePricingConfig stores cfg until ttl expires
func (r *ShippingRepo) CachePricingConfig(ctx context.Context, cfg *models.PricingConfig, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyPricingConfig, cfg.Mode)

	return nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "pricing_config", "SET", func() error {
		return r.redisClient.SetJSON(ctx, key, cfg, ttl)
	})
}

// DeleteCachedPricingConfig drops the cached config of a mode
func (r *ShippingRepo) DeleteCachedPricingConfig(ctx context.Context, mode models.TransportMode) error {
	key := fmt.Sprintf(constants.KeyPricingConfig, mode)

	return nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "pricing_config", "DEL", func() error {
		return r.redisClient.Delete(ctx, key)
	})
}
