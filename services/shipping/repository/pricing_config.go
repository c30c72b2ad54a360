package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
)

const pricingConfigTable = "shipping_pricing_configs"

const pricingConfigColumns = `
	mode, base_price, price_per_km, price_per_mile,
	standard_multiplier, private_multiplier,
	companion_base_fee, companion_per_km, companion_max_fee,
	max_ground_distance_km, long_flight_threshold_km, long_flight_companion_fee,
	average_speed_kmh, is_enabled, updated_at`

// GetPricingConfig loads the stored config of a mode
func (r *ShippingRepo) GetPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error) {
	query := `SELECT ` + pricingConfigColumns + ` FROM ` + pricingConfigTable + ` WHERE mode = $1`

	var cfg models.PricingConfig
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, pricingConfigTable, "SELECT", func() error {
		return r.db.GetContext(ctx, &cfg, query, mode)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPricingConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s pricing config: %w", mode, err)
	}

	return &cfg, nil
}

// ListPricingConfigs returns every stored config ordered by mode
func (r *ShippingRepo) ListPricingConfigs(ctx context.Context) ([]models.PricingConfig, error) {
	query := `SELECT ` + pricingConfigColumns + ` FROM ` + pricingConfigTable + ` ORDER BY mode`

	var configs []models.PricingConfig
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, pricingConfigTable, "SELECT", func() error {
		return r.db.SelectContext(ctx, &configs, query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing configs: %w", err)
	}

	return configs, nil
}

// UpsertPricingConfig inserts or replaces the config of cfg.Mode and returns the stored row
func (r *ShippingRepo) UpsertPricingConfig(ctx context.Context, cfg *models.PricingConfig) (*models.PricingConfig, error) {
	query := `
		INSERT INTO ` + pricingConfigTable + ` (` + pricingConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (mode) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			price_per_km = EXCLUDED.price_per_km,
			price_per_mile = EXCLUDED.price_per_mile,
			standard_multiplier = EXCLUDED.standard_multiplier,
			private_multiplier = EXCLUDED.private_multiplier,
			companion_base_fee = EXCLUDED.companion_base_fee,
			companion_per_km = EXCLUDED.companion_per_km,
			companion_max_fee = EXCLUDED.companion_max_fee,
			max_ground_distance_km = EXCLUDED.max_ground_distance_km,
			long_flight_threshold_km = EXCLUDED.long_flight_threshold_km,
			long_flight_companion_fee = EXCLUDED.long_flight_companion_fee,
			average_speed_kmh = EXCLUDED.average_speed_kmh,
			is_enabled = EXCLUDED.is_enabled,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + pricingConfigColumns

	var saved models.PricingConfig
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, pricingConfigTable, "UPSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			cfg.Mode, cfg.BasePrice, cfg.PricePerKm, cfg.PricePerMile,
			cfg.StandardMultiplier, cfg.PrivateMultiplier,
			cfg.CompanionBaseFee, cfg.CompanionPerKm, cfg.CompanionMaxFee,
			cfg.MaxGroundDistanceKm, cfg.LongFlightThresholdKm, cfg.LongFlightCompanionFee,
			cfg.AverageSpeedKmh, cfg.IsEnabled, cfg.UpdatedAt,
		).StructScan(&saved)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save %s pricing config: %w", cfg.Mode, err)
	}

	return &saved, nil
}
