package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/internal/pkg/pricing"
)

// PricingConfig returns the config used to price a mode: the Redis copy when
// cached, else the stored row, else the documented defaults. A failed load is
// a ConfigurationLoadError and an invalid stored config is never cached.
func (uc *ShippingUC) PricingConfig(ctx context.Context, mode models.TransportMode) (models.PricingConfig, error) {
	if !mode.Valid() {
		return models.PricingConfig{}, fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, mode)
	}

	cached, err := uc.repo.GetCachedPricingConfig(ctx, mode)
	if err != nil {
		logger.WarnCtx(ctx, "Pricing config cache unavailable",
			logger.Mode(string(mode)),
			logger.Err(err))
	} else if cached != nil {
		uc.metrics.RecordConfigLoad(string(mode), metrics.SourceCache, true)
		return *cached, nil
	}

	cfg, source, err := uc.loadPricingConfig(ctx, mode)
	if err != nil {
		uc.metrics.RecordConfigLoad(string(mode), metrics.SourceDatabase, false)
		nrpkg.NoticeError(ctx, err)
		logger.ErrorCtx(ctx, "Failed to load pricing config",
			logger.Mode(string(mode)),
			logger.Err(err))
		return models.PricingConfig{}, err
	}

	if cfg.IsEnabled {
		if err := pricing.Validate(cfg); err != nil {
			uc.metrics.RecordConfigLoad(string(mode), source, false)
			logger.ErrorCtx(ctx, "Stored pricing config is invalid, fix it in the admin settings",
				logger.Mode(string(mode)),
				logger.Err(err))
			return models.PricingConfig{}, err
		}
	}
	uc.metrics.RecordConfigLoad(string(mode), source, true)

	if err := uc.repo.CachePricingConfig(ctx, &cfg, uc.cfg.ConfigCacheTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache pricing config",
			logger.Mode(string(mode)),
			logger.Err(err))
	}

	return cfg, nil
}

func (uc *ShippingUC) loadPricingConfig(ctx context.Context, mode models.TransportMode) (models.PricingConfig, string, error) {
	var stored *models.PricingConfig
	err := nrpkg.WithSegment(ctx, "shipping.loadPricingConfig", func() error {
		return uc.breaker.Execute(ctx, func(ctx context.Context) error {
			return uc.retrier.Execute(ctx, func(ctx context.Context) error {
				var err error
				stored, err = uc.repo.GetPricingConfig(ctx, mode)
				return err
			})
		})
	})

	switch {
	case err == nil:
		stored.Mode = mode
		return *stored, metrics.SourceDatabase, nil
	case errors.Is(err, apperrors.ErrPricingConfigNotFound):
		defaults, _ := pricing.DefaultConfig(mode)
		logger.InfoCtx(ctx, "No stored pricing config, using defaults", logger.Mode(string(mode)))
		return defaults, metrics.SourceDefault, nil
	default:
		return models.PricingConfig{}, "", apperrors.ConfigurationLoad(string(mode), err)
	}
}

// ListPricingConfigs returns the config of every mode, stored or default,
// in display order.
func (uc *ShippingUC) ListPricingConfigs(ctx context.Context) ([]models.PricingConfig, error) {
	stored, err := uc.repo.ListPricingConfigs(ctx)
	if err != nil {
		modes := make([]string, 0, len(models.TransportModes))
		for _, mode := range models.TransportModes {
			modes = append(modes, string(mode))
		}
		return nil, apperrors.ConfigurationLoad(strings.Join(modes, " and "), err)
	}

	byMode := make(map[models.TransportMode]models.PricingConfig, len(stored))
	for _, cfg := range stored {
		byMode[cfg.Mode] = cfg
	}

	configs := make([]models.PricingConfig, 0, len(models.TransportModes))
	for _, mode := range models.TransportModes {
		cfg, ok := byMode[mode]
		if !ok {
			cfg, _ = pricing.DefaultConfig(mode)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// GetPricingConfig returns the stored config of a mode for editing, bypassing
// the cache. A mode that was never saved returns its defaults.
func (uc *ShippingUC) GetPricingConfig(ctx context.Context, mode models.TransportMode) (*models.PricingConfig, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, mode)
	}

	cfg, err := uc.repo.GetPricingConfig(ctx, mode)
	if errors.Is(err, apperrors.ErrPricingConfigNotFound) {
		defaults, _ := pricing.DefaultConfig(mode)
		return &defaults, nil
	}
	if err != nil {
		return nil, apperrors.ConfigurationLoad(string(mode), err)
	}
	return cfg, nil
}

// UpdatePricingConfig validates and saves an admin edit, then drops the cached
// copy and tells the other instances to do the same.
func (uc *ShippingUC) UpdatePricingConfig(ctx context.Context, cfg *models.PricingConfig) (*models.PricingConfig, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, cfg.Mode)
	}
	if err := pricing.Validate(*cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, apperrors.MessageOf(err))
	}

	cfg.UpdatedAt = models.Now()
	saved, err := uc.repo.UpsertPricingConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pricing config updated",
		logger.Mode(string(saved.Mode)),
		logger.Bool("enabled", saved.IsEnabled))

	if err := uc.repo.DeleteCachedPricingConfig(ctx, saved.Mode); err != nil {
		logger.WarnCtx(ctx, "Failed to drop cached pricing config",
			logger.Mode(string(saved.Mode)),
			logger.Err(err))
	}

	event := models.PricingConfigUpdatedEvent{Mode: saved.Mode, UpdatedAt: saved.UpdatedAt}
	if err := uc.gw.PublishPricingConfigUpdated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish pricing config update",
			logger.Mode(string(saved.Mode)),
			logger.Err(err))
	}

	return saved, nil
}

// InvalidatePricingConfig drops the cached config of a mode
func (uc *ShippingUC) InvalidatePricingConfig(ctx context.Context, mode models.TransportMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, mode)
	}
	if err := uc.repo.DeleteCachedPricingConfig(ctx, mode); err != nil {
		return fmt.Errorf("failed to invalidate %s pricing config: %w", mode, err)
	}
	logger.InfoCtx(ctx, "Pricing config cache invalidated", logger.Mode(string(mode)))
	return nil
}
