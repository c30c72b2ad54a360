package usecase

import (
	"context"
	"strings"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/internal/pkg/pricing"
)

// ListCountries returns the gazetteer in display order
func (uc *ShippingUC) ListCountries() []models.Country {
	return uc.gazetteer.ListCountries()
}

// GetCountry returns one gazetteer country
func (uc *ShippingUC) GetCountry(countryID string) (*models.Country, error) {
	country := uc.gazetteer.GetCountryByID(countryID)
	if country == nil {
		return nil, apperrors.UnresolvedLocation("unknown country %q", countryID)
	}
	return country, nil
}

// GetRegion returns one region of a gazetteer country
func (uc *ShippingUC) GetRegion(countryID, regionID string) (*models.GeoPoint, error) {
	region := uc.gazetteer.GetRegionByID(countryID, regionID)
	if region == nil {
		return nil, apperrors.UnresolvedLocation("unknown region %q in country %q", regionID, countryID)
	}
	return region, nil
}

// Quote prices a route in the requested mode
func (uc *ShippingUC) Quote(ctx context.Context, req *models.QuoteRequest) (*models.ShippingQuote, error) {
	origin, destination, err := uc.resolveRoute(&req.RouteRequest)
	if err != nil {
		return nil, err
	}
	return uc.quote(ctx, &origin, &destination, req.Mode, req.Tier, req.HasCompanion)
}

// Options prices a route in every mode. Modes that are disabled, out of range
// or misconfigured are listed as unavailable instead of failing the request.
func (uc *ShippingUC) Options(ctx context.Context, req *models.RouteRequest) (*models.ShippingOptions, error) {
	origin, destination, err := uc.resolveRoute(req)
	if err != nil {
		return nil, err
	}

	result := &models.ShippingOptions{Options: []models.ShippingOption{}}
	for _, mode := range models.TransportModes {
		quote, err := uc.quote(ctx, &origin, &destination, mode, req.Tier, req.HasCompanion)
		if err != nil {
			kind := apperrors.KindOf(err)
			if kind == "" || kind == apperrors.KindUnresolvedLocation {
				return nil, err
			}
			result.Unavailable = append(result.Unavailable, models.UnavailableOption{
				Mode:      mode,
				ErrorKind: string(kind),
				Message:   apperrors.MessageOf(err),
			})
			continue
		}
		result.Options = append(result.Options, models.ShippingOption{Mode: mode, Quote: quote})
	}

	return result, nil
}

func (uc *ShippingUC) quote(
	ctx context.Context,
	origin, destination *models.Location,
	mode models.TransportMode,
	tier models.ServiceTier,
	hasCompanion bool,
) (*models.ShippingQuote, error) {
	cfg, err := uc.PricingConfig(ctx, mode)
	if err != nil {
		uc.metrics.RecordQuote(string(mode), errorKindLabel(err), 0)
		return nil, err
	}

	quote, err := nrpkg.WithSegmentAndReturn(ctx, "shipping.quote", func() (*models.ShippingQuote, error) {
		return pricing.Quote(origin, destination, cfg, tier, hasCompanion)
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidConfiguration {
			logger.ErrorCtx(ctx, "Pricing config rejected while quoting",
				logger.Mode(string(mode)),
				logger.Err(err))
		}
		uc.metrics.RecordQuote(string(mode), errorKindLabel(err), 0)
		return nil, err
	}

	uc.metrics.RecordQuote(string(mode), "", quote.DistanceKm)
	logger.DebugCtx(ctx, "Quote computed",
		logger.Mode(string(mode)),
		logger.Geohash("origin", origin.Geohash),
		logger.Geohash("destination", destination.Geohash),
		logger.Float64("distance_km", quote.DistanceKm),
		logger.Float64("total_price", quote.TotalPrice))

	return quote, nil
}

func (uc *ShippingUC) resolveRoute(req *models.RouteRequest) (models.Location, models.Location, error) {
	origin, err := uc.resolveOrigin(req.OriginCountryID, req.OriginRegionID, req.OriginText, nil, nil)
	if err != nil {
		return models.Location{}, models.Location{}, err
	}

	destination, err := uc.gazetteer.Resolve(req.DestCountryID, req.DestRegionID)
	if err != nil {
		return models.Location{}, models.Location{}, err
	}

	return origin, destination, nil
}

// resolveOrigin prefers an explicit country/region pair, then legacy free
// text, then raw coordinates. Free text never falls back to a default region.
func (uc *ShippingUC) resolveOrigin(countryID, regionID, text string, latitude, longitude *float64) (models.Location, error) {
	switch {
	case countryID != "":
		return uc.gazetteer.Resolve(countryID, regionID)
	case strings.TrimSpace(text) != "":
		return uc.gazetteer.ResolveFreeText(text)
	case latitude != nil && longitude != nil:
		return uc.gazetteer.Nearest(*latitude, *longitude)
	default:
		return models.Location{}, apperrors.UnresolvedLocation("pet origin is missing")
	}
}

func errorKindLabel(err error) string {
	if kind := apperrors.KindOf(err); kind != "" {
		return string(kind)
	}
	return "UnclassifiedError"
}
