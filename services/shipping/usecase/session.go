package usecase

import (
	"context"
	"fmt"

	"github.com/pawsfam/pawhaven/internal/pkg/converter"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// CreateSession resolves the pet origin and opens a quote session
func (uc *ShippingUC) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*selection.Selection, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, req.Mode)
	}
	if req.Tier != "" && !req.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown service tier %q", apperrors.ErrInvalidInput, req.Tier)
	}

	origin, err := uc.resolveOrigin(req.OriginCountryID, req.OriginRegionID, req.OriginText, req.OriginLatitude, req.OriginLongitude)
	if err != nil {
		return nil, err
	}

	session := selection.New(converter.NewID(), origin, req.Mode, req.Tier, req.HasCompanion, models.Now())
	if err := uc.repo.SaveSession(ctx, session, uc.cfg.SessionTTL); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Quote session created",
		logger.String("session_id", session.ID),
		logger.Mode(string(session.Mode)),
		logger.Geohash("origin", origin.Geohash))
	return session, nil
}

// GetSession loads a quote session. Malformed ids are reported as not found.
func (uc *ShippingUC) GetSession(ctx context.Context, sessionID string) (*selection.Selection, error) {
	id, ok := converter.ParseID(sessionID)
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return uc.repo.GetSession(ctx, id)
}

// SelectCountry sets the destination country of a session
func (uc *ShippingUC) SelectCountry(ctx context.Context, sessionID, countryID string) (*selection.Selection, error) {
	return uc.updateSession(ctx, sessionID, func(s *selection.Selection) error {
		return uc.machine.SelectCountry(s, countryID)
	})
}

// SelectRegion sets the destination region of a session and prices it
func (uc *ShippingUC) SelectRegion(ctx context.Context, sessionID, regionID string) (*selection.Selection, error) {
	return uc.updateSession(ctx, sessionID, func(s *selection.Selection) error {
		return uc.machine.SelectRegion(ctx, s, regionID)
	})
}

// SetCompanion toggles the companion add-on of a session
func (uc *ShippingUC) SetCompanion(ctx context.Context, sessionID string, hasCompanion bool) (*selection.Selection, error) {
	return uc.updateSession(ctx, sessionID, func(s *selection.Selection) error {
		return uc.machine.SetCompanion(ctx, s, hasCompanion)
	})
}

// SetTier switches the service tier of a session
func (uc *ShippingUC) SetTier(ctx context.Context, sessionID string, tier models.ServiceTier) (*selection.Selection, error) {
	return uc.updateSession(ctx, sessionID, func(s *selection.Selection) error {
		return uc.machine.SetTier(ctx, s, tier)
	})
}

// SetMode switches the transport mode of a session
func (uc *ShippingUC) SetMode(ctx context.Context, sessionID string, mode models.TransportMode) (*selection.Selection, error) {
	return uc.updateSession(ctx, sessionID, func(s *selection.Selection) error {
		return uc.machine.SetMode(ctx, s, mode)
	})
}

// updateSession loads a session, applies one transition and saves it. A
// rejected transition is not saved.
func (uc *ShippingUC) updateSession(ctx context.Context, sessionID string, apply func(*selection.Selection) error) (*selection.Selection, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(session); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveSession(ctx, session, uc.cfg.SessionTTL); err != nil {
		return nil, err
	}

	if session.State == selection.StateError {
		logger.WarnCtx(ctx, "Quote session has no price",
			logger.String("session_id", session.ID),
			logger.Mode(string(session.Mode)),
			logger.String("error_kind", session.Failure.ErrorKind))
	}
	return session, nil
}
