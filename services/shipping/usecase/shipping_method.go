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

var modeNames = map[models.TransportMode]string{
	models.TransportModeGround: "Ground",
	models.TransportModeAir:    "Air",
}

// ConfirmShippingMethod reprices a ready session against the current config
// and turns it into the shipping method of a cart line. The price is the
// whole currency total the shopper was shown.
func (uc *ShippingUC) ConfirmShippingMethod(ctx context.Context, req *models.ConfirmMethodRequest) (*models.ShippingMethod, error) {
	session, err := uc.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.State != selection.StateQuoteReady {
		return nil, fmt.Errorf("%w: session %s is %s, not %s",
			apperrors.ErrInvalidTransition, session.ID, session.State, selection.StateQuoteReady)
	}

	uc.machine.Refresh(ctx, session)
	if err := uc.repo.SaveSession(ctx, session, uc.cfg.SessionTTL); err != nil {
		return nil, err
	}
	if session.State != selection.StateQuoteReady {
		return nil, &apperrors.ShippingError{
			Kind:    apperrors.Kind(session.Failure.ErrorKind),
			Message: session.Failure.Message,
		}
	}

	quote := session.Quote
	display := quote.Display()
	method := &models.ShippingMethod{
		ID:           converter.NewID(),
		Name:         methodName(quote),
		Price:        float64(display.TotalPrice),
		Currency:     uc.cfg.Currency,
		Mode:         quote.Mode,
		Tier:         quote.Tier,
		HasCompanion: quote.HasCompanion,
		CreatedAt:    models.Now(),
	}

	event := models.ShippingMethodSelectedEvent{
		MethodID:     method.ID,
		SessionID:    session.ID,
		CartItemID:   req.CartItemID,
		Mode:         method.Mode,
		Tier:         method.Tier,
		HasCompanion: method.HasCompanion,
		Price:        method.Price,
		Currency:     method.Currency,
		Origin:       quote.Origin,
		Destination:  quote.Destination,
		SelectedAt:   method.CreatedAt,
	}
	if err := uc.gw.PublishShippingMethodSelected(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish shipping method selection",
			logger.String("method_id", method.ID),
			logger.Err(err))
	}

	uc.metrics.RecordMethodConfirmed(string(method.Mode), string(method.Tier))
	logger.InfoCtx(ctx, "Shipping method confirmed",
		logger.String("method_id", method.ID),
		logger.String("session_id", session.ID),
		logger.Mode(string(method.Mode)),
		logger.Float64("price", method.Price))

	return method, nil
}

func methodName(quote *models.ShippingQuote) string {
	name := fmt.Sprintf("%s shipping, %s tier, to %s", modeNames[quote.Mode], quote.Tier, quote.DestinationLabel)
	if quote.HasCompanion {
		name += ", with travel companion"
	}
	return name
}
