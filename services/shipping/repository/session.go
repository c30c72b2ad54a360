package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// SaveSession writes the session and restarts its ttl. Last write wins.
func (r *ShippingRepo) SaveSession(ctx context.Context, session *selection.Selection, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyQuoteSession, session.ID)

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "quote_session", "SET", func() error {
		return r.redisClient.SetJSON(ctx, key, session, ttl)
	})
	if err != nil {
		return fmt.Errorf("failed to save quote session %s: %w", session.ID, err)
	}
	return nil
}

// GetSession loads a session
func (r *ShippingRepo) GetSession(ctx context.Context, sessionID string) (*selection.Selection, error) {
	key := fmt.Sprintf(constants.KeyQuoteSession, sessionID)

	var session selection.Selection
	var found bool
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "quote_session", "GET", func() error {
		var err error
		found, err = r.redisClient.GetJSON(ctx, key, &session)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load quote session %s: %w", sessionID, err)
	}
	if !found {
		return nil, apperrors.ErrSessionNotFound
	}

	return &session, nil
}
