package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsfam/pawhaven/internal/pkg/converter"
	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/gazetteer"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

type staticConfigs map[models.TransportMode]models.PricingConfig

func (s staticConfigs) PricingConfig(_ context.Context, mode models.TransportMode) (models.PricingConfig, error) {
	return s[mode], nil
}

func newSession(t *testing.T, mode models.TransportMode) *selection.Selection {
	t.Helper()
	origin, err := gazetteer.Default().Resolve("us", "tx")
	require.NoError(t, err)
	return selection.New(converter.NewID(), origin, mode, "", false, models.Now())
}

// readySession returns a session priced with the default configs
func readySession(t *testing.T, mode models.TransportMode, countryID, regionID string) *selection.Selection {
	t.Helper()
	machine := selection.NewMachine(gazetteer.Default(), staticConfigs{
		models.TransportModeGround: *defaultConfig(t, models.TransportModeGround),
		models.TransportModeAir:    *defaultConfig(t, models.TransportModeAir),
	})
	s := newSession(t, mode)
	require.NoError(t, machine.SelectCountry(s, countryID))
	require.NoError(t, machine.SelectRegion(context.Background(), s, regionID))
	require.Equal(t, selection.StateQuoteReady, s.State)
	return s
}

func TestCreateSession(t *testing.T) {
	f := newFixture(t)
	var saved *selection.Selection
	f.repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), 30*time.Minute).
		DoAndReturn(func(_ context.Context, s *selection.Selection, _ time.Duration) error {
			saved = s
			return nil
		})

	session, err := f.uc.CreateSession(context.Background(), &models.CreateSessionRequest{
		Mode:       models.TransportModeAir,
		OriginText: "Hamburg",
	})

	require.NoError(t, err)
	assert.Same(t, saved, session)
	assert.Equal(t, selection.StateNoDestination, session.State)
	assert.Equal(t, models.ServiceTierStandard, session.Tier)
	assert.Equal(t, "hh", session.Origin.RegionID)
	_, ok := converter.ParseID(session.ID)
	assert.True(t, ok)
}

func TestCreateSession_OriginFromCoordinates(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	lat, lng := 53.34, -6.26

	session, err := f.uc.CreateSession(context.Background(), &models.CreateSessionRequest{
		Mode:            models.TransportModeGround,
		OriginLatitude:  &lat,
		OriginLongitude: &lng,
	})

	require.NoError(t, err)
	assert.Equal(t, "ie", session.Origin.CountryID)
	assert.Equal(t, "d", session.Origin.RegionID)
}

func TestCreateSession_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		req    models.CreateSessionRequest
		target error
	}{
		{"unknown mode", models.CreateSessionRequest{Mode: "sea", OriginCountryID: "us"}, apperrors.ErrInvalidInput},
		{"unknown tier", models.CreateSessionRequest{Mode: "air", Tier: "vip", OriginCountryID: "us"}, apperrors.ErrInvalidInput},
		{"missing origin", models.CreateSessionRequest{Mode: "air"}, apperrors.ErrUnresolvedLocation},
		{"unmatched origin text", models.CreateSessionRequest{Mode: "air", OriginText: "the moon"}, apperrors.ErrUnresolvedLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			session, err := f.uc.CreateSession(context.Background(), &tt.req)

			assert.Nil(t, session)
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}

func TestGetSession_MalformedID(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetSession(context.Background(), "not-a-session")

	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}

func TestSelectCountryThenRegion(t *testing.T) {
	f := newFixture(t)
	f.cached(defaultConfig(t, models.TransportModeGround))
	session := newSession(t, models.TransportModeGround)

	f.repo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil).Times(2)
	f.repo.EXPECT().SaveSession(gomock.Any(), session, 30*time.Minute).Return(nil).Times(2)

	updated, err := f.uc.SelectCountry(context.Background(), session.ID, "us")
	require.NoError(t, err)
	assert.Equal(t, selection.StateDestinationCountrySelected, updated.State)

	updated, err = f.uc.SelectRegion(context.Background(), session.ID, "ny")
	require.NoError(t, err)
	assert.Equal(t, selection.StateQuoteReady, updated.State)
	require.NotNil(t, updated.Display)
	assert.Equal(t, updated.Display.BaseShippingPrice, updated.Display.TotalPrice)
}

func TestSelectRegion_WithoutCountryIsNotSaved(t *testing.T) {
	f := newFixture(t)
	session := newSession(t, models.TransportModeGround)
	f.repo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)

	_, err := f.uc.SelectRegion(context.Background(), session.ID, "ny")

	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
	assert.Equal(t, selection.StateNoDestination, session.State)
}

func TestSetCompanion_RepricesReadySession(t *testing.T) {
	f := newFixture(t)
	f.cached(defaultConfig(t, models.TransportModeAir))
	session := readySession(t, models.TransportModeAir, "gb", "sct")
	before := session.Quote.TotalPrice

	f.repo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	f.repo.EXPECT().SaveSession(gomock.Any(), session, gomock.Any()).Return(nil)

	updated, err := f.uc.SetCompanion(context.Background(), session.ID, true)

	require.NoError(t, err)
	assert.Equal(t, selection.StateQuoteReady, updated.State)
	assert.Equal(t, 700.0, updated.Quote.CompanionFee)
	assert.InDelta(t, before+700, updated.Quote.TotalPrice, 0.001)
}

func TestSetMode_DisabledModeMovesToError(t *testing.T) {
	f := newFixture(t)
	air := defaultConfig(t, models.TransportModeAir)
	air.IsEnabled = false
	f.cached(air)
	session := readySession(t, models.TransportModeGround, "us", "fl")

	f.repo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)
	f.repo.EXPECT().SaveSession(gomock.Any(), session, gomock.Any()).Return(nil)

	updated, err := f.uc.SetMode(context.Background(), session.ID, models.TransportModeAir)

	require.NoError(t, err)
	assert.Equal(t, selection.StateError, updated.State)
	assert.Nil(t, updated.Quote)
	require.NotNil(t, updated.Failure)
	assert.Equal(t, string(apperrors.KindTransportDisabled), updated.Failure.ErrorKind)
}

func TestSetTier_UnknownTierIsNotSaved(t *testing.T) {
	f := newFixture(t)
	session := newSession(t, models.TransportModeGround)
	f.repo.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil)

	_, err := f.uc.SetTier(context.Background(), session.ID, "gold")

	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestUpdateSession_NotFound(t *testing.T) {
	f := newFixture(t)
	id := converter.NewID()
	f.repo.EXPECT().GetSession(gomock.Any(), id).Return(nil, apperrors.ErrSessionNotFound)

	_, err := f.uc.SetTier(context.Background(), id, models.ServiceTierPrivate)

	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}
