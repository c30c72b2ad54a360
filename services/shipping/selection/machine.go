package selection

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/pkg/pricing"
)

// Resolver looks up destinations in the gazetteer
type Resolver interface {
	GetCountryByID(id string) *models.Country
	Resolve(countryID, regionID string) (models.Location, error)
}

// ConfigProvider returns the current pricing config of a mode
type ConfigProvider interface {
	PricingConfig(ctx context.Context, mode models.TransportMode) (models.PricingConfig, error)
}

// Machine applies shopper input to a Selection. Rejected input returns an
// error and leaves the selection as it was. Pricing failures do not return an
// error; they move the selection to StateError.
type Machine struct {
	resolver Resolver
	configs  ConfigProvider
	now      func() time.Time
}

// NewMachine creates a Machine
func NewMachine(resolver Resolver, configs ConfigProvider) *Machine {
	return &Machine{resolver: resolver, configs: configs, now: models.Now}
}

// SelectCountry picks the destination country and drops any region and quote
func (m *Machine) SelectCountry(s *Selection, countryID string) error {
	country := m.resolver.GetCountryByID(countryID)
	if country == nil {
		return apperrors.UnresolvedLocation("country %q is not in the gazetteer", countryID)
	}

	s.DestCountryID = country.ID
	s.DestRegionID = ""
	s.Destination = nil
	s.clearQuote()
	s.State = StateDestinationCountrySelected
	s.UpdatedAt = m.now()
	return nil
}

// SelectRegion picks the destination region and prices the route
func (m *Machine) SelectRegion(ctx context.Context, s *Selection, regionID string) error {
	if s.DestCountryID == "" {
		return fmt.Errorf("%w: select a destination country before a region", apperrors.ErrInvalidTransition)
	}

	destination, err := m.resolver.Resolve(s.DestCountryID, regionID)
	if err != nil {
		return err
	}

	s.DestRegionID = regionID
	s.Destination = &destination
	s.State = StateDestinationRegionSelected
	m.recompute(ctx, s)
	return nil
}

// SetCompanion toggles the companion add-on, repricing in place once priced
func (m *Machine) SetCompanion(ctx context.Context, s *Selection, hasCompanion bool) error {
	s.HasCompanion = hasCompanion
	m.touch(ctx, s)
	return nil
}

// SetTier switches the service tier, repricing in place once priced
func (m *Machine) SetTier(ctx context.Context, s *Selection, tier models.ServiceTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown service tier %q", apperrors.ErrInvalidInput, tier)
	}
	s.Tier = tier
	m.touch(ctx, s)
	return nil
}

// SetMode switches the transport mode, repricing in place once priced
func (m *Machine) SetMode(ctx context.Context, s *Selection, mode models.TransportMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrInvalidInput, mode)
	}
	s.Mode = mode
	m.touch(ctx, s)
	return nil
}

// Refresh reprices a priced selection, for example after a config change
func (m *Machine) Refresh(ctx context.Context, s *Selection) {
	m.touch(ctx, s)
}

func (m *Machine) touch(ctx context.Context, s *Selection) {
	if s.Priced() {
		m.recompute(ctx, s)
		return
	}
	s.UpdatedAt = m.now()
}

func (m *Machine) recompute(ctx context.Context, s *Selection) {
	s.clearQuote()
	s.UpdatedAt = m.now()

	cfg, err := m.configs.PricingConfig(ctx, s.Mode)
	if err != nil {
		m.fail(s, err)
		return
	}

	quote, err := pricing.Quote(&s.Origin, s.Destination, cfg, s.Tier, s.HasCompanion)
	if err != nil {
		m.fail(s, err)
		return
	}

	display := quote.Display()
	s.Quote = quote
	s.Display = &display
	s.State = StateQuoteReady
}

func (m *Machine) fail(s *Selection, err error) {
	kind := apperrors.KindOf(err)
	if kind == "" {
		kind = apperrors.KindInvalidConfiguration
	}
	s.Failure = &Failure{ErrorKind: string(kind), Message: apperrors.MessageOf(err)}
	s.State = StateError
}
