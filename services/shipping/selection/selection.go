package selection

import (
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
)

// State is a step of the destination selection flow
type State string

const (
	StateNoDestination              State = "NoDestination"
	StateDestinationCountrySelected State = "DestinationCountrySelected"
	StateDestinationRegionSelected  State = "DestinationRegionSelected"
	StateQuoteReady                 State = "QuoteReady"
	StateError                      State = "Error"
)

// Failure is the visible reason a session has no quote
type Failure struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}

// Selection is one shopper's quote session for a pet. The origin is fixed at
// creation; everything else is driven through a Machine.
type Selection struct {
	ID            string                `json:"id"`
	State         State                 `json:"state"`
	Mode          models.TransportMode  `json:"mode"`
	Tier          models.ServiceTier    `json:"tier"`
	HasCompanion  bool                  `json:"hasCompanion"`
	Origin        models.Location       `json:"origin"`
	DestCountryID string                `json:"destCountryId,omitempty"`
	DestRegionID  string                `json:"destRegionId,omitempty"`
	Destination   *models.Location      `json:"destination,omitempty"`
	Quote         *models.ShippingQuote `json:"quote,omitempty"`
	Display       *models.QuoteDisplay  `json:"display,omitempty"`
	Failure       *Failure              `json:"failure,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// New starts a session with no destination
func New(id string, origin models.Location, mode models.TransportMode, tier models.ServiceTier, hasCompanion bool, now time.Time) *Selection {
	if tier == "" {
		tier = models.ServiceTierStandard
	}
	return &Selection{
		ID:           id,
		State:        StateNoDestination,
		Mode:         mode,
		Tier:         tier,
		HasCompanion: hasCompanion,
		Origin:       origin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Priced reports whether the selection currently holds a quote or a quote failure
func (s *Selection) Priced() bool {
	return s.State == StateQuoteReady || s.State == StateError
}

func (s *Selection) clearQuote() {
	s.Quote = nil
	s.Display = nil
	s.Failure = nil
}
