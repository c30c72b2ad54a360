package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a shipping failure. The string value is what clients see as errorKind.
type Kind string

const (
	KindUnresolvedLocation   Kind = "UnresolvedLocationError"
	KindTransportDisabled    Kind = "TransportDisabledError"
	KindRouteOutOfRange      Kind = "RouteOutOfRangeError"
	KindInvalidConfiguration Kind = "InvalidConfigurationError"
	KindConfigurationLoad    Kind = "ConfigurationLoadError"
)

var (
	ErrUnresolvedLocation   = errors.New("location could not be resolved")
	ErrTransportDisabled    = errors.New("transport mode is disabled")
	ErrRouteOutOfRange      = errors.New("route exceeds transport range")
	ErrInvalidConfiguration = errors.New("invalid pricing configuration")
	ErrConfigurationLoad    = errors.New("failed to load pricing configuration")

	ErrPricingConfigNotFound = errors.New("pricing configuration not found")
	ErrSessionNotFound       = errors.New("quote session not found")
	ErrInvalidTransition     = errors.New("invalid selection transition")
	ErrInvalidInput          = errors.New("invalid input")
)

// ShippingError is a classified failure raised while resolving locations,
// loading configuration or pricing a shipment.
type ShippingError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ShippingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ShippingError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that belongs to the error kind.
func (e *ShippingError) Is(target error) bool {
	return sentinel(e.Kind) == target
}

func sentinel(kind Kind) error {
	switch kind {
	case KindUnresolvedLocation:
		return ErrUnresolvedLocation
	case KindTransportDisabled:
		return ErrTransportDisabled
	case KindRouteOutOfRange:
		return ErrRouteOutOfRange
	case KindInvalidConfiguration:
		return ErrInvalidConfiguration
	case KindConfigurationLoad:
		return ErrConfigurationLoad
	default:
		return nil
	}
}

// UnresolvedLocation reports an origin or destination that has no coordinates.
func UnresolvedLocation(format string, args ...interface{}) error {
	return &ShippingError{Kind: KindUnresolvedLocation, Message: fmt.Sprintf(format, args...)}
}

// TransportDisabled reports a transport mode switched off by an admin.
func TransportDisabled(mode string) error {
	return &ShippingError{Kind: KindTransportDisabled, Message: fmt.Sprintf("%s transport is disabled", mode)}
}

// RouteOutOfRange reports a route longer than the mode may serve.
func RouteOutOfRange(mode string, distanceKm, maxKm float64) error {
	return &ShippingError{
		Kind:    KindRouteOutOfRange,
		Message: fmt.Sprintf("%s route of %.0f km exceeds the %.0f km limit", mode, distanceKm, maxKm),
	}
}

// InvalidConfiguration reports pricing configuration an operator has to fix.
func InvalidConfiguration(format string, args ...interface{}) error {
	return &ShippingError{Kind: KindInvalidConfiguration, Message: fmt.Sprintf(format, args...)}
}

// ConfigurationLoad wraps a failed configuration fetch.
func ConfigurationLoad(mode string, err error) error {
	return &ShippingError{
		Kind:    KindConfigurationLoad,
		Message: fmt.Sprintf("could not load %s pricing configuration", mode),
		Err:     err,
	}
}

// KindOf returns the kind of the first ShippingError in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var se *ShippingError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// MessageOf returns the client facing message of a ShippingError, falling back to err.Error().
func MessageOf(err error) string {
	var se *ShippingError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
