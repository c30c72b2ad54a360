package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/sony/gobreaker"
)

// ErrCircuitBreakerOpen is returned without calling through while the breaker
// is open or already probing.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	Timeout          time.Duration // time spent open before a probe is allowed
	// IsFailure decides which errors count against the dependency. Nil counts every error.
	IsFailure func(err error) bool
	// OnStateChange is called after every transition, for example to export the state.
	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker stops calling a failing dependency until it had time to recover
type CircuitBreaker struct {
	cb   *gobreaker.CircuitBreaker
	name string
}

// New creates a closed circuit breaker. A nil logger uses the global one.
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 1
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: 1,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn("Circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
			if config.OnStateChange != nil {
				config.OnStateChange(name, from, to)
			}
		},
	}
	if config.IsFailure != nil {
		settings.IsSuccessful = func(err error) bool { return err == nil || !config.IsFailure(err) }
	}

	return &CircuitBreaker{cb: gobreaker.NewCircuitBreaker(settings), name: config.Name}
}

// Execute calls fn unless the breaker is open
func (c *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitBreakerOpen
	}
	return err
}

// State returns the current state of the circuit breaker
func (c *CircuitBreaker) State() gobreaker.State {
	return c.cb.State()
}

// Name returns the circuit breaker name
func (c *CircuitBreaker) Name() string {
	return c.name
}
