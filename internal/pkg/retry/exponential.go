package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/logger"
)

// RetryableFunc is one attempt of a retried operation
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // attempts after the first one
	BaseDelay     time.Duration    // delay before the first retry
	MaxDelay      time.Duration    // upper bound of any single delay
	Multiplier    float64          // backoff growth per attempt
	Jitter        bool             // add up to 10% random delay
	RetryableFunc func(error) bool // nil retries every error
}

// DefaultConfig returns a short backoff suited to a request path
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   1 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a function until it succeeds, fails permanently or runs out of attempts
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier. A nil logger uses the global one.
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config, logger: l}
}

// Execute runs fn with exponential backoff. A non retryable error is returned
// unchanged so callers can still match it with errors.Is.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	r.logger.Warn("Operation failed after all retries",
		logger.Err(lastErr),
		logger.Int("attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if r.config.RetryableFunc == nil {
		return true
	}
	return r.config.RetryableFunc(err)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}

// Permanent returns a RetryableFunc filter that stops on any of the given errors
func Permanent(errs ...error) func(error) bool {
	return func(err error) bool {
		for _, target := range errs {
			if errors.Is(err, target) {
				return false
			}
		}
		return true
	}
}
