package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("postgres down")

func failing(context.Context) error { return errDown }
func passing(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{Name: "pricing", FailureThreshold: 2, Timeout: time.Minute}, logger.NewNopLogger())
	ctx := context.Background()

	assert.Equal(t, errDown, cb.Execute(ctx, failing))
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.Equal(t, errDown, cb.Execute(ctx, failing))
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	cb := New(Config{Name: "pricing", FailureThreshold: 1, Timeout: 20 * time.Millisecond}, logger.NewNopLogger())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, cb.State())
	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	notFound := errors.New("not found")
	cb := New(Config{
		Name:             "pricing",
		FailureThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return err != nil && !errors.Is(err, notFound) },
	}, logger.NewNopLogger())

	err := cb.Execute(context.Background(), func(context.Context) error { return notFound })

	assert.Equal(t, notFound, err)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.Equal(t, "pricing", cb.Name())
}

func TestCircuitBreaker_ReportsStateChanges(t *testing.T) {
	var transitions []gobreaker.State
	cb := New(Config{
		Name:             "pricing",
		FailureThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return true },
		OnStateChange: func(_ string, _, to gobreaker.State) {
			transitions = append(transitions, to)
		},
	}, logger.NewNopLogger())

	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, []gobreaker.State{gobreaker.StateOpen}, transitions)
}
