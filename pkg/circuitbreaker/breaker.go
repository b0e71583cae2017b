package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

// Breaker guards one downstream dependency. A single breaker is shared by
// every call to that dependency regardless of the result type.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

// New returns nil when cfg is disabled.
func New(cfg Config) *Breaker {
	if !cfg.Enabled {
		return nil
	}

	threshold := uint32(cfg.FailureThreshold)
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  uint32(cfg.MaxRequests),
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			cfg.OnStateChange(name, from.String(), to.String())
		}
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker[any](settings)}
}

func (b *Breaker) Name() string {
	return b.cb.Name()
}

// State is "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Execute runs fn through b, or directly when b is nil. Rejections surface as
// ErrCircuitOpen or ErrTooManyRequests; errors from fn are returned as is.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}

	var zero T

	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return zero, ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return zero, ErrTooManyRequests
	}

	value, ok := result.(T)
	if !ok {
		value = zero
	}

	return value, err
}
