package golearapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// BreakerSettings tunes the circuit breaker in front of the API.
type BreakerSettings struct {
	Disabled bool
	// ConsecutiveFailures trips the breaker; default 3.
	ConsecutiveFailures uint32
	// Interval clears counts while closed; default 60s.
	Interval time.Duration
	// Timeout is how long the breaker stays open; default 60s.
	Timeout time.Duration
}

type breaker struct {
	cb *gobreaker.CircuitBreaker
}

func newBreaker(name string, s BreakerSettings) *breaker {
	if s.Disabled {
		return &breaker{}
	}
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 3
	}
	if s.Interval <= 0 {
		s.Interval = 60 * time.Second
	}
	if s.Timeout <= 0 {
		s.Timeout = 60 * time.Second
	}
	st := gobreaker.Settings{
		Name:     name,
		Interval: s.Interval,
		Timeout:  s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= s.ConsecutiveFailures {
				return true
			}
			if counts.Requests < 20 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) > 0.5
		},
		IsSuccessful: countsAsSuccess,
	}
	return &breaker{cb: gobreaker.NewCircuitBreaker(st)}
}

func (b *breaker) execute(ctx context.Context, fn func() (response, error)) (response, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	var resp response
	_, err := b.cb.Execute(func() (any, error) {
		var err error
		resp, err = fn()
		if err != nil && ctx.Err() != nil {
			err = abandonedError{err: err}
		}
		return nil, err
	})
	var abandoned abandonedError
	if errors.As(err, &abandoned) {
		return resp, abandoned.err
	}
	return resp, err
}

// abandonedError marks a failure seen after the caller gave up on the call.
type abandonedError struct {
	err error
}

func (e abandonedError) Error() string { return e.err.Error() }

func (e abandonedError) Unwrap() error { return e.err }

func (b *breaker) state() gobreaker.State {
	if b == nil || b.cb == nil {
		return gobreaker.StateClosed
	}
	return b.cb.State()
}

// Client errors (4xx) and calls the caller abandoned say nothing about the
// backend and must not open the circuit.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var abandoned abandonedError
	if errors.As(err, &abandoned) {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError
	}
	return false
}

type limiter struct {
	rl *rate.Limiter
}

func newLimiter(rps float64, burst int) *limiter {
	if rps <= 0 {
		return &limiter{}
	}
	if burst <= 0 {
		burst = 1
	}
	return &limiter{rl: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (l *limiter) wait(ctx context.Context) error {
	if l == nil || l.rl == nil {
		return nil
	}
	return l.rl.Wait(ctx)
}

// CircuitState reports the breaker state: "closed", "half-open" or "open".
func (c *Client) CircuitState() string {
	return c.breaker.state().String()
}
