// Package backend tracks whether the remote Golear API is awake.
//
// The API runs on a host that sleeps when idle and can take close to a minute
// to answer its first request. Monitor polls /health until it does and keeps
// the result in a flag the web surface reads on every page.
package backend

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/golearapi"
)

// Wake-up and keep-alive defaults.
const (
	DefaultMaxWait           = 60 * time.Second
	DefaultInterval          = 5 * time.Second
	DefaultKeepAliveInterval = 4*time.Minute + 30*time.Second
	DefaultProbeMaxWait      = 10 * time.Second
	DefaultProbeInterval     = 2 * time.Second
)

// Prober reports backend health.
type Prober interface {
	Health(ctx context.Context) (golearapi.HealthStatus, error)
}

// WaitReady polls prober every interval until it reports healthy, maxWait
// elapses or ctx is done. The interval is fixed.
func WaitReady(ctx context.Context, prober Prober, maxWait, interval time.Duration) bool {
	if prober == nil {
		return false
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	deadline := time.Now().Add(maxWait)

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
		if healthy(ctx, prober) {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		timer.Reset(min(interval, remaining))
	}
}

func healthy(ctx context.Context, prober Prober) bool {
	status, err := prober.Health(ctx)
	return err == nil && status.OK()
}

// Config tunes a Monitor. Zero values take the package defaults.
type Config struct {
	MaxWait           time.Duration
	Interval          time.Duration
	KeepAlive         bool
	KeepAliveInterval time.Duration
	ProbeMaxWait      time.Duration
	ProbeInterval     time.Duration
	Logger            *slog.Logger

	// FailFast makes Run return after a failed wake instead of probing every
	// Interval until the backend answers.
	FailFast bool
}

// Monitor owns the process-wide backend ready flag.
type Monitor struct {
	prober Prober
	cfg    Config
	logger *slog.Logger
	ready  atomic.Bool
	done   chan struct{}
	once   sync.Once
}

// NewMonitor builds a Monitor that is not ready until Run wakes the backend.
func NewMonitor(prober Prober, cfg Config) *Monitor {
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = DefaultMaxWait
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.KeepAliveInterval <= 0 {
		cfg.KeepAliveInterval = DefaultKeepAliveInterval
	}
	if cfg.ProbeMaxWait <= 0 {
		cfg.ProbeMaxWait = DefaultProbeMaxWait
	}
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = DefaultProbeInterval
	}
	return &Monitor{
		prober: prober,
		cfg:    cfg,
		logger: logging.OrDiscard(cfg.Logger).With("component", "backend"),
		done:   make(chan struct{}),
	}
}

// Ready reports the last known backend state.
func (m *Monitor) Ready() bool {
	if m == nil {
		return false
	}
	return m.ready.Load()
}

// Woken is closed once the initial wake attempt finishes.
func (m *Monitor) Woken() <-chan struct{} {
	return m.done
}

// Run wakes the backend and, with keep-alive enabled, keeps probing it until
// ctx is done. A failed wake is retried every Interval unless FailFast is set.
// It always returns nil; failures only flip the flag. Calling Run again after
// the first wake only repeats the probing.
func (m *Monitor) Run(ctx context.Context) error {
	started := time.Now()
	m.logger.InfoContext(ctx, "waking backend", "max_wait", m.cfg.MaxWait, "interval", m.cfg.Interval)
	woke := WaitReady(ctx, m.prober, m.cfg.MaxWait, m.cfg.Interval)
	m.ready.Store(woke)
	m.once.Do(func() { close(m.done) })
	if woke {
		m.logger.InfoContext(ctx, "backend ready", "elapsed", time.Since(started).Round(time.Millisecond))
	} else {
		m.logger.WarnContext(ctx, "backend did not wake", "elapsed", time.Since(started).Round(time.Millisecond))
		if m.cfg.FailFast {
			return nil
		}
		if woke = m.retryWake(ctx); woke {
			m.logger.InfoContext(ctx, "backend ready", "elapsed", time.Since(started).Round(time.Millisecond))
		}
	}

	if !m.cfg.KeepAlive || !woke {
		return nil
	}
	return m.keepAlive(ctx)
}

// retryWake probes every Interval until the backend answers or ctx is done.
func (m *Monitor) retryWake(ctx context.Context) bool {
	if m.prober == nil {
		return false
	}
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		if healthy(ctx, m.prober) {
			m.ready.Store(true)
			return true
		}
	}
}

func (m *Monitor) keepAlive(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.KeepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		up := WaitReady(ctx, m.prober, m.cfg.ProbeMaxWait, m.cfg.ProbeInterval)
		if ctx.Err() != nil {
			return nil
		}
		if previous := m.ready.Swap(up); previous != up {
			m.logger.InfoContext(ctx, "backend state changed", "ready", up)
		} else {
			m.logger.DebugContext(ctx, "keep-alive probe", "ready", up)
		}
	}
}
