// Package monitor runs the protection watch loop: it polls the environment
// probe on a fixed cadence and hands off to the destruction reactor on the
// first positive detection.
package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/xivu/axom/internal/engine"
)

// DefaultInterval is the cadence between probe cycles.
const DefaultInterval = time.Second

// Prober runs one probe cycle.
type Prober interface {
	Evaluate(ctx context.Context) ([]engine.DetectorResult, time.Duration)
}

// Reactor is invoked on a positive detection. In production it does not
// return.
type Reactor interface {
	Execute()
}

// Monitor watches the process environment. It has two states, idle and
// watching; once watching there is no way back short of process exit.
type Monitor struct {
	probe    Prober
	reactor  Reactor
	interval time.Duration
	logger   *zap.Logger

	// running is the protection state: written once by the first Start.
	running atomic.Bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval overrides the cadence between probe cycles.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithLogger sets the logger. The monitor only writes debug entries.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates an idle monitor.
func New(probe Prober, reactor Reactor, opts ...Option) *Monitor {
	m := &Monitor{
		probe:    probe,
		reactor:  reactor,
		interval: DefaultInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start moves the monitor from idle to watching by launching the watch
// loop in its own goroutine. Calling Start again is a no-op. The loop is
// detached: it cannot be cancelled or joined.
func (m *Monitor) Start() {
	if !m.running.CompareAndSwap(false, true) {
		return
	}
	m.logger.Debug("protection watch started", zap.Duration("interval", m.interval))
	go m.watch()
}

// Running reports whether Start has been called.
func (m *Monitor) Running() bool {
	return m.running.Load()
}

// Cycle runs one probe cycle and, on a positive detection, executes the
// reactor before returning true.
func (m *Monitor) Cycle(ctx context.Context) bool {
	results, elapsed := m.probe.Evaluate(ctx)
	agg := engine.Aggregate(results)
	if !agg.Observed() {
		return false
	}

	m.logger.Debug("observation detected",
		zap.String("reason", agg.Reason),
		zap.Duration("probe_latency", elapsed),
	)
	m.reactor.Execute()
	return true
}

func (m *Monitor) watch() {
	ctx := context.Background()
	for {
		if m.Cycle(ctx) {
			return
		}
		time.Sleep(m.interval)
	}
}
