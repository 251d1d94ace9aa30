// Package clock drives a session on a fixed tick for hosts that have no frame loop of their own.
package clock

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go-invaders/internal/app"
)

//go:generate go tool mockgen -destination=./mocks/clock_mock.go -package=mocks . Sink,Ticker

// Ticker advances the simulation by one step.
type Ticker interface {
	Tick() app.Snapshot
}

// Sink consumes snapshots produced by the scheduler. Publish runs on the scheduler goroutine
// and must not block.
type Sink interface {
	Publish(snap app.Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(app.Snapshot)

func (f SinkFunc) Publish(snap app.Snapshot) { f(snap) }

// Scheduler calls Tick on a fixed interval from a single goroutine.
// A tick that finishes after the next deadline is reported as an overrun and the
// following tick runs at once; deadlines then restart from that point.
type Scheduler struct {
	ticker   Ticker
	interval time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	sinks []Sink

	running   atomic.Bool
	tickCount atomic.Uint64
	overruns  atomic.Uint64
}

type Option func(*Scheduler)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a scheduler. A non-positive interval falls back to 50ms.
func NewScheduler(ticker Ticker, interval time.Duration, opts ...Option) *Scheduler {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	s := &Scheduler{
		ticker:   ticker,
		interval: interval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSink registers a consumer for every snapshot produced from now on.
func (s *Scheduler) AddSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

func (s *Scheduler) Interval() time.Duration { return s.interval }

// Ticks is the number of completed ticks.
func (s *Scheduler) Ticks() uint64 { return s.tickCount.Load() }

// Overruns is the number of ticks that missed their deadline.
func (s *Scheduler) Overruns() uint64 { return s.overruns.Load() }

// Run blocks until ctx is cancelled. It returns ErrRunning if the scheduler is already running.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.running.Store(false)

	s.logger.Info("scheduler started", "interval", s.interval)
	defer s.logger.Info("scheduler stopped", "ticks", s.tickCount.Load(), "overruns", s.overruns.Load())

	deadline := time.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		// cancellation wins over a due tick
		if ctx.Err() != nil {
			return nil
		}

		s.step()

		deadline = deadline.Add(s.interval)
		now := time.Now()
		wait := deadline.Sub(now)
		if wait < 0 {
			s.overruns.Add(1)
			s.logger.Warn("tick overrun",
				"tick", s.tickCount.Load(),
				"behind", -wait,
				"interval", s.interval,
			)
			deadline = now
			wait = 0
		}
		timer.Reset(wait)
	}
}

func (s *Scheduler) step() {
	snap := s.ticker.Tick()
	s.tickCount.Add(1)

	s.mu.Lock()
	sinks := s.sinks
	s.mu.Unlock()

	for _, sink := range sinks {
		sink.Publish(snap)
	}
}
