// Package engine hosts running Game of Life instances: tick scheduling,
// the current-grid state machine, pointer interaction and the three
// presentation contexts (interactive grid, background, pattern previews).
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"life-engine/internal/timeutil"
)

// ErrInvalidInterval is returned for non-positive tick intervals.
var ErrInvalidInterval = errors.New("tick interval must be positive")

// State is the scheduler state owned by one simulation instance.
type State struct {
	Playing  bool
	Interval time.Duration
}

// Driver repeatedly invokes a tick callback while playing.
type Driver interface {
	Start() bool
	Stop()
	SetInterval(d time.Duration) error
	State() State
	// Poll gives frame-driven implementations a chance to tick. Timer
	// driven implementations ignore it.
	Poll()
	Close()
}

// Scheduler drives a tick callback through a chain of one-shot timers. At
// most one timer is pending at a time and ticks never overlap.
//
// The callback runs with the scheduler lock held, so once Stop or Close
// returns no further tick will run. It must not call back into the
// Scheduler.
type Scheduler struct {
	mu      sync.Mutex
	clock   timeutil.Clock
	tick    func()
	state   State
	pending timeutil.Timer
	epoch   uint64
	closed  bool
}

// NewScheduler returns an idle scheduler.
func NewScheduler(clock timeutil.Clock, interval time.Duration, tick func()) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Scheduler{clock: clock, tick: tick, state: State{Interval: interval}}, nil
}

// Start moves the scheduler to running and schedules the first tick one
// interval from now. It reports false when already running or closed.
func (s *Scheduler) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state.Playing {
		return false
	}
	s.state.Playing = true
	s.epoch++
	s.scheduleLocked()
	return true
}

// Stop cancels the pending tick. Stopping an idle scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// SetInterval changes the interval used for the next scheduled tick. An
// already pending tick keeps its deadline.
func (s *Scheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	s.mu.Lock()
	s.state.Interval = d
	s.mu.Unlock()
	return nil
}

// State returns a copy of the current scheduler state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsPlaying reports whether ticks are being scheduled.
func (s *Scheduler) IsPlaying() bool { return s.State().Playing }

// Poll is a no-op; timers fire on their own.
func (s *Scheduler) Poll() {}

// Close stops the scheduler permanently.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.closed = true
}

func (s *Scheduler) stopLocked() {
	s.state.Playing = false
	s.epoch++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Scheduler) scheduleLocked() {
	epoch := s.epoch
	s.pending = s.clock.AfterFunc(s.state.Interval, func() { s.fire(epoch) })
}

func (s *Scheduler) fire(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A timer that fired while Stop or a restart held the lock belongs to
	// a dead chain.
	if s.closed || !s.state.Playing || epoch != s.epoch {
		return
	}
	s.pending = nil
	if s.tick != nil {
		s.tick()
	}
	if s.state.Playing && epoch == s.epoch {
		s.scheduleLocked()
	}
}
