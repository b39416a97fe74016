package engine

import (
	"fmt"
	"sync"
	"time"

	"life-engine/internal/core"
	"life-engine/internal/timeutil"
)

// FrameScheduler ticks from the host's frame loop instead of timers: every
// Poll checks whether an interval elapsed since the last tick. Nothing is
// ever pending between frames, so stopping is immediate.
type FrameScheduler struct {
	mu     sync.Mutex
	pacer  *core.FixedStep
	tick   func()
	state  State
	closed bool
}

// NewFrameScheduler returns an idle frame-polled scheduler.
func NewFrameScheduler(clock timeutil.Clock, interval time.Duration, tick func()) (*FrameScheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	return &FrameScheduler{
		pacer: core.NewFixedStep(clock, interval),
		tick:  tick,
		state: State{Interval: interval},
	}, nil
}

// Start begins ticking; the first tick is due one interval from now.
func (f *FrameScheduler) Start() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state.Playing {
		return false
	}
	f.state.Playing = true
	f.pacer.SetInterval(f.state.Interval)
	f.pacer.Restart()
	return true
}

// Stop pauses ticking.
func (f *FrameScheduler) Stop() {
	f.mu.Lock()
	f.state.Playing = false
	f.mu.Unlock()
}

// SetInterval changes the spacing between ticks. The tick in flight keeps
// its deadline; the new interval applies from the next one.
func (f *FrameScheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	f.mu.Lock()
	f.state.Interval = d
	f.mu.Unlock()
	return nil
}

// State returns a copy of the current scheduler state.
func (f *FrameScheduler) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Poll runs at most one tick if playing and an interval has elapsed.
func (f *FrameScheduler) Poll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.state.Playing {
		return
	}
	if !f.pacer.ShouldStep() {
		return
	}
	f.pacer.SetInterval(f.state.Interval)
	if f.tick != nil {
		f.tick()
	}
}

// Close stops the scheduler permanently.
func (f *FrameScheduler) Close() {
	f.mu.Lock()
	f.state.Playing = false
	f.closed = true
	f.mu.Unlock()
}
