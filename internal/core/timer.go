package core

import (
	"time"

	"life-engine/internal/timeutil"
)

// FixedStep paces frame-polled updates: the host calls ShouldStep once per
// frame and advances the simulation whenever it reports true.
type FixedStep struct {
	clock    timeutil.Clock
	interval time.Duration
	last     time.Time
}

// NewFixedStep constructs a FixedStep that fires at most once per interval.
func NewFixedStep(clock timeutil.Clock, interval time.Duration) *FixedStep {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	fs := &FixedStep{clock: clock}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the minimum spacing between steps. Non-positive values
// fall back to 60 steps per second.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.interval = d
}

// Interval returns the current step spacing.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Restart makes the next step due one full interval from now.
func (f *FixedStep) Restart() {
	f.last = f.clock.Now()
}

// ShouldStep reports whether at least one interval elapsed since the last
// step. Missed intervals are not replayed; a long frame yields one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) >= f.interval {
		f.last = now
		return true
	}
	return false
}
