package core

import (
	"testing"
	"time"

	"life-engine/internal/timeutil"
)

func TestFixedStepWaitsOneInterval(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	fs := NewFixedStep(clock, 200*time.Millisecond)

	if fs.ShouldStep() {
		t.Fatal("first poll must only arm the pacer")
	}
	clock.Advance(150 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock.Advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("a single frame must not yield two steps")
	}
}

func TestFixedStepDoesNotReplayMissedFrames(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	fs := NewFixedStep(clock, 100*time.Millisecond)
	fs.Restart()

	clock.Advance(time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 1 {
		t.Fatalf("steps=%d after a long frame, want 1", steps)
	}
}

func TestFixedStepSetInterval(t *testing.T) {
	fs := NewFixedStep(timeutil.NewMockClock(time.Unix(0, 0)), 0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("default interval=%v", fs.Interval())
	}
	fs.SetInterval(50 * time.Millisecond)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval=%v, want 50ms", fs.Interval())
	}
}
