package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-engine/internal/timeutil"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, interval time.Duration) (*Scheduler, *timeutil.MockClock, *int) {
	t.Helper()
	clock := timeutil.NewMockClock(epoch)
	ticks := new(int)
	s, err := NewScheduler(clock, interval, func() { *ticks++ })
	require.NoError(t, err)
	return s, clock, ticks
}

func TestSchedulerStartsIdle(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	clock.Advance(time.Second)
	assert.Zero(t, *ticks)
	assert.False(t, s.IsPlaying())
	assert.Zero(t, clock.Pending())
}

func TestSchedulerTicksEveryInterval(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	require.True(t, s.Start())

	clock.Advance(99 * time.Millisecond)
	assert.Zero(t, *ticks, "first tick waits a full interval")
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, *ticks)
	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, 5, *ticks)
	assert.Equal(t, 1, clock.Pending())
}

func TestSchedulerDoubleStartKeepsOneChain(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	require.True(t, s.Start())
	assert.False(t, s.Start(), "second Start must not create a parallel chain")
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, *ticks)
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, *ticks)
	assert.Equal(t, 1, clock.Pending())
}

func TestSchedulerStopSilencesTicks(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	s.Start()
	clock.Advance(250 * time.Millisecond)
	require.Equal(t, 2, *ticks)

	s.Stop()
	s.Stop()
	assert.False(t, s.IsPlaying())
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Second)
	assert.Equal(t, 2, *ticks)
}

func TestSchedulerRestartAfterStop(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	s.Start()
	clock.Advance(50 * time.Millisecond)
	s.Stop()
	require.True(t, s.Start())

	clock.Advance(50 * time.Millisecond)
	assert.Zero(t, *ticks, "the cancelled timer must not fire")
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, *ticks)
}

func TestSchedulerIntervalChangeAppliesToNextTick(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 100*time.Millisecond)
	s.Start()
	clock.Advance(40 * time.Millisecond)
	require.NoError(t, s.SetInterval(1000*time.Millisecond))
	assert.Equal(t, time.Second, s.State().Interval)

	clock.Advance(60 * time.Millisecond)
	assert.Equal(t, 1, *ticks, "in-flight tick keeps its original deadline")
	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, *ticks)
	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, *ticks)
}

func TestSchedulerRejectsBadInterval(t *testing.T) {
	_, err := NewScheduler(timeutil.NewMockClock(epoch), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	s, _, _ := newTestScheduler(t, time.Millisecond)
	assert.ErrorIs(t, s.SetInterval(-time.Second), ErrInvalidInterval)
	assert.Equal(t, time.Millisecond, s.State().Interval)
}

func TestSchedulerCloseIsPermanent(t *testing.T) {
	s, clock, ticks := newTestScheduler(t, 10*time.Millisecond)
	s.Start()
	s.Close()
	assert.False(t, s.Start())
	clock.Advance(time.Second)
	assert.Zero(t, *ticks)
	assert.Zero(t, clock.Pending())
}

func TestSchedulerDropsStaleFire(t *testing.T) {
	s, _, ticks := newTestScheduler(t, 10*time.Millisecond)
	s.Start()
	stale := s.epoch
	s.Stop()
	s.Start()
	// Simulate a timer from the first chain that fired before Stop could
	// cancel it.
	s.fire(stale)
	assert.Zero(t, *ticks)
}

func TestSchedulerTickStopsChainFromInside(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	var s *Scheduler
	var ticks int
	s, err := NewScheduler(clock, 10*time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			s.state.Playing = false
		}
	})
	require.NoError(t, err)
	s.Start()
	clock.Advance(time.Second)
	assert.Equal(t, 3, ticks)
	assert.Zero(t, clock.Pending())
}

func TestSchedulerRealClock(t *testing.T) {
	var ticks atomic.Int32
	s, err := NewScheduler(timeutil.RealClock{}, 5*time.Millisecond, func() { ticks.Add(1) })
	require.NoError(t, err)
	s.Start()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	s.Close()
	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "no tick may run after Close returns")
}

func TestFrameSchedulerPolls(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	ticks := 0
	f, err := NewFrameScheduler(clock, 200*time.Millisecond, func() { ticks++ })
	require.NoError(t, err)

	clock.Advance(time.Second)
	f.Poll()
	assert.Zero(t, ticks, "idle scheduler ignores frames")

	require.True(t, f.Start())
	assert.False(t, f.Start())
	for i := 0; i < 10; i++ {
		clock.Advance(50 * time.Millisecond)
		f.Poll()
	}
	assert.Equal(t, 2, ticks)

	require.NoError(t, f.SetInterval(100*time.Millisecond))
	clock.Advance(100 * time.Millisecond)
	f.Poll()
	assert.Equal(t, 3, ticks)

	f.Stop()
	clock.Advance(time.Second)
	f.Poll()
	assert.Equal(t, 3, ticks)

	f.Close()
	assert.False(t, f.Start())
	assert.ErrorIs(t, f.SetInterval(0), ErrInvalidInterval)
}

func TestFrameSchedulerIntervalChangeAppliesToNextTick(t *testing.T) {
	clock := timeutil.NewMockClock(epoch)
	ticks := 0
	f, err := NewFrameScheduler(clock, time.Second, func() { ticks++ })
	require.NoError(t, err)
	require.True(t, f.Start())

	clock.Advance(100 * time.Millisecond)
	f.Poll()
	require.NoError(t, f.SetInterval(50*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, f.State().Interval)
	f.Poll()
	assert.Zero(t, ticks, "in-flight tick keeps its original deadline")

	clock.Advance(899 * time.Millisecond)
	f.Poll()
	assert.Zero(t, ticks)
	clock.Advance(time.Millisecond)
	f.Poll()
	assert.Equal(t, 1, ticks)

	clock.Advance(50 * time.Millisecond)
	f.Poll()
	assert.Equal(t, 2, ticks)
}
