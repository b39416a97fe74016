package engine

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-engine/internal/core"
	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"
)

func newTestSim(t *testing.T, opts Options) (*Simulation, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClock(epoch)
	opts.Clock = clock
	if opts.Rows == 0 {
		opts.Rows = 5
	}
	if opts.Cols == 0 {
		opts.Cols = 5
	}
	if opts.Interval == 0 {
		opts.Interval = 100 * time.Millisecond
	}
	sim, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(sim.Close)
	return sim, clock
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{Name: "bad", Rows: 0, Cols: 3, Interval: time.Second})
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)

	_, err = New(Options{Name: "bad", Rows: 3, Cols: 3})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New(Options{Name: "bad", Rows: 3, Cols: 3, Interval: time.Second, Density: 2})
	assert.ErrorIs(t, err, life.ErrInvalidDensity)
}

func TestSimulationStartsEmptyAndIdle(t *testing.T) {
	sim, _ := newTestSim(t, Options{Name: "interactive"})
	assert.Zero(t, sim.Current().Population())
	assert.False(t, sim.IsPlaying())
	assert.Equal(t, core.Size{W: 5, H: 5}, sim.Size())
	_, err := uuid.Parse(sim.ID())
	assert.NoError(t, err)
}

func TestSimulationPlaysBlinker(t *testing.T) {
	p := life.Blinker
	sim, clock := newTestSim(t, Options{Name: "blinker", Pattern: &p})
	initial := sim.Current()

	require.True(t, sim.Start())
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, sim.Generation())
	assert.False(t, initial.Equal(sim.Current()))

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, sim.Generation())
	if diff := cmp.Diff(initial.String(), sim.Current().String()); diff != "" {
		t.Fatalf("blinker did not return after two ticks (-want +got):\n%s", diff)
	}

	sim.Stop()
	clock.Advance(time.Second)
	assert.Equal(t, 2, sim.Generation(), "no ticks after Stop")
}

func TestSimulationTicksConsumePreviousOutput(t *testing.T) {
	p := life.Glider
	sim, clock := newTestSim(t, Options{Name: "glider", Rows: 8, Cols: 8, Boundary: core.Toroidal, Pattern: &p})
	expected := sim.Current()
	sim.Start()
	for i := 0; i < 12; i++ {
		clock.Advance(100 * time.Millisecond)
		expected = life.Step(expected, core.Toroidal)
		require.True(t, expected.Equal(sim.Current()), "tick %d diverged", i+1)
	}
}

func TestSimulationToggle(t *testing.T) {
	sim, _ := newTestSim(t, Options{Name: "interactive"})
	require.NoError(t, sim.Toggle(2, 3))
	assert.True(t, sim.Current().Alive(2, 3))
	require.NoError(t, sim.Toggle(2, 3))
	assert.False(t, sim.Current().Alive(2, 3))
	assert.ErrorIs(t, sim.Toggle(5, 0), core.ErrOutOfRange)
}

func TestSimulationSeedAndClear(t *testing.T) {
	sim, clock := newTestSim(t, Options{Name: "interactive", Rows: 20, Cols: 20, Density: 1})
	require.NoError(t, sim.Seed())
	assert.Equal(t, 400, sim.Current().Population())

	sim.Start()
	clock.Advance(100 * time.Millisecond)
	require.Equal(t, 1, sim.Generation())

	require.NoError(t, sim.Clear())
	assert.False(t, sim.IsPlaying(), "clear pauses playback")
	assert.Zero(t, sim.Current().Population())
	assert.Zero(t, sim.Generation())
	clock.Advance(time.Second)
	assert.Zero(t, sim.Generation())
}

func TestSimulationResetPattern(t *testing.T) {
	sim, clock := newTestSim(t, Options{Name: "interactive", Rows: 9, Cols: 9, Boundary: core.Toroidal})
	assert.ErrorIs(t, sim.ResetPattern(), ErrNoPattern)

	require.NoError(t, sim.LoadPattern(life.Glider))
	stamped := sim.Current()
	sim.Start()
	clock.Advance(700 * time.Millisecond)
	require.False(t, stamped.Equal(sim.Current()))

	require.NoError(t, sim.ResetPattern())
	assert.True(t, stamped.Equal(sim.Current()))
	assert.Zero(t, sim.Generation())
	assert.True(t, sim.IsPlaying(), "reset does not change playback")
}

func TestSimulationResetIsDeterministic(t *testing.T) {
	sim, _ := newTestSim(t, Options{Name: "background", Rows: 16, Cols: 16, Density: 0.3})
	sim.Reset(99)
	first := sim.Current()
	sim.Step()
	sim.Reset(99)
	assert.True(t, first.Equal(sim.Current()))
	assert.NotZero(t, first.Population())
}

func TestSimulationSpeedChange(t *testing.T) {
	sim, clock := newTestSim(t, Options{Name: "interactive", Interval: Fast.Interval()})
	sim.Start()
	require.NoError(t, sim.SetSpeed(Slow))
	assert.Equal(t, time.Second, sim.Interval())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, sim.Generation())
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, sim.Generation())
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 2, sim.Generation())

	assert.ErrorIs(t, sim.SetInterval(0), ErrInvalidInterval)
}

func TestSimulationTogglePlay(t *testing.T) {
	sim, clock := newTestSim(t, Options{Name: "interactive"})
	assert.True(t, sim.TogglePlay())
	assert.True(t, sim.IsPlaying())
	assert.False(t, sim.TogglePlay())
	clock.Advance(time.Second)
	assert.Zero(t, sim.Generation())
}

func TestSimulationFrameMode(t *testing.T) {
	p := life.Blinker
	sim, clock := newTestSim(t, Options{Name: "Blinker", Mode: FrameMode, Interval: 200 * time.Millisecond, Pattern: &p})
	sim.Start()
	clock.Advance(time.Second)
	assert.Zero(t, sim.Generation(), "frame mode only ticks when polled")
	sim.Poll()
	assert.Equal(t, 1, sim.Generation())
	sim.Poll()
	assert.Equal(t, 1, sim.Generation())
}

func TestSimulationCloseCancelsPendingTick(t *testing.T) {
	sim, clock := newTestSim(t, Options{Name: "interactive"})
	sim.Start()
	sim.Close()
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Second)
	assert.Zero(t, sim.Generation())
	assert.False(t, sim.Start())
}

func TestSimulationOnChange(t *testing.T) {
	var gens []int
	var last core.Grid
	sim, clock := newTestSim(t, Options{
		Name: "interactive",
		OnChange: func(g core.Grid, gen int) {
			gens = append(gens, gen)
			last = g
		},
	})
	require.NoError(t, sim.Toggle(0, 0))
	sim.Start()
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{0, 1}, gens)
	assert.True(t, last.Equal(sim.Current()))
}

func TestSimulationLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	sim, _ := newTestSim(t, Options{Name: "interactive", Logger: log.New(&buf, "", 0)})
	sim.Start()
	sim.Stop()
	out := buf.String()
	assert.Contains(t, out, "interactive[")
	assert.Contains(t, out, "started interval=100ms")
	assert.Contains(t, out, "stopped at generation 0")
}

func TestSimulationParameters(t *testing.T) {
	sim, _ := newTestSim(t, Options{Name: "interactive", Rows: 3, Cols: 4})
	require.NoError(t, sim.Toggle(1, 1))
	snap := sim.Parameters()

	want := map[string]string{
		"rows":        "3",
		"cols":        "4",
		"boundary":    "bounded",
		"playing":     "false",
		"interval_ms": "100",
		"population":  "1",
		"generation":  "0",
	}
	for key, value := range want {
		p, ok := snap.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, value, p.Value, key)
	}
}

func TestSimulationsAreIsolated(t *testing.T) {
	a, clockA := newTestSim(t, Options{Name: "a"})
	b, _ := newTestSim(t, Options{Name: "b"})
	require.NoError(t, a.Toggle(0, 0))
	a.Start()
	clockA.Advance(time.Second)

	assert.Zero(t, b.Current().Population())
	assert.Zero(t, b.Generation())
	assert.False(t, b.IsPlaying())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Frame")
	require.NoError(t, err)
	assert.Equal(t, FrameMode, m)
	_, err = ParseMode("vsync")
	assert.Error(t, err)
	assert.Equal(t, "timer", TimerMode.String())
}
