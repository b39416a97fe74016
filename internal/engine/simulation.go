package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"life-engine/internal/core"
	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"
)

// ErrNoPattern is returned by ResetPattern when no pattern was loaded.
var ErrNoPattern = errors.New("no pattern loaded")

// Mode selects the scheduler implementation backing a Simulation.
type Mode int

const (
	// TimerMode chains one-shot timers.
	TimerMode Mode = iota
	// FrameMode ticks from the host's frame loop via Poll.
	FrameMode
)

func (m Mode) String() string {
	if m == FrameMode {
		return "frame"
	}
	return "timer"
}

// ParseMode converts "timer" or "frame" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "timer":
		return TimerMode, nil
	case "frame":
		return FrameMode, nil
	}
	return TimerMode, fmt.Errorf("unknown scheduler mode %q", s)
}

// Options configures a Simulation.
type Options struct {
	Name     string
	Rows     int
	Cols     int
	Boundary core.Boundary
	// Density is the live-cell probability used by Seed.
	Density  float64
	Seed     int64
	Interval time.Duration
	Mode     Mode
	// Pattern, when set, is stamped as the initial grid and restored by
	// ResetPattern.
	Pattern *life.Pattern
	Clock   timeutil.Clock
	Logger  *log.Logger
	// OnChange is called after every replacement of the current grid. It
	// may run on a timer goroutine and must not call Start, Stop, Clear,
	// SetInterval or Close.
	OnChange func(g core.Grid, generation int)
}

// Handle is the per-instance control surface handed to presentation code.
type Handle interface {
	ID() string
	Name() string
	Start() bool
	Stop()
	ResetPattern() error
	IsPlaying() bool
}

// Simulation owns one current grid and the scheduler that advances it.
// Instances share no state with each other.
type Simulation struct {
	id     uuid.UUID
	name   string
	policy core.Boundary
	logger *log.Logger
	driver Driver

	onChange func(core.Grid, int)

	mu         sync.RWMutex
	current    core.Grid
	generation int
	density    float64
	rng        *core.RNG
	pattern    *life.Pattern
}

// New builds a Simulation. The initial grid is the centred pattern when one
// is configured, otherwise all dead.
func New(opts Options) (*Simulation, error) {
	if opts.Density < 0 || opts.Density > 1 || math.IsNaN(opts.Density) {
		return nil, fmt.Errorf("%s: %w: %v", opts.Name, life.ErrInvalidDensity, opts.Density)
	}
	var initial core.Grid
	var err error
	if opts.Pattern != nil {
		initial, err = life.LoadPattern(opts.Rows, opts.Cols, *opts.Pattern)
	} else {
		initial, err = life.Clear(opts.Rows, opts.Cols)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Simulation{
		id:       uuid.New(),
		name:     opts.Name,
		policy:   opts.Boundary,
		logger:   logger,
		onChange: opts.OnChange,
		current:  initial,
		density:  opts.Density,
		rng:      core.NewRNG(opts.Seed),
		pattern:  opts.Pattern,
	}
	switch opts.Mode {
	case FrameMode:
		s.driver, err = NewFrameScheduler(opts.Clock, opts.Interval, s.advance)
	default:
		s.driver, err = NewScheduler(opts.Clock, opts.Interval, s.advance)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Name, err)
	}
	return s, nil
}

// ID returns the instance identifier.
func (s *Simulation) ID() string { return s.id.String() }

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.Current().Size() }

// Boundary returns the policy applied on every step.
func (s *Simulation) Boundary() core.Boundary { return s.policy }

// Current returns the current snapshot.
func (s *Simulation) Current() core.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Generation counts steps since the grid was last replaced by anything
// other than a step.
func (s *Simulation) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Cells exposes a copy of the current cell values for rendering.
func (s *Simulation) Cells() []uint8 { return s.Current().Cells() }

// Step advances one generation immediately, independent of the scheduler.
func (s *Simulation) Step() { s.advance() }

func (s *Simulation) advance() {
	s.mu.Lock()
	s.current = life.Step(s.current, s.policy)
	s.generation++
	g, gen := s.current, s.generation
	s.mu.Unlock()
	s.publish(g, gen)
}

// Seed replaces the grid with a random one at the configured density.
func (s *Simulation) Seed() error {
	s.mu.Lock()
	g, err := life.Seed(s.current.Rows(), s.current.Cols(), s.density, s.rng)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current, s.generation = g, 0
	s.mu.Unlock()
	s.publish(g, 0)
	return nil
}

// Clear stops playback and replaces the grid with an all-dead one.
func (s *Simulation) Clear() error {
	s.Stop()
	s.mu.Lock()
	g, err := life.Clear(s.current.Rows(), s.current.Cols())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current, s.generation = g, 0
	s.mu.Unlock()
	s.publish(g, 0)
	return nil
}

// Toggle flips one cell of the current grid.
func (s *Simulation) Toggle(row, col int) error {
	s.mu.Lock()
	g, err := s.current.Toggle(row, col)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = g
	gen := s.generation
	s.mu.Unlock()
	s.publish(g, gen)
	return nil
}

// LoadPattern stamps p centred into a fresh grid and remembers it for
// ResetPattern.
func (s *Simulation) LoadPattern(p life.Pattern) error {
	s.mu.Lock()
	g, err := life.LoadPattern(s.current.Rows(), s.current.Cols(), p)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current, s.generation, s.pattern = g, 0, &p
	s.mu.Unlock()
	s.publish(g, 0)
	return nil
}

// ResetPattern restores the loaded pattern, discarding all evolution.
func (s *Simulation) ResetPattern() error {
	s.mu.RLock()
	p := s.pattern
	s.mu.RUnlock()
	if p == nil {
		return fmt.Errorf("%s: %w", s.name, ErrNoPattern)
	}
	return s.LoadPattern(*p)
}

// Reset reseeds the random source and rebuilds the initial state: the
// pattern when one is loaded, otherwise a random grid (or an empty one when
// the density is zero).
func (s *Simulation) Reset(seed int64) {
	s.mu.Lock()
	s.rng = core.NewRNG(seed)
	hasPattern := s.pattern != nil
	s.mu.Unlock()

	var err error
	switch {
	case hasPattern:
		err = s.ResetPattern()
	case s.density > 0:
		err = s.Seed()
	default:
		err = s.Clear()
	}
	if err != nil {
		s.logger.Printf("%s: reset: %v", s.label(), err)
	}
}

// Start begins scheduled stepping. It reports false if already playing.
func (s *Simulation) Start() bool {
	started := s.driver.Start()
	if started {
		s.logger.Printf("%s: started interval=%s", s.label(), s.driver.State().Interval)
	}
	return started
}

// Stop pauses scheduled stepping.
func (s *Simulation) Stop() {
	if s.driver.State().Playing {
		s.logger.Printf("%s: stopped at generation %d", s.label(), s.Generation())
	}
	s.driver.Stop()
}

// TogglePlay starts or stops playback and returns the new playing state.
func (s *Simulation) TogglePlay() bool {
	if s.IsPlaying() {
		s.Stop()
		return false
	}
	s.Start()
	return s.IsPlaying()
}

// SetInterval changes the tick interval, effective from the next tick.
func (s *Simulation) SetInterval(d time.Duration) error {
	if err := s.driver.SetInterval(d); err != nil {
		return err
	}
	s.logger.Printf("%s: interval=%s", s.label(), d)
	return nil
}

// SetSpeed applies a selector option.
func (s *Simulation) SetSpeed(sp Speed) error { return s.SetInterval(sp.Interval()) }

// Interval returns the current tick interval.
func (s *Simulation) Interval() time.Duration { return s.driver.State().Interval }

// IsPlaying reports whether scheduled stepping is active.
func (s *Simulation) IsPlaying() bool { return s.driver.State().Playing }

// Poll lets frame-driven simulations tick; call it once per frame.
func (s *Simulation) Poll() { s.driver.Poll() }

// Close cancels any pending tick permanently.
func (s *Simulation) Close() {
	s.driver.Close()
	s.logger.Printf("%s: closed", s.label())
}

// Parameters reports the instance state for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	s.mu.RLock()
	g, gen := s.current, s.generation
	s.mu.RUnlock()
	st := s.driver.State()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.StringParam("name", "Name", s.name),
				core.IntParam("rows", "Rows", g.Rows()),
				core.IntParam("cols", "Cols", g.Cols()),
				core.StringParam("boundary", "Boundary", s.policy.String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.BoolParam("playing", "Playing", st.Playing),
				core.IntParam("interval_ms", "Interval (ms)", int(st.Interval/time.Millisecond)),
				core.IntParam("generation", "Generation", gen),
				core.IntParam("population", "Population", g.Population()),
			},
		},
	}}
}

func (s *Simulation) publish(g core.Grid, gen int) {
	if s.onChange != nil {
		s.onChange(g, gen)
	}
}

func (s *Simulation) label() string {
	return s.name + "[" + s.id.String()[:8] + "]"
}
