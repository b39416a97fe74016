package engine

import (
	"fmt"
	"log"

	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"
)

// NewInteractive builds the editable main grid. It starts idle on an
// all-dead grid.
func NewInteractive(cfg InteractiveConfig, clock timeutil.Clock, logger *log.Logger) (*Simulation, error) {
	return New(Options{
		Name:     "interactive",
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Boundary: cfg.Boundary,
		Density:  cfg.Density,
		Seed:     cfg.Seed,
		Interval: cfg.Speed.Interval(),
		Mode:     cfg.Mode,
		Clock:    clock,
		Logger:   logger,
	})
}

// NewBackground builds the decorative animation sized to cover the
// viewport, seeds it and starts it playing.
func NewBackground(cfg BackgroundConfig, clock timeutil.Clock, logger *log.Logger) (*Simulation, error) {
	rows, cols := BackgroundDims(cfg.ViewW, cfg.ViewH, cfg.CellSize)
	sim, err := New(Options{
		Name:     "background",
		Rows:     rows,
		Cols:     cols,
		Boundary: cfg.Boundary,
		Density:  cfg.Density,
		Seed:     cfg.Seed,
		Interval: cfg.Interval,
		Mode:     cfg.Mode,
		Clock:    clock,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	if err := sim.Seed(); err != nil {
		sim.Close()
		return nil, err
	}
	sim.Start()
	return sim, nil
}

// NewPreview builds a looping preview of p centred in the viewport and
// starts it playing.
func NewPreview(cfg PreviewConfig, p life.Pattern, clock timeutil.Clock, logger *log.Logger) (*Simulation, error) {
	if p.Rows() == 0 || p.Cols() == 0 {
		return nil, fmt.Errorf("preview %q: %w", p.Name(), life.ErrEmptyPattern)
	}
	_, rows, cols := PreviewLayout(cfg.ViewW, cfg.ViewH, p.Rows(), p.Cols(), cfg.Margin)
	sim, err := New(Options{
		Name:     p.Name(),
		Rows:     rows,
		Cols:     cols,
		Boundary: cfg.Boundary,
		Interval: cfg.Interval,
		Mode:     cfg.Mode,
		Pattern:  &p,
		Clock:    clock,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	sim.Start()
	return sim, nil
}

// NewPreviewByName looks the pattern up in the catalog.
func NewPreviewByName(cfg PreviewConfig, clock timeutil.Clock, logger *log.Logger) (*Simulation, error) {
	p, ok := life.Lookup(cfg.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	return NewPreview(cfg, p, clock, logger)
}
