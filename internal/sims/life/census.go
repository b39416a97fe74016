package life

import (
	"errors"
	"fmt"
	"strings"

	"life-engine/internal/core"
)

// ErrInvalidCensus reports unusable census parameters.
var ErrInvalidCensus = errors.New("life: invalid census parameters")

// Class is the long-run behaviour observed for a pattern.
type Class int

const (
	// Unsettled patterns neither repeated nor died within the limit.
	Unsettled Class = iota
	// Extinct patterns reached zero population.
	Extinct
	// StillLife patterns repeat every generation in place.
	StillLife
	// Oscillator patterns repeat in place with a period above one.
	Oscillator
	// Spaceship patterns repeat displaced.
	Spaceship
)

func (c Class) String() string {
	switch c {
	case Extinct:
		return "extinct"
	case StillLife:
		return "still life"
	case Oscillator:
		return "oscillator"
	case Spaceship:
		return "spaceship"
	default:
		return "unsettled"
	}
}

// Report summarises one census run.
type Report struct {
	Name        string
	Class       Class
	Period      int
	DRow, DCol  int
	Generations int
	Initial     int
	Final       int
	Peak        int
}

// CensusOptions controls the field a pattern is run in. Only Bounded fields
// are supported: shapes are compared by their live bounding box, which a
// wrapped pattern would stretch across the whole field.
type CensusOptions struct {
	Margin         int
	MaxGenerations int
	Boundary       core.Boundary
}

type sighting struct {
	gen      int
	row, col int
}

// Census runs p centred in a field padded by Margin on every side until its
// shape repeats (possibly displaced), it dies out, or MaxGenerations pass.
func Census(p Pattern, opts CensusOptions) (Report, error) {
	if opts.Margin < 0 || opts.MaxGenerations <= 0 {
		return Report{}, fmt.Errorf("%w: margin=%d generations=%d", ErrInvalidCensus, opts.Margin, opts.MaxGenerations)
	}
	if opts.Boundary != core.Bounded {
		return Report{}, fmt.Errorf("%w: %s boundary", ErrInvalidCensus, opts.Boundary)
	}
	g, err := LoadPattern(p.Rows()+2*opts.Margin, p.Cols()+2*opts.Margin, p)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Name: p.Name(), Initial: g.Population()}
	seen := make(map[string]sighting)
	for gen := 0; ; gen++ {
		pop := g.Population()
		rep.Final, rep.Generations = pop, gen
		if pop > rep.Peak {
			rep.Peak = pop
		}
		if pop == 0 {
			rep.Class = Extinct
			return rep, nil
		}
		key, row, col := shape(g)
		if prev, ok := seen[key]; ok {
			rep.Period = gen - prev.gen
			rep.DRow, rep.DCol = row-prev.row, col-prev.col
			switch {
			case rep.DRow != 0 || rep.DCol != 0:
				rep.Class = Spaceship
			case rep.Period == 1:
				rep.Class = StillLife
			default:
				rep.Class = Oscillator
			}
			return rep, nil
		}
		seen[key] = sighting{gen: gen, row: row, col: col}
		if gen == opts.MaxGenerations {
			rep.Class = Unsettled
			return rep, nil
		}
		g = Step(g, opts.Boundary)
	}
}

// shape renders the live bounding box of g and returns it with the box's
// top-left corner. g must have at least one live cell.
func shape(g core.Grid) (string, int, int) {
	minR, minC := g.Rows(), g.Cols()
	maxR, maxC := -1, -1
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.Alive(r, c) {
				continue
			}
			minR, maxR = min(minR, r), max(maxR, r)
			minC, maxC = min(minC, c), max(maxC, c)
		}
	}
	var b strings.Builder
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if g.Alive(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), minR, minC
}
