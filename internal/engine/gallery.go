package engine

import (
	"fmt"
	"log"

	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"
)

// Gallery runs one independent preview per pattern. Controls go through the
// Handle returned for each preview, never through a shared namespace.
type Gallery struct {
	previews []*Simulation
	byName   map[string]*Simulation
}

// NewGallery starts a preview for every pattern. Duplicate names are
// rejected so each handle is unambiguous.
func NewGallery(cfg PreviewConfig, patterns []life.Pattern, clock timeutil.Clock, logger *log.Logger) (*Gallery, error) {
	g := &Gallery{byName: make(map[string]*Simulation, len(patterns))}
	for _, p := range patterns {
		if _, dup := g.byName[p.Name()]; dup {
			g.Close()
			return nil, fmt.Errorf("duplicate preview %q", p.Name())
		}
		sim, err := NewPreview(cfg, p, clock, logger)
		if err != nil {
			g.Close()
			return nil, err
		}
		g.previews = append(g.previews, sim)
		g.byName[p.Name()] = sim
	}
	return g, nil
}

// Handle returns the controls of the named preview.
func (g *Gallery) Handle(name string) (Handle, bool) {
	sim, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return sim, true
}

// Previews returns the previews in creation order.
func (g *Gallery) Previews() []*Simulation {
	out := make([]*Simulation, len(g.previews))
	copy(out, g.previews)
	return out
}

// Poll forwards a frame to every preview.
func (g *Gallery) Poll() {
	for _, sim := range g.previews {
		sim.Poll()
	}
}

// Close tears down every preview.
func (g *Gallery) Close() {
	for _, sim := range g.previews {
		sim.Close()
	}
}
