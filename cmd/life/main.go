//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-engine/internal/app"
	"life-engine/internal/core"
	"life-engine/internal/engine"
	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"

	"github.com/hajimehoshi/ebiten/v2"
)

type closer interface {
	Close()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ebiten.SetTPS(cfg.TPS)
	if cfg.Sim == "gallery" {
		runGallery(cfg)
		return
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have gallery, %v)", cfg.Sim, core.SimNames())
	}

	sim, err := factory(cfg.Settings())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	if c, ok := sim.(closer); ok {
		defer c.Close()
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("life-engine - " + sim.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	run(game)
}

func runGallery(cfg *app.Config) {
	settings := cfg.Settings()
	// The window size flags describe the whole gallery; tiles use the
	// preview defaults unless overridden with -set view_w/view_h.
	delete(settings, "view_w")
	delete(settings, "view_h")
	pcfg := engine.PreviewFromMap(settings)

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.Default()
	}
	gallery, err := engine.NewGallery(pcfg, life.Catalog(), timeutil.RealClock{}, logger)
	if err != nil {
		log.Fatalf("build gallery: %v", err)
	}
	defer gallery.Close()

	game := app.NewGalleryGame(gallery, pcfg.ViewW, pcfg.ViewH)
	ebiten.SetWindowTitle("life-engine - gallery")
	ebiten.SetWindowSize(game.WindowSize())
	run(game)
}

func run(game ebiten.Game) {
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
