package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"life-engine/internal/app"
	"life-engine/internal/core"
	"life-engine/internal/engine"
	"life-engine/internal/sims/life"
	"life-engine/internal/timeutil"
)

type frame struct {
	grid core.Grid
	gen  int
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 50, "stop after this many generations (0 runs until interrupted)")
	quiet := flag.Bool("quiet", false, "print only the status line for each generation")
	flag.Parse()

	settings := cfg.Settings()
	frames := make(chan frame, 1)
	opts, err := buildOptions(cfg.Sim, settings)
	if err != nil {
		log.Fatal(err)
	}
	opts.Clock = timeutil.RealClock{}
	if cfg.Verbose {
		opts.Logger = log.Default()
	}
	opts.OnChange = func(g core.Grid, gen int) {
		select {
		case frames <- frame{grid: g, gen: gen}:
		default:
			// Drop the frame if the printer is behind; the next one supersedes it.
		}
	}

	sim, err := engine.New(opts)
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	defer sim.Close()

	if opts.Pattern == nil {
		if err := sim.Seed(); err != nil {
			log.Fatalf("seed: %v", err)
		}
		<-frames
	}
	printFrame(sim.Current(), sim.Generation(), *quiet)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	sim.Start()
	for {
		select {
		case f := <-frames:
			printFrame(f.grid, f.gen, *quiet)
			if *generations > 0 && f.gen >= *generations {
				return
			}
			if f.grid.Population() == 0 {
				log.Printf("population died out at generation %d", f.gen)
				return
			}
		case <-interrupt:
			return
		}
	}
}

// buildOptions maps a context name and its settings onto engine options.
// Every context runs on the timer scheduler here; there is no frame loop.
func buildOptions(name string, settings map[string]string) (engine.Options, error) {
	switch name {
	case "interactive":
		c := engine.InteractiveFromMap(settings)
		return engine.Options{
			Name: name, Rows: c.Rows, Cols: c.Cols, Boundary: c.Boundary,
			Density: c.Density, Seed: c.Seed, Interval: c.Speed.Interval(),
		}, nil
	case "background":
		c := engine.BackgroundFromMap(settings)
		rows, cols := engine.BackgroundDims(c.ViewW, c.ViewH, c.CellSize)
		return engine.Options{
			Name: name, Rows: rows, Cols: cols, Boundary: c.Boundary,
			Density: c.Density, Seed: c.Seed, Interval: c.Interval,
		}, nil
	case "preview":
		c := engine.PreviewFromMap(settings)
		p, ok := life.Lookup(c.Pattern)
		if !ok {
			return engine.Options{}, fmt.Errorf("unknown pattern %q", c.Pattern)
		}
		_, rows, cols := engine.PreviewLayout(c.ViewW, c.ViewH, p.Rows(), p.Cols(), c.Margin)
		return engine.Options{
			Name: p.Name(), Rows: rows, Cols: cols, Boundary: c.Boundary,
			Interval: c.Interval, Pattern: &p,
		}, nil
	default:
		return engine.Options{}, fmt.Errorf("unknown sim %q (have %v)", name, core.SimNames())
	}
}

func printFrame(g core.Grid, gen int, quiet bool) {
	if !quiet {
		fmt.Print("\033[H\033[2J")
		fmt.Print(strings.NewReplacer("#", "O", ".", " ").Replace(g.String()))
	}
	fmt.Printf("generation %d  population %d\n", gen, g.Population())
}
