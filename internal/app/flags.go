package app

import (
	"flag"
	"strconv"
	"strings"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	*o = append(*o, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim       string
	Width     int
	Height    int
	TPS       int
	Seed      int64
	Lines     bool
	Verbose   bool
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "interactive", Width: 900, Height: 700, TPS: 60, Seed: 42, Lines: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (interactive, background, preview)")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.BoolVar(&c.Lines, "lines", c.Lines, "draw cell borders")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log simulation lifecycle events")
	fs.Var(&c.Overrides, "set", "simulation setting in key=value form (repeatable)")
}

// Settings flattens the config into the map accepted by simulation
// factories. Explicit -set overrides win over the viewport and seed flags;
// malformed pairs are skipped.
func (c *Config) Settings() map[string]string {
	out := map[string]string{
		"view_w": strconv.Itoa(c.Width),
		"view_h": strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
	if c.Verbose {
		out["verbose"] = "true"
	}
	for _, kv := range c.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}
