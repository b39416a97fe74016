package engine

import (
	"strconv"
	"time"

	"life-engine/internal/core"
)

// InteractiveConfig controls the editable main grid.
type InteractiveConfig struct {
	Rows     int
	Cols     int
	Density  float64
	Speed    Speed
	Boundary core.Boundary
	Mode     Mode
	Seed     int64
}

// DefaultInteractiveConfig returns the standard configuration.
func DefaultInteractiveConfig() InteractiveConfig {
	return InteractiveConfig{
		Rows:     30,
		Cols:     50,
		Density:  0.25,
		Speed:    Fast,
		Boundary: core.Bounded,
		Mode:     TimerMode,
		Seed:     42,
	}
}

// InteractiveFromMap populates the config from a string map (flag-style
// key/value pairs). Invalid values keep their defaults.
func InteractiveFromMap(cfg map[string]string) InteractiveConfig {
	c := DefaultInteractiveConfig()
	if cfg == nil {
		return c
	}
	positiveInt(cfg, "rows", &c.Rows)
	positiveInt(cfg, "cols", &c.Cols)
	unitFloat(cfg, "density", &c.Density)
	if v, ok := cfg["speed"]; ok {
		if parsed, err := ParseSpeed(v); err == nil {
			c.Speed = parsed
		}
	}
	boundaryField(cfg, &c.Boundary)
	modeField(cfg, &c.Mode)
	seedField(cfg, &c.Seed)
	return c
}

// BackgroundConfig controls the decorative full-viewport animation.
type BackgroundConfig struct {
	ViewW    int
	ViewH    int
	CellSize int
	Density  float64
	Interval time.Duration
	Boundary core.Boundary
	Mode     Mode
	Seed     int64
}

// DefaultBackgroundConfig returns the standard configuration.
func DefaultBackgroundConfig() BackgroundConfig {
	return BackgroundConfig{
		ViewW:    1280,
		ViewH:    720,
		CellSize: 20,
		Density:  0.15,
		Interval: 150 * time.Millisecond,
		Boundary: core.Toroidal,
		Mode:     FrameMode,
		Seed:     7,
	}
}

// BackgroundFromMap populates the config from a string map.
func BackgroundFromMap(cfg map[string]string) BackgroundConfig {
	c := DefaultBackgroundConfig()
	if cfg == nil {
		return c
	}
	positiveInt(cfg, "view_w", &c.ViewW)
	positiveInt(cfg, "view_h", &c.ViewH)
	positiveInt(cfg, "cell", &c.CellSize)
	unitFloat(cfg, "density", &c.Density)
	intervalField(cfg, &c.Interval)
	boundaryField(cfg, &c.Boundary)
	modeField(cfg, &c.Mode)
	seedField(cfg, &c.Seed)
	return c
}

// PreviewConfig controls a single pattern preview loop.
type PreviewConfig struct {
	ViewW    int
	ViewH    int
	// Margin is the number of extra cells kept around the pattern on
	// each axis when sizing cells.
	Margin   int
	Interval time.Duration
	Boundary core.Boundary
	Mode     Mode
	Pattern  string
}

// DefaultPreviewConfig returns the standard configuration.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		ViewW:    320,
		ViewH:    192,
		Margin:   4,
		Interval: 200 * time.Millisecond,
		Boundary: core.Toroidal,
		Mode:     FrameMode,
		Pattern:  "Glider",
	}
}

// PreviewFromMap populates the config from a string map.
func PreviewFromMap(cfg map[string]string) PreviewConfig {
	c := DefaultPreviewConfig()
	if cfg == nil {
		return c
	}
	positiveInt(cfg, "view_w", &c.ViewW)
	positiveInt(cfg, "view_h", &c.ViewH)
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	intervalField(cfg, &c.Interval)
	boundaryField(cfg, &c.Boundary)
	modeField(cfg, &c.Mode)
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}

func positiveInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func unitFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			*dst = parsed
		}
	}
}

func intervalField(cfg map[string]string, dst *time.Duration) {
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = time.Duration(parsed) * time.Millisecond
		}
	}
}

func boundaryField(cfg map[string]string, dst *core.Boundary) {
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := core.ParseBoundary(v); err == nil {
			*dst = parsed
		}
	}
}

func modeField(cfg map[string]string, dst *Mode) {
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			*dst = parsed
		}
	}
}

func seedField(cfg map[string]string, dst *int64) {
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = parsed
		}
	}
}
