package engine

import (
	"io"
	"log"
	"strconv"

	"life-engine/internal/core"
	"life-engine/internal/timeutil"
)

func init() {
	core.Register("interactive", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewInteractive(InteractiveFromMap(cfg), timeutil.RealClock{}, loggerFor(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
	core.Register("background", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewBackground(BackgroundFromMap(cfg), timeutil.RealClock{}, loggerFor(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
	core.Register("preview", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewPreviewByName(PreviewFromMap(cfg), timeutil.RealClock{}, loggerFor(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}

// loggerFor returns the default logger when cfg["verbose"] is true.
func loggerFor(cfg map[string]string) *log.Logger {
	if v, err := strconv.ParseBool(cfg["verbose"]); err == nil && v {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}
