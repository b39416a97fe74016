package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Speed is one of the discrete options offered by the speed selector.
type Speed int

const (
	// Slow ticks once per second.
	Slow Speed = iota
	// Medium ticks every 500ms.
	Medium
	// Fast ticks every 100ms.
	Fast
	// Lightning ticks every 50ms.
	Lightning
)

var speeds = []Speed{Slow, Medium, Fast, Lightning}

// Speeds lists the selector options from slowest to fastest.
func Speeds() []Speed {
	out := make([]Speed, len(speeds))
	copy(out, speeds)
	return out
}

// Interval returns the tick interval for s.
func (s Speed) Interval() time.Duration {
	switch s {
	case Slow:
		return 1000 * time.Millisecond
	case Medium:
		return 500 * time.Millisecond
	case Lightning:
		return 50 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

func (s Speed) String() string {
	switch s {
	case Slow:
		return "slow"
	case Medium:
		return "medium"
	case Fast:
		return "fast"
	case Lightning:
		return "lightning"
	default:
		return "speed(" + strconv.Itoa(int(s)) + ")"
	}
}

// Next cycles to the following option, wrapping from Lightning to Slow.
func (s Speed) Next() Speed {
	return speeds[(int(s)+1)%len(speeds)]
}

// ParseSpeed accepts an option name or its interval in milliseconds.
func ParseSpeed(v string) (Speed, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range speeds {
		if v == s.String() {
			return s, nil
		}
	}
	if ms, err := strconv.Atoi(strings.TrimSuffix(v, "ms")); err == nil {
		for _, s := range speeds {
			if s.Interval() == time.Duration(ms)*time.Millisecond {
				return s, nil
			}
		}
	}
	return Fast, fmt.Errorf("unknown speed %q", v)
}
