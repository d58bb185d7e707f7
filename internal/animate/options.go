package animate

import (
	"strings"
	"time"
)

// Probe controls how often scroll fires while a motion is in flight.
type Probe int

const (
	// ProbeNone never reports intermediate positions.
	ProbeNone Probe = iota
	// ProbeThrottle reports throttled positions during gestures only.
	ProbeThrottle
	// ProbeNormal reports every gesture move but not animation frames.
	ProbeNormal
	// ProbeRealtime reports every gesture move and every animation frame.
	ProbeRealtime
)

var probeNames = map[Probe]string{
	ProbeNone:     "none",
	ProbeThrottle: "throttle",
	ProbeNormal:   "normal",
	ProbeRealtime: "realtime",
}

func (p Probe) String() string {
	if name, ok := probeNames[p]; ok {
		return name
	}
	return "none"
}

// ParseProbe converts a probe name to a Probe.
func ParseProbe(name string) (Probe, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range probeNames {
		if n == name {
			return p, true
		}
	}
	return ProbeNone, false
}

// DefaultBounceTime is the duration of a boundary correction.
const DefaultBounceTime = 800 * time.Millisecond

// Options configures an Animater.
type Options struct {
	// BounceTime is the duration of the corrective motion issued when a
	// motion settles out of bounds. Zero means DefaultBounceTime.
	BounceTime time.Duration
	// Probe selects intermediate scroll reporting.
	Probe Probe
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{BounceTime: DefaultBounceTime, Probe: ProbeNone}
}

func (o Options) resolve() Options {
	if o.BounceTime <= 0 {
		o.BounceTime = DefaultBounceTime
	}
	if _, ok := probeNames[o.Probe]; !ok {
		o.Probe = ProbeNone
	}
	return o
}
