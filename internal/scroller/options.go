package scroller

import (
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
)

// Options configures a Scroller. Start from DefaultOptions: boolean fields
// have no "unset" state, numeric fields that are zero or invalid fall back to
// their defaults when resolved.
type Options struct {
	ScrollX bool
	ScrollY bool
	// StartX and StartY are the initial position before plugins amend it.
	StartX float64
	StartY float64

	Probe      animate.Probe
	BounceTime time.Duration
	// Bounce lets a drag overshoot the edges with resistance.
	Bounce bool

	Momentum              bool
	MomentumLimitTime     time.Duration
	MomentumLimitDistance float64
	Deceleration          float64
	SwipeTime             time.Duration
	SwipeBounceTime       time.Duration

	FlickLimitTime     time.Duration
	FlickLimitDistance float64

	// MouseWheel declares the mousewheel channels on the public events.
	MouseWheel bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ScrollX:               false,
		ScrollY:               true,
		Probe:                 animate.ProbeNone,
		BounceTime:            animate.DefaultBounceTime,
		Bounce:                true,
		Momentum:              true,
		MomentumLimitTime:     300 * time.Millisecond,
		MomentumLimitDistance: 15,
		Deceleration:          0.0015,
		SwipeTime:             2500 * time.Millisecond,
		SwipeBounceTime:       500 * time.Millisecond,
		FlickLimitTime:        200 * time.Millisecond,
		FlickLimitDistance:    100,
	}
}

func (o Options) resolve() Options {
	d := DefaultOptions()
	if o.BounceTime <= 0 {
		o.BounceTime = d.BounceTime
	}
	if o.MomentumLimitTime <= 0 {
		o.MomentumLimitTime = d.MomentumLimitTime
	}
	if o.MomentumLimitDistance < 0 {
		o.MomentumLimitDistance = d.MomentumLimitDistance
	}
	if o.Deceleration <= 0 {
		o.Deceleration = d.Deceleration
	}
	if o.SwipeTime <= 0 {
		o.SwipeTime = d.SwipeTime
	}
	if o.SwipeBounceTime <= 0 {
		o.SwipeBounceTime = d.SwipeBounceTime
	}
	if o.FlickLimitTime <= 0 {
		o.FlickLimitTime = d.FlickLimitTime
	}
	if o.FlickLimitDistance <= 0 {
		o.FlickLimitDistance = d.FlickLimitDistance
	}
	if o.Probe < animate.ProbeNone || o.Probe > animate.ProbeRealtime {
		o.Probe = d.Probe
	}
	return o
}

func (o Options) animater() animate.Options {
	return animate.Options{BounceTime: o.BounceTime, Probe: o.Probe}
}

func (o Options) physics() Physics {
	return Physics{
		Bounce:                o.Bounce,
		Momentum:              o.Momentum,
		MomentumLimitTime:     o.MomentumLimitTime,
		MomentumLimitDistance: o.MomentumLimitDistance,
		Deceleration:          o.Deceleration,
		SwipeTime:             o.SwipeTime,
		SwipeBounceTime:       o.SwipeBounceTime,
	}
}
