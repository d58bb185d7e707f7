package slide

import (
	"time"

	"github.com/cristianoliveira/glide/internal/ease"
)

// Options configures paging.
type Options struct {
	Loop bool
	// Threshold is the travel in pixels, per axis, a release or drag needs
	// before it selects another page.
	Threshold float64
	// Speed is the navigation duration. Zero derives it from the distance.
	Speed time.Duration
	// SnapTime is the duration of momentum-resolved page changes.
	SnapTime   time.Duration
	Easing     ease.Easing
	StartPageX int
	StartPageY int
}

const (
	DefaultThreshold = 30
	DefaultSnapTime  = 300 * time.Millisecond

	minTravelTime = 300
	maxTravelTime = 1000
)

// DefaultOptions returns looping paging with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Loop:      true,
		Threshold: DefaultThreshold,
		SnapTime:  DefaultSnapTime,
		Easing:    ease.Bounce,
	}
}

func (o Options) resolve() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Speed < 0 {
		o.Speed = 0
	}
	if o.SnapTime <= 0 {
		o.SnapTime = DefaultSnapTime
	}
	o.Easing = o.Easing.Or(ease.Bounce)
	if o.StartPageX < 0 {
		o.StartPageX = 0
	}
	if o.StartPageY < 0 {
		o.StartPageY = 0
	}
	return o
}
