// Package ease provides the easing curves used by scroll animations.
package ease

import (
	"sort"
	"strings"
)

// Func maps normalized elapsed time in [0,1] onto animation progress.
// Overshooting curves may return values slightly outside [0,1].
type Func func(t float64) float64

// Easing is a named curve. Style is the equivalent cubic-bezier, kept for
// sinks that animate natively instead of frame by frame.
type Easing struct {
	Name  string
	Style string
	Fn    Func
}

var (
	// Swipe is easeOutQuint, used for momentum travel.
	Swipe = Easing{
		Name:  "swipe",
		Style: "cubic-bezier(0.23, 1, 0.32, 1)",
		Fn: func(t float64) float64 {
			t--
			return 1 + t*t*t*t*t
		},
	}
	// SwipeBounce is easeOutQuad, used when momentum overshoots an edge.
	SwipeBounce = Easing{
		Name:  "swipe_bounce",
		Style: "cubic-bezier(0.25, 0.46, 0.45, 0.94)",
		Fn: func(t float64) float64 {
			return t * (2 - t)
		},
	}
	// Bounce is easeOutQuart, used for boundary correction and paging.
	Bounce = Easing{
		Name:  "bounce",
		Style: "cubic-bezier(0.165, 0.84, 0.44, 1)",
		Fn: func(t float64) float64 {
			t--
			return 1 - t*t*t*t
		},
	}
	// Linear moves at constant speed.
	Linear = Easing{
		Name:  "linear",
		Style: "linear",
		Fn: func(t float64) float64 {
			return t
		},
	}
)

var byName = map[string]Easing{
	Swipe.Name:       Swipe,
	SwipeBounce.Name: SwipeBounce,
	Bounce.Name:      Bounce,
	Linear.Name:      Linear,
}

// Lookup returns the easing registered under name (case-insensitive).
func Lookup(name string) (Easing, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Names returns every registered easing name in lexical order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsZero reports whether e carries no curve.
func (e Easing) IsZero() bool {
	return e.Fn == nil
}

// Or returns e, or fallback when e is empty.
func (e Easing) Or(fallback Easing) Easing {
	if e.IsZero() {
		return fallback
	}
	return e
}
