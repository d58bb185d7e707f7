// Package translate holds the logical scroll position of one surface and
// renders it through a direct or a transform strategy.
package translate

import "math"

// Position is the logical state of a surface.
// Scale is the scale the next motion settles on; LastScale is the scale most
// recently rendered.
type Position struct {
	X         float64
	Y         float64
	Scale     float64
	LastScale float64
}

// Translator owns a Position and commits it to a sink.
type Translator interface {
	// UpdatePosition stores the values and renders them synchronously.
	UpdatePosition(x, y, scale float64)
	// Position returns the last values set.
	Position() Position
	// ComputedPosition reads the committed values back from the sink.
	ComputedPosition() Position
	// SetScale records a target scale without rendering it.
	SetScale(scale float64)
	// Reflow blocks until the last commit is settled in the sink.
	Reflow()
}

// Reflower is implemented by sinks that buffer writes and can flush them.
type Reflower interface {
	Reflow()
}

type state struct {
	pos Position
}

func newState() state {
	return state{pos: Position{Scale: 1, LastScale: 1}}
}

// store applies x, y and scale, ignoring values that would break the
// finite-position or positive-scale invariants.
func (s *state) store(x, y, scale float64) {
	if finite(x) {
		s.pos.X = x
	}
	if finite(y) {
		s.pos.Y = y
	}
	if finite(scale) && scale > 0 {
		s.pos.Scale = scale
		s.pos.LastScale = scale
	}
}

func (s *state) Position() Position {
	return s.pos
}

func (s *state) SetScale(scale float64) {
	if !finite(scale) || scale <= 0 {
		return
	}
	s.pos.LastScale = s.pos.Scale
	s.pos.Scale = scale
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func reflow(sink any) {
	if r, ok := sink.(Reflower); ok {
		r.Reflow()
	}
}
