package scroller

import (
	"math"
	"time"
)

// Direction signs used across the engine: Positive when the position
// decreases (content travels towards its end), Negative when it increases.
const (
	DirectionNegative = -1
	DirectionDefault  = 0
	DirectionPositive = 1
)

// Physics is the per-axis momentum configuration.
type Physics struct {
	Bounce                bool
	Momentum              bool
	MomentumLimitTime     time.Duration
	MomentumLimitDistance float64
	Deceleration          float64
	SwipeTime             time.Duration
	SwipeBounceTime       time.Duration
}

// Momentum is the result of releasing a gesture on one axis.
type Momentum struct {
	Destination float64
	Duration    time.Duration
}

// Behavior is the state of one scroll axis: extents, bounds, and the
// positions a gesture is measured from. Positions are <= 0: MinScrollPos is
// the start edge (0), MaxScrollPos the end edge (wrapper - content).
type Behavior struct {
	Enabled bool
	Physics Physics

	WrapperSize  float64
	ContentSize  float64
	MinScrollPos float64
	MaxScrollPos float64
	HasScroll    bool

	CurrentPos  float64
	StartPos    float64
	AbsStartPos float64

	Direction       int
	MovingDirection int

	dist float64
}

// NewBehavior creates an axis behavior.
func NewBehavior(enabled bool, physics Physics) *Behavior {
	return &Behavior{Enabled: enabled, Physics: physics}
}

// Refresh recomputes bounds from measured extents.
func (b *Behavior) Refresh(wrapperSize, contentSize float64) {
	b.WrapperSize = wrapperSize
	b.ContentSize = contentSize
	b.MinScrollPos = 0
	b.MaxScrollPos = wrapperSize - contentSize
	b.HasScroll = b.Enabled && b.MaxScrollPos < b.MinScrollPos
	if !b.HasScroll {
		b.MaxScrollPos = b.MinScrollPos
	}
	b.Direction = DirectionDefault
}

// Adjust rounds pos and clamps it into the axis bounds.
func (b *Behavior) Adjust(pos float64) float64 {
	rounded := math.Round(pos)
	if !b.HasScroll || rounded > b.MinScrollPos {
		return b.MinScrollPos
	}
	if rounded < b.MaxScrollPos {
		return b.MaxScrollPos
	}
	return rounded
}

// InBounds reports whether pos lies inside the axis range.
func (b *Behavior) InBounds(pos float64) bool {
	return pos <= b.MinScrollPos && pos >= b.MaxScrollPos
}

// Start resets gesture tracking at the current position.
func (b *Behavior) Start() {
	b.dist = 0
	b.Direction = DirectionDefault
	b.MovingDirection = DirectionDefault
	b.StartPos = b.CurrentPos
	b.AbsStartPos = b.CurrentPos
}

// ResetStartPos restarts momentum measurement from the current position.
func (b *Behavior) ResetStartPos() {
	b.StartPos = b.CurrentPos
}

// Move returns the position a drag of delta leads to, with resistance past
// the edges when bouncing is on and a hard stop otherwise.
func (b *Behavior) Move(delta float64) float64 {
	if !b.HasScroll {
		delta = 0
	}
	b.dist += delta
	b.MovingDirection = directionOf(delta)
	next := b.CurrentPos + delta
	if next > b.MinScrollPos || next < b.MaxScrollPos {
		if b.Physics.Bounce {
			return b.CurrentPos + delta/3
		}
		if next > b.MinScrollPos {
			return b.MinScrollPos
		}
		return b.MaxScrollPos
	}
	return next
}

// Distance returns the absolute distance dragged since Start.
func (b *Behavior) Distance() float64 {
	return math.Abs(b.dist)
}

// UpdateDirection derives Direction from travel since the gesture began.
func (b *Behavior) UpdateDirection() {
	b.Direction = directionOf(math.Round(b.CurrentPos) - b.AbsStartPos)
}

// End computes the momentum of a release after a gesture of duration.
// Without momentum the destination is the current position.
func (b *Behavior) End(duration time.Duration) Momentum {
	m := Momentum{Destination: b.CurrentPos}
	absDist := math.Abs(b.CurrentPos - b.StartPos)
	p := b.Physics
	if !p.Momentum || duration >= p.MomentumLimitTime || absDist <= p.MomentumLimitDistance || !b.HasScroll {
		return m
	}
	wrapperSize := 0.0
	if p.Bounce {
		wrapperSize = b.WrapperSize
	}
	return b.momentum(b.CurrentPos, b.StartPos, duration, b.MaxScrollPos, b.MinScrollPos, wrapperSize)
}

const momentumRate = 15

func (b *Behavior) momentum(current, start float64, duration time.Duration, lower, upper, wrapperSize float64) Momentum {
	ms := float64(duration) / float64(time.Millisecond)
	if ms <= 0 {
		ms = 1
	}
	distance := current - start
	speed := math.Abs(distance) / ms
	sign := 1.0
	if distance < 0 {
		sign = -1
	}
	m := Momentum{
		Destination: current + speed*speed/b.Physics.Deceleration*sign,
		Duration:    b.Physics.SwipeTime,
	}
	switch {
	case m.Destination < lower:
		if wrapperSize > 0 {
			m.Destination = math.Max(lower-wrapperSize/4, lower-wrapperSize/momentumRate*speed)
		} else {
			m.Destination = lower
		}
		m.Duration = b.Physics.SwipeBounceTime
	case m.Destination > upper:
		if wrapperSize > 0 {
			m.Destination = math.Min(upper+wrapperSize/4, upper+wrapperSize/momentumRate*speed)
		} else {
			m.Destination = upper
		}
		m.Duration = b.Physics.SwipeBounceTime
	}
	m.Destination = math.Round(m.Destination)
	return m
}

func directionOf(delta float64) int {
	switch {
	case delta > 0:
		return DirectionNegative
	case delta < 0:
		return DirectionPositive
	default:
		return DirectionDefault
	}
}
