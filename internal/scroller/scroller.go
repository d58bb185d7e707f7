// Package scroller combines a translator, an animater and two axis behaviors
// into a scrollable surface that answers gestures, wheel input and
// programmatic motion.
package scroller

import (
	"math"
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/hooks"
	"github.com/cristianoliveira/glide/internal/layout"
	"github.com/cristianoliveira/glide/internal/logging"
	"github.com/cristianoliveira/glide/internal/translate"
)

// Internal channels on Scroller.Hooks. Plugins attach here.
const (
	EventBeforeStart           = "beforeStart"
	EventScrollStart           = "scrollStart"
	EventScroll                = animate.EventScroll
	EventEnd                   = "end"
	EventScrollEnd             = animate.EventScrollEnd
	EventRefresh               = "refresh"
	EventMomentum              = "momentum"
	EventFlick                 = "flick"
	EventResize                = "resize"
	EventBeforeInitialScrollTo = "beforeInitialScrollTo"
	EventDestroy               = "destroy"
)

// Public channels on Scroller.Events.
const (
	EventScrollCancel    = "scrollCancel"
	EventMousewheelStart = "mousewheelStart"
	EventMousewheelMove  = "mousewheelMove"
	EventMousewheelEnd   = "mousewheelEnd"
)

// MomentumMeta is passed by pointer to momentum listeners, which may rewrite
// the destination, duration and easing of the release.
type MomentumMeta struct {
	NewX   float64
	NewY   float64
	Time   time.Duration
	Easing ease.Easing
}

// Wheel is the payload of the mousewheel channels.
type Wheel struct {
	X          float64
	Y          float64
	DirectionX int
	DirectionY int
}

// Scroller is a scrollable surface: a wrapper viewport over a content node.
type Scroller struct {
	wrapper *layout.Node
	content *layout.Node
	opts    Options

	translater translate.Translator
	animater   *animate.Animater
	clock      animate.Clock
	behaviorX  *Behavior
	behaviorY  *Behavior

	hooks  *hooks.Registry
	events *hooks.Registry
	unbind []func()

	startTime   time.Time
	lastProbe   time.Time
	moved       bool
	initialized bool
	destroyed   bool
}

// New creates a Scroller. Call Init once plugins are attached.
func New(wrapper, content *layout.Node, translater translate.Translator, scheduler animate.Scheduler, clock animate.Clock, opts Options) *Scroller {
	opts = opts.resolve()
	s := &Scroller{
		wrapper:   wrapper,
		content:   content,
		opts:      opts,
		clock:     clock,
		behaviorX: NewBehavior(opts.ScrollX, opts.physics()),
		behaviorY: NewBehavior(opts.ScrollY, opts.physics()),
		hooks: hooks.New(
			EventBeforeStart, EventScrollStart, EventScroll, EventEnd, EventScrollEnd,
			EventRefresh, EventMomentum, EventFlick, EventResize,
			EventBeforeInitialScrollTo, EventDestroy,
		),
		events: hooks.New(
			EventScrollStart, EventScroll, EventScrollEnd, EventScrollCancel,
			EventRefresh, EventDestroy,
		),
	}
	if opts.MouseWheel {
		s.events.RegisterType(EventMousewheelStart, EventMousewheelMove, EventMousewheelEnd)
	}
	s.translater = &tracker{Translator: translater, s: s}
	s.animater = animate.New(s.translater, scheduler, clock, opts.animater())
	s.animater.SetBounds(s)
	s.unbind = append(s.unbind,
		hooks.Bubble(s.animater.Hooks(), s.hooks, hooks.Same(EventScroll, EventScrollEnd)...),
		hooks.Bubble(s.hooks, s.events, hooks.Same(EventScrollStart, EventScroll, EventScrollEnd, EventRefresh, EventDestroy)...),
	)
	return s
}

// Init measures the surface and commits the initial position. Listeners on
// beforeInitialScrollTo receive a *animate.Point they may rewrite.
func (s *Scroller) Init() {
	s.Refresh()
	start := &animate.Point{X: s.opts.StartX, Y: s.opts.StartY}
	s.hooks.Trigger(EventBeforeInitialScrollTo, start)
	s.animater.ScrollTo(start.X, start.Y, 0, ease.Bounce)
	s.initialized = true
}

func (s *Scroller) Hooks() *hooks.Registry { return s.hooks }

func (s *Scroller) Events() *hooks.Registry { return s.events }

func (s *Scroller) Wrapper() *layout.Node { return s.wrapper }

func (s *Scroller) Content() *layout.Node { return s.content }

func (s *Scroller) BehaviorX() *Behavior { return s.behaviorX }

func (s *Scroller) BehaviorY() *Behavior { return s.behaviorY }

func (s *Scroller) Animater() *animate.Animater { return s.animater }

func (s *Scroller) Translater() translate.Translator { return s.translater }

func (s *Scroller) Options() Options { return s.opts }

// X and Y return the logical position.
func (s *Scroller) X() float64 { return s.translater.Position().X }

func (s *Scroller) Y() float64 { return s.translater.Position().Y }

// SetOptions replaces the options and re-measures.
func (s *Scroller) SetOptions(opts Options) {
	s.opts = opts.resolve()
	s.behaviorX.Enabled, s.behaviorX.Physics = s.opts.ScrollX, s.opts.physics()
	s.behaviorY.Enabled, s.behaviorY.Physics = s.opts.ScrollY, s.opts.physics()
	s.animater.SetOptions(s.opts.animater())
	if s.opts.MouseWheel {
		s.events.RegisterType(EventMousewheelStart, EventMousewheelMove, EventMousewheelEnd)
	}
	s.Refresh()
}

// Adjust clamps (x, y) into the scroll range, implementing animate.Bounds.
func (s *Scroller) Adjust(x, y float64) (float64, float64) {
	return s.behaviorX.Adjust(x), s.behaviorY.Adjust(y)
}

// ScrollTo moves to (x, y) over duration. A zero easing uses bounce.
func (s *Scroller) ScrollTo(x, y float64, duration time.Duration, easing ease.Easing) {
	if s.destroyed {
		return
	}
	s.animater.ScrollTo(x, y, duration, easing)
}

// ScrollBy moves relative to the current position.
func (s *Scroller) ScrollBy(dx, dy float64, duration time.Duration, easing ease.Easing) {
	pos := s.translater.Position()
	s.ScrollTo(pos.X+dx, pos.Y+dy, duration, easing)
}

// Stop halts a running motion at the rendered position.
func (s *Scroller) Stop() {
	if !s.animater.Pending() {
		return
	}
	pos := s.translater.ComputedPosition()
	s.animater.Stop(pos.X, pos.Y)
}

// ResetPosition corrects an out-of-range position and reports whether a
// correction started.
func (s *Scroller) ResetPosition(duration time.Duration, easing ease.Easing) bool {
	return s.animater.ResetPosition(duration, easing)
}

// Refresh re-measures wrapper and content and recomputes both axis ranges.
func (s *Scroller) Refresh() {
	if s.destroyed {
		return
	}
	s.behaviorX.Refresh(s.wrapper.MeasuredWidth(), s.content.MeasuredWidth())
	s.behaviorY.Refresh(s.wrapper.MeasuredHeight(), s.content.MeasuredHeight())
	logging.Debug("scroller refreshed",
		"min_x", s.behaviorX.MinScrollPos, "max_x", s.behaviorX.MaxScrollPos,
		"min_y", s.behaviorY.MinScrollPos, "max_y", s.behaviorY.MaxScrollPos,
	)
	s.hooks.Trigger(EventRefresh, s.content)
	if s.initialized {
		s.animater.ResetPosition(0, ease.Bounce)
	}
}

// Resize reports a wrapper size change. A resize listener that handles it
// takes over re-measuring; otherwise the surface refreshes itself.
func (s *Scroller) Resize() {
	if s.destroyed {
		return
	}
	if s.hooks.Trigger(EventResize) {
		return
	}
	s.Refresh()
}

// Start begins a gesture, halting any motion in flight.
func (s *Scroller) Start() {
	if s.destroyed {
		return
	}
	s.Stop()
	s.behaviorX.Start()
	s.behaviorY.Start()
	s.startTime = s.clock.Now()
	s.lastProbe = s.startTime
	s.moved = false
	s.hooks.Trigger(EventBeforeStart)
}

// Move drags the content by (dx, dy).
func (s *Scroller) Move(dx, dy float64) {
	if s.destroyed {
		return
	}
	if !s.moved {
		s.moved = true
		s.hooks.Trigger(EventScrollStart)
	}
	x := s.behaviorX.Move(dx)
	y := s.behaviorY.Move(dy)
	s.translater.UpdatePosition(x, y, s.translater.Position().Scale)
	s.behaviorX.UpdateDirection()
	s.behaviorY.UpdateDirection()

	now := s.clock.Now()
	if now.Sub(s.startTime) > s.opts.MomentumLimitTime {
		s.startTime = now
		s.behaviorX.ResetStartPos()
		s.behaviorY.ResetStartPos()
	}
	switch s.opts.Probe {
	case animate.ProbeThrottle:
		if now.Sub(s.lastProbe) > s.opts.MomentumLimitTime {
			s.lastProbe = now
			s.hooks.Trigger(EventScroll, animate.Point{X: x, Y: y})
		}
	case animate.ProbeNormal, animate.ProbeRealtime:
		s.hooks.Trigger(EventScroll, animate.Point{X: x, Y: y})
	}
}

// End releases a gesture: out-of-range positions bounce back, short quick
// swipes raise flick, anything else continues with momentum. A tap at rest
// only reports scrollCancel.
func (s *Scroller) End() {
	if s.destroyed {
		return
	}
	pos := s.translater.Position()
	if s.hooks.Trigger(EventEnd, animate.Point{X: pos.X, Y: pos.Y}) {
		return
	}
	if !s.moved {
		interrupted := s.animater.ForceStopped()
		s.animater.SetForceStopped(false)
		s.events.Trigger(EventScrollCancel)
		// A tap that halted a motion still has to settle what it stopped.
		if !interrupted {
			return
		}
	}
	if s.ResetPosition(s.opts.BounceTime, ease.Bounce) {
		s.animater.SetForceStopped(false)
		return
	}
	s.animater.SetForceStopped(false)

	duration := s.clock.Now().Sub(s.startTime)
	deltaX := math.Abs(pos.X - s.behaviorX.StartPos)
	deltaY := math.Abs(pos.Y - s.behaviorY.StartPos)
	if s.checkFlick(duration, deltaX, deltaY) {
		s.hooks.Trigger(EventFlick)
		return
	}

	mx := s.behaviorX.End(duration)
	my := s.behaviorY.End(duration)
	meta := &MomentumMeta{
		NewX:   mx.Destination,
		NewY:   my.Destination,
		Time:   max(mx.Duration, my.Duration),
		Easing: ease.Swipe,
	}
	if !s.behaviorX.InBounds(meta.NewX) || !s.behaviorY.InBounds(meta.NewY) {
		meta.Easing = ease.SwipeBounce
	}
	s.hooks.Trigger(EventMomentum, meta, s)
	if meta.NewX != pos.X || meta.NewY != pos.Y {
		logging.Debug("scroller momentum", "x", meta.NewX, "y", meta.NewY, "time", meta.Time, "easing", meta.Easing.Name)
		s.ScrollTo(meta.NewX, meta.NewY, meta.Time, meta.Easing)
		return
	}
	s.hooks.Trigger(EventScrollEnd, animate.Point{X: pos.X, Y: pos.Y})
}

func (s *Scroller) checkFlick(duration time.Duration, deltaX, deltaY float64) bool {
	if s.hooks.Len(EventFlick) == 0 {
		return false
	}
	limit := s.opts.FlickLimitDistance
	return duration < s.opts.FlickLimitTime &&
		deltaX < limit && deltaY < limit &&
		(deltaX > 1 || deltaY > 1)
}

// Wheel handles one wheel step of (dx, dy). Without a mousewheelMove
// listener that claims it, the content scrolls by the delta, clamped.
func (s *Scroller) Wheel(dx, dy float64) {
	if s.destroyed || !s.opts.MouseWheel {
		return
	}
	w := Wheel{X: dx, Y: dy, DirectionX: directionOf(dx), DirectionY: directionOf(dy)}
	s.events.Trigger(EventMousewheelStart, w)
	if !s.events.Trigger(EventMousewheelMove, w) {
		pos := s.translater.Position()
		x, y := s.Adjust(pos.X+dx, pos.Y+dy)
		s.ScrollTo(x, y, 0, ease.Bounce)
	}
	s.events.Trigger(EventMousewheelEnd, w)
}

// Destroy stops motion, announces destroy and drops every listener.
func (s *Scroller) Destroy() {
	if s.destroyed {
		return
	}
	s.hooks.Trigger(EventDestroy)
	s.animater.Destroy()
	for _, off := range s.unbind {
		off()
	}
	s.unbind = nil
	s.hooks.Destroy()
	s.events.Destroy()
	s.destroyed = true
}

// tracker keeps the axis behaviors in step with every committed position.
type tracker struct {
	translate.Translator
	s *Scroller
}

func (t *tracker) UpdatePosition(x, y, scale float64) {
	t.Translator.UpdatePosition(x, y, scale)
	pos := t.Translator.Position()
	t.s.behaviorX.CurrentPos = pos.X
	t.s.behaviorY.CurrentPos = pos.Y
}
