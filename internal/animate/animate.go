// Package animate drives a surface's position between two points over time,
// one animation frame at a time.
package animate

import (
	"time"

	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/frame"
	"github.com/cristianoliveira/glide/internal/hooks"
	"github.com/cristianoliveira/glide/internal/translate"
)

// Channels published on Animater.Hooks.
const (
	EventScroll    = "scroll"
	EventScrollEnd = "scrollEnd"
)

// Point is the payload of scroll and scrollEnd.
type Point struct {
	X float64
	Y float64
}

// Scheduler requests animation-frame callbacks.
type Scheduler interface {
	Schedule(fn func()) frame.Handle
	Cancel(h frame.Handle)
}

// Clock is the monotonic timestamp source durations are measured against.
type Clock interface {
	Now() time.Time
}

// Bounds decides scroll-range membership. Adjust returns the nearest
// permitted position; returning x and y unchanged means in range.
type Bounds interface {
	Adjust(x, y float64) (float64, float64)
}

// State of the stepper.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// task is one in-flight motion. active is the only flag the scheduled step
// reads to decide whether to keep going.
type task struct {
	startX, startY, startScale float64
	destX, destY, destScale    float64
	startTime                  time.Time
	duration                   time.Duration
	easing                     ease.Func
	active                     bool
}

func (t *task) destTime() time.Time {
	return t.startTime.Add(t.duration)
}

// Animater is the motion stepper of one surface. At most one task is live;
// starting a motion or stopping cancels the pending frame first.
type Animater struct {
	translater translate.Translator
	scheduler  Scheduler
	clock      Clock
	bounds     Bounds
	hooks      *hooks.Registry
	opts       Options

	state        State
	task         *task
	timer        frame.Handle
	forceStopped bool
}

// New creates an idle Animater committing through translater.
func New(translater translate.Translator, scheduler Scheduler, clock Clock, opts Options) *Animater {
	return &Animater{
		translater: translater,
		scheduler:  scheduler,
		clock:      clock,
		hooks:      hooks.New(EventScroll, EventScrollEnd),
		opts:       opts.resolve(),
	}
}

// Hooks returns the registry scroll and scrollEnd are published on.
func (a *Animater) Hooks() *hooks.Registry { return a.hooks }

// Translater returns the translator motions commit through.
func (a *Animater) Translater() translate.Translator { return a.translater }

// SetBounds installs the range collaborator used by ResetPosition.
func (a *Animater) SetBounds(b Bounds) { a.bounds = b }

// SetOptions re-resolves and applies options; the live task keeps its
// captured duration and easing.
func (a *Animater) SetOptions(opts Options) { a.opts = opts.resolve() }

// Options returns the resolved options.
func (a *Animater) Options() Options { return a.opts }

// State reports whether a motion is in flight.
func (a *Animater) State() State { return a.state }

// Pending reports whether a motion is in flight.
func (a *Animater) Pending() bool { return a.state == Animating }

// ForceStopped reports whether the last motion ended through Stop rather
// than by completing.
func (a *Animater) ForceStopped() bool { return a.forceStopped }

// SetForceStopped is used by the gesture layer once it has consumed the flag.
func (a *Animater) SetForceStopped(v bool) { a.forceStopped = v }

// ScrollTo moves to (x, y). A zero or negative duration commits immediately;
// otherwise the motion is stepped frame by frame using easing.
func (a *Animater) ScrollTo(x, y float64, duration time.Duration, easing ease.Easing) {
	easing = easing.Or(ease.Bounce)
	if duration <= 0 {
		a.cancel()
		a.translater.UpdatePosition(x, y, a.translater.Position().Scale)
		a.hooks.Trigger(EventScroll, Point{X: x, Y: y})
		if a.state == Animating {
			return
		}
		// Settle the commit before the bounds check reads it.
		a.translater.Reflow()
		if !a.ResetPosition(a.opts.BounceTime, ease.Bounce) {
			pos := a.translater.Position()
			a.hooks.Trigger(EventScrollEnd, Point{X: pos.X, Y: pos.Y})
		}
		return
	}
	a.animate(x, y, duration, easing.Fn)
}

func (a *Animater) animate(destX, destY float64, duration time.Duration, easing ease.Func) {
	pos := a.translater.Position()
	t := &task{
		startX:     pos.X,
		startY:     pos.Y,
		startScale: pos.LastScale,
		destX:      destX,
		destY:      destY,
		destScale:  pos.Scale,
		startTime:  a.clock.Now(),
		duration:   duration,
		easing:     easing,
		active:     true,
	}
	a.cancel()
	a.task = t
	a.state = Animating
	a.step(t)
}

func (a *Animater) step(t *task) {
	if !t.active {
		return
	}
	a.timer = 0
	now := a.clock.Now()

	if !now.Before(t.destTime()) {
		t.active = false
		a.task = nil
		a.state = Idle
		a.translater.UpdatePosition(t.destX, t.destY, t.destScale)
		a.emit(EventScroll)
		if a.state == Animating {
			return
		}
		if !a.ResetPosition(a.opts.BounceTime, ease.Bounce) {
			a.emit(EventScrollEnd)
		}
		return
	}

	progress := t.easing(float64(now.Sub(t.startTime)) / float64(t.duration))
	a.translater.UpdatePosition(
		(t.destX-t.startX)*progress+t.startX,
		(t.destY-t.startY)*progress+t.startY,
		(t.destScale-t.startScale)*progress+t.startScale,
	)
	if t.active {
		a.timer = a.scheduler.Schedule(func() { a.step(t) })
	}
	if a.opts.Probe == ProbeRealtime {
		a.emit(EventScroll)
	}
}

// Stop halts an in-flight motion, reports scrollEnd at (x, y) and marks the
// motion as force-stopped. It does nothing when idle.
func (a *Animater) Stop(x, y float64) {
	if a.state != Animating {
		return
	}
	a.cancel()
	a.hooks.Trigger(EventScrollEnd, Point{X: x, Y: y})
	a.forceStopped = true
}

// ResetPosition chains a corrective motion when the settled position lies
// outside the permitted range and reports whether it did.
func (a *Animater) ResetPosition(duration time.Duration, easing ease.Easing) bool {
	if a.bounds == nil {
		return false
	}
	pos := a.translater.Position()
	x, y := a.bounds.Adjust(pos.X, pos.Y)
	if x == pos.X && y == pos.Y {
		return false
	}
	a.ScrollTo(x, y, duration, easing)
	return true
}

// Destroy cancels any motion and clears every channel.
func (a *Animater) Destroy() {
	a.cancel()
	a.hooks.Destroy()
}

func (a *Animater) cancel() {
	if a.task != nil {
		a.task.active = false
		a.task = nil
	}
	if a.timer != 0 {
		a.scheduler.Cancel(a.timer)
		a.timer = 0
	}
	a.state = Idle
}

func (a *Animater) emit(name string) {
	pos := a.translater.ComputedPosition()
	a.hooks.Trigger(name, Point{X: pos.X, Y: pos.Y})
}
