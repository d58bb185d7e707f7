package scroller

import (
	"testing"
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/frame"
	"github.com/cristianoliveira/glide/internal/layout"
	"github.com/cristianoliveira/glide/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scroller *Scroller
	queue    *frame.Queue
	clock    *frame.ManualClock
	sink     *translate.MemorySink
	events   map[string]int
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	opts := DefaultOptions()
	opts.ScrollX = true
	opts.ScrollY = false
	if mutate != nil {
		mutate(&opts)
	}
	f := &fixture{
		queue:  frame.NewQueue(),
		clock:  frame.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		sink:   translate.NewMemorySink(),
		events: map[string]int{},
	}
	wrapper := layout.NewNode("wrapper", 300, 200)
	content := layout.NewNode("content", 900, 200)
	wrapper.Append(content)
	f.scroller = New(wrapper, content, translate.NewTransform(f.sink), f.queue, f.clock, opts)
	for _, name := range f.scroller.Events().Names() {
		n := name
		f.scroller.Events().On(n, func(...any) bool {
			f.events[n]++
			return false
		})
	}
	return f
}

func (f *fixture) drive() int {
	return frame.Drive(f.queue, f.clock, 16*time.Millisecond, 1000)
}

func TestInitAppliesInitialScrollHook(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Hooks().On(EventBeforeInitialScrollTo, func(args ...any) bool {
		p := args[0].(*animate.Point)
		p.X = -300
		return false
	})

	f.scroller.Init()

	assert.Equal(t, -300.0, f.scroller.X())
	assert.Equal(t, -300.0, f.scroller.BehaviorX().CurrentPos)
	assert.Equal(t, -600.0, f.scroller.BehaviorX().MaxScrollPos)
	assert.False(t, f.scroller.BehaviorY().HasScroll)
	assert.Equal(t, 1, f.events[EventRefresh])
	assert.Equal(t, 1, f.events[EventScrollEnd])
}

func TestAdjustImplementsBounds(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()

	x, y := f.scroller.Adjust(-700.2, 30)
	assert.Equal(t, -600.0, x)
	assert.Equal(t, 0.0, y)
}

func TestDragPastEdgeBouncesBack(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.events = map[string]int{}

	f.scroller.Start()
	f.scroller.Move(30, 0)
	assert.Equal(t, 10.0, f.scroller.X())
	assert.Equal(t, 1, f.events[EventScrollStart])

	f.scroller.End()
	require.True(t, f.scroller.Animater().Pending())
	f.drive()

	assert.Equal(t, 0.0, f.scroller.X())
	assert.Equal(t, 1, f.events[EventScrollEnd])
}

func TestReleaseRunsMomentum(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	var meta MomentumMeta
	f.scroller.Hooks().On(EventMomentum, func(args ...any) bool {
		meta = *args[0].(*MomentumMeta)
		return false
	})

	f.scroller.Start()
	f.clock.Advance(100 * time.Millisecond)
	f.scroller.Move(-100, 0)
	f.scroller.End()

	assert.Equal(t, -620.0, meta.NewX)
	assert.Equal(t, 0.0, meta.NewY)
	assert.Equal(t, 500*time.Millisecond, meta.Time)
	assert.Equal(t, "swipe_bounce", meta.Easing.Name)

	f.drive()
	assert.Equal(t, -600.0, f.scroller.X())
	assert.False(t, f.scroller.Animater().Pending())
}

func TestMomentumListenerRewritesDestination(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.scroller.Hooks().On(EventMomentum, func(args ...any) bool {
		meta := args[0].(*MomentumMeta)
		meta.NewX = -300
		meta.Time = 300 * time.Millisecond
		return false
	})

	f.scroller.Start()
	f.clock.Advance(250 * time.Millisecond)
	f.scroller.Move(-5, 0)
	f.scroller.End()
	f.drive()

	assert.Equal(t, -300.0, f.scroller.X())
}

func TestQuickShortSwipeFlicks(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	flicks, momentums := 0, 0
	f.scroller.Hooks().On(EventFlick, func(...any) bool { flicks++; return false })
	f.scroller.Hooks().On(EventMomentum, func(...any) bool { momentums++; return false })

	f.scroller.Start()
	f.clock.Advance(50 * time.Millisecond)
	f.scroller.Move(-50, 0)
	f.scroller.End()

	assert.Equal(t, 1, flicks)
	assert.Zero(t, momentums)
	assert.False(t, f.scroller.Animater().Pending())
}

func TestTapCancels(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()

	f.scroller.Start()
	f.scroller.End()

	assert.Equal(t, 1, f.events[EventScrollCancel])
	assert.Zero(t, f.events[EventScrollStart])
}

func TestTapAtRestDoesNotEnd(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.events = map[string]int{}
	momentums := 0
	f.scroller.Hooks().On(EventMomentum, func(...any) bool {
		momentums++
		return false
	})

	f.scroller.Start()
	f.scroller.End()
	f.drive()

	assert.Equal(t, 1, f.events[EventScrollCancel])
	assert.Zero(t, f.events[EventScrollEnd])
	assert.Zero(t, momentums)
	assert.False(t, f.scroller.Animater().Pending())
}

func TestTapDuringMotionSettles(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	momentums := 0
	f.scroller.Hooks().On(EventMomentum, func(...any) bool {
		momentums++
		return false
	})

	f.scroller.ScrollTo(-600, 0, time.Second, ease.Bounce)
	frame.Drive(f.queue, f.clock, 16*time.Millisecond, 3)
	f.scroller.Start()
	f.scroller.End()

	assert.Equal(t, 1, f.events[EventScrollCancel])
	assert.Equal(t, 1, momentums)
	assert.False(t, f.scroller.Animater().ForceStopped())
}

func TestStartStopsMotionInFlight(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.events = map[string]int{}

	f.scroller.ScrollTo(-600, 0, time.Second, ease.Bounce)
	frame.Drive(f.queue, f.clock, 16*time.Millisecond, 3)
	f.scroller.Start()

	assert.False(t, f.scroller.Animater().Pending())
	assert.True(t, f.scroller.Animater().ForceStopped())
	assert.Equal(t, 1, f.events[EventScrollEnd])
	assert.Zero(t, f.queue.Pending())
}

func TestMoveProbe(t *testing.T) {
	tests := []struct {
		name  string
		probe animate.Probe
		want  int
	}{
		{name: "none", probe: animate.ProbeNone, want: 0},
		{name: "normal", probe: animate.ProbeNormal, want: 3},
		{name: "throttle", probe: animate.ProbeThrottle, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(o *Options) { o.Probe = tt.probe })
			f.scroller.Init()
			f.events = map[string]int{}

			f.scroller.Start()
			for i := 0; i < 3; i++ {
				f.clock.Advance(200 * time.Millisecond)
				f.scroller.Move(-10, 0)
			}

			assert.Equal(t, tt.want, f.events[EventScroll])
		})
	}
}

func TestWheel(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.MouseWheel = true })
	f.scroller.Init()
	var last Wheel
	f.scroller.Events().On(EventMousewheelEnd, func(args ...any) bool {
		last = args[0].(Wheel)
		return false
	})

	f.scroller.Wheel(-50, 0)
	assert.Equal(t, -50.0, f.scroller.X())
	assert.Equal(t, DirectionPositive, last.DirectionX)

	f.scroller.Events().On(EventMousewheelMove, func(...any) bool { return true })
	f.scroller.Wheel(-50, 0)
	assert.Equal(t, -50.0, f.scroller.X())
	assert.Equal(t, 2, f.events[EventMousewheelEnd])
}

func TestWheelDisabled(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()

	f.scroller.Wheel(-50, 0)

	assert.Equal(t, 0.0, f.scroller.X())
	assert.False(t, f.scroller.Events().Has(EventMousewheelMove))
}

func TestResize(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.events = map[string]int{}

	f.scroller.Resize()
	assert.Equal(t, 1, f.events[EventRefresh])

	f.scroller.Hooks().On(EventResize, func(...any) bool { return true })
	f.scroller.Resize()
	assert.Equal(t, 1, f.events[EventRefresh])
}

func TestRefreshCorrectsPosition(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()
	f.scroller.ScrollTo(-600, 0, 0, ease.Bounce)

	f.scroller.Content().Width = 600
	f.scroller.Refresh()

	assert.Equal(t, -300.0, f.scroller.X())
}

func TestDestroy(t *testing.T) {
	f := newFixture(t, nil)
	f.scroller.Init()

	f.scroller.Destroy()
	f.scroller.Destroy()
	f.scroller.ScrollTo(-100, 0, 0, ease.Bounce)

	assert.Equal(t, 1, f.events[EventDestroy])
	assert.Equal(t, 0.0, f.scroller.X())
	assert.Zero(t, f.scroller.Events().Len(EventScroll))
	assert.Zero(t, f.scroller.Hooks().Len(EventScroll))
}
