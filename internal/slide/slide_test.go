package slide

import (
	"fmt"
	"testing"
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/hooks"
	"github.com/cristianoliveira/glide/internal/layout"
	"github.com/cristianoliveira/glide/internal/scroller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scrollCall struct {
	X, Y     float64
	Duration time.Duration
	Easing   string
}

// fakeSurface declares the same channels as a scroller and records every
// ScrollTo. A ScrollTo lands immediately on the requested position.
type fakeSurface struct {
	hooks     *hooks.Registry
	events    *hooks.Registry
	wrapper   *layout.Node
	content   *layout.Node
	bx, by    *scroller.Behavior
	opts      scroller.Options
	scrolls   []scrollCall
	refreshes int
}

type surfaceConfig struct {
	pages    int
	vertical bool
	wheel    bool
}

func newFakeSurface(cfg surfaceConfig) *fakeSurface {
	opts := scroller.DefaultOptions()
	opts.ScrollX, opts.ScrollY = !cfg.vertical, cfg.vertical
	opts.MouseWheel = cfg.wheel
	f := &fakeSurface{
		hooks: hooks.New(
			scroller.EventBeforeStart, scroller.EventScrollStart, scroller.EventScroll,
			scroller.EventEnd, scroller.EventScrollEnd, scroller.EventRefresh,
			scroller.EventMomentum, scroller.EventFlick, scroller.EventResize,
			scroller.EventBeforeInitialScrollTo, scroller.EventDestroy,
		),
		events:  hooks.New(scroller.EventScrollStart, scroller.EventScroll, scroller.EventScrollEnd, scroller.EventRefresh, scroller.EventDestroy),
		wrapper: layout.NewNode("wrapper", 300, 300),
		content: layout.NewNode("content", 0, 0),
		bx:      scroller.NewBehavior(opts.ScrollX, scroller.Physics{}),
		by:      scroller.NewBehavior(opts.ScrollY, scroller.Physics{}),
		opts:    opts,
	}
	if cfg.wheel {
		f.events.RegisterType(scroller.EventMousewheelMove, scroller.EventMousewheelEnd)
	}
	for i := 0; i < cfg.pages; i++ {
		f.content.Append(layout.NewNode(fmt.Sprintf("page-%d", i), 300, 300))
	}
	f.wrapper.Append(f.content)
	return f
}

func (f *fakeSurface) Hooks() *hooks.Registry { return f.hooks }
func (f *fakeSurface) Events() *hooks.Registry { return f.events }
func (f *fakeSurface) Wrapper() *layout.Node { return f.wrapper }
func (f *fakeSurface) Content() *layout.Node { return f.content }
func (f *fakeSurface) BehaviorX() *scroller.Behavior { return f.bx }
func (f *fakeSurface) BehaviorY() *scroller.Behavior { return f.by }
func (f *fakeSurface) Options() scroller.Options { return f.opts }

func (f *fakeSurface) ScrollTo(x, y float64, d time.Duration, e ease.Easing) {
	f.scrolls = append(f.scrolls, scrollCall{X: x, Y: y, Duration: d, Easing: e.Name})
	f.bx.CurrentPos, f.by.CurrentPos = x, y
}

func (f *fakeSurface) Refresh() {
	f.refreshes++
	f.bx.Refresh(f.wrapper.MeasuredWidth(), f.content.MeasuredWidth())
	f.by.Refresh(f.wrapper.MeasuredHeight(), f.content.MeasuredHeight())
	f.hooks.Trigger(scroller.EventRefresh, f.content)
}

// start runs the surface's init sequence: refresh, then the initial position.
func (f *fakeSurface) start() {
	f.Refresh()
	point := &animate.Point{}
	f.hooks.Trigger(scroller.EventBeforeInitialScrollTo, point)
	f.bx.CurrentPos, f.by.CurrentPos = point.X, point.Y
	f.refreshes = 0
}

func (f *fakeSurface) willChange() *[]Index {
	var got []Index
	f.events.On(EventSlideWillChange, func(args ...any) bool {
		got = append(got, args[0].(Index))
		return false
	})
	return &got
}

func withLoop(loop bool) Options {
	o := DefaultOptions()
	o.Loop = loop
	return o
}

func TestNewLoopClonesEdgesAndDestroyRestores(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))

	assert.Equal(t, 4, f.content.Len())
	assert.True(t, f.content.Child(0).Clone)
	assert.True(t, f.content.Child(3).Clone)
	assert.Equal(t, 1200.0, f.content.Width)
	assert.Equal(t, 2, s.PageCount())

	s.Destroy()

	assert.Equal(t, 2, f.content.Len())
	assert.Equal(t, 0.0, f.content.Width)
	for _, name := range []string{scroller.EventRefresh, scroller.EventMomentum, scroller.EventFlick, scroller.EventDestroy, scroller.EventResize} {
		assert.Zero(t, f.hooks.Len(name), name)
	}
	assert.Zero(t, f.events.Len(scroller.EventScrollEnd))
	assert.False(t, f.events.Trigger(scroller.EventScrollEnd))
}

func TestNewWithoutLoop(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(false))
	defer s.Destroy()

	assert.Equal(t, 2, f.content.Len())
	assert.Equal(t, 600.0, f.content.Width)
}

func TestSinglePageForcesLoopOff(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 1})
	s := New(f, withLoop(true))
	defer s.Destroy()

	assert.False(t, s.Options().Loop)
	assert.Equal(t, 1, f.content.Len())
	assert.Equal(t, 300.0, f.content.Width)
}

func TestSinglePageForcesLoopOffVertical(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 1, vertical: true})
	f.content.Child(0).Height = 120
	s := New(f, withLoop(true))
	defer s.Destroy()

	assert.False(t, s.Options().Loop)
	assert.Equal(t, 1, f.content.Len())
	assert.Equal(t, 300.0, f.content.Child(0).Height)
	assert.Equal(t, layout.Vertical, f.content.Flow)
}

func TestInitialScrollLandsOnStartPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()

	f.start()

	assert.Equal(t, -300.0, f.bx.CurrentPos)
	assert.Equal(t, Index{}, s.CurrentPage().Index)

	g := newFakeSurface(surfaceConfig{pages: 3})
	opts := withLoop(true)
	opts.StartPageX = 2
	s2 := New(g, opts)
	defer s2.Destroy()

	g.start()

	assert.Equal(t, -900.0, g.bx.CurrentPos)
	assert.Equal(t, Index{PageX: 2}, s2.CurrentPage().Index)
}

func TestNextMovesOnePage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	f.bx.CurrentPos = 0

	s.Next()

	require.Len(t, f.scrolls, 1)
	assert.Equal(t, scrollCall{X: -600, Y: 0, Duration: 600 * time.Millisecond, Easing: "bounce"}, f.scrolls[0])
	assert.Equal(t, 2, s.Pages().Current().PageX)
}

func TestPrevUsesConfiguredSpeed(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	opts := withLoop(true)
	opts.Speed = 100 * time.Millisecond
	s := New(f, opts)
	defer s.Destroy()
	f.start()

	s.Prev()

	require.Len(t, f.scrolls, 1)
	assert.Equal(t, scrollCall{X: 0, Y: 0, Duration: 100 * time.Millisecond, Easing: "bounce"}, f.scrolls[0])
}

func TestTravelTimeIsBounded(t *testing.T) {
	s := &Slide{}
	assert.Equal(t, 300*time.Millisecond, s.travelTime(-40, 0))
	assert.Equal(t, 640*time.Millisecond, s.travelTime(0, 640))
	assert.Equal(t, time.Second, s.travelTime(-4000, 0))
}

func TestGoToPageMapsRealPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	f.bx.CurrentPos = 0

	s.GoToPage(1, 1)

	require.Len(t, f.scrolls, 1)
	assert.Equal(t, scrollCall{X: -600, Y: 0, Duration: 600 * time.Millisecond, Easing: "bounce"}, f.scrolls[0])
	assert.Equal(t, Index{PageX: 1}, s.CurrentPage().Index)
}

func TestGoToPageAtRestDoesNothing(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	f.bx.CurrentPos = -600

	s.GoToPage(1, 1)

	assert.Empty(t, f.scrolls)
}

func TestCurrentPageHidesClones(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()

	s.Pages().ChangeCurrentPage(s.Pages().Change2SafePage(0, 0))
	assert.Equal(t, Index{PageX: 1}, s.CurrentPage().Index)
	s.Pages().ChangeCurrentPage(s.Pages().Change2SafePage(3, 0))
	assert.Equal(t, Index{PageX: 0}, s.CurrentPage().Index)
}

func TestMomentumBelowThresholdKeepsCurrentPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	f.bx.AbsStartPos = -90

	meta := &scroller.MomentumMeta{NewX: -100, Time: 600 * time.Millisecond, Easing: ease.Swipe}
	f.hooks.Trigger(scroller.EventMomentum, meta)

	assert.Equal(t, -300.0, meta.NewX)
	assert.Equal(t, 0.0, meta.NewY)
	assert.Equal(t, 300*time.Millisecond, meta.Time)
	assert.Equal(t, "bounce", meta.Easing.Name)
	assert.Equal(t, 1, s.Pages().Current().PageX)
}

func TestMomentumBeyondThresholdResolvesNearestPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	opts := withLoop(true)
	opts.Threshold = 50
	s := New(f, opts)
	defer s.Destroy()
	f.start()
	changes := f.willChange()
	f.bx.AbsStartPos = -90
	f.bx.Direction = scroller.DirectionNegative

	meta := &scroller.MomentumMeta{NewX: -160, NewY: -20, Time: 800 * time.Millisecond}
	f.hooks.Trigger(scroller.EventMomentum, meta)

	assert.Equal(t, 0.0, meta.NewX)
	assert.Equal(t, 0.0, meta.NewY)
	assert.Equal(t, 300*time.Millisecond, meta.Time)
	assert.Equal(t, 0, s.Pages().Current().PageX)
	assert.Equal(t, []Index{{PageX: 1}}, *changes)
}

func TestScrollEndWithoutLoopDoesNotScroll(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(false))
	defer s.Destroy()
	f.start()

	assert.False(t, f.events.Trigger(scroller.EventScrollEnd))
	assert.Empty(t, f.scrolls)
}

func TestScrollEndRecentresLoopClone(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	changes := f.willChange()
	s.Pages().ChangeCurrentPage(s.Pages().Change2SafePage(0, 0))
	f.bx.CurrentPos = 0

	assert.True(t, f.events.Trigger(scroller.EventScrollEnd))
	require.Len(t, f.scrolls, 1)
	assert.Equal(t, scrollCall{X: -600, Y: 0, Duration: 0, Easing: "bounce"}, f.scrolls[0])
	assert.Equal(t, 2, s.Pages().Current().PageX)

	assert.False(t, f.events.Trigger(scroller.EventScrollEnd))
	assert.Len(t, f.scrolls, 1)
	assert.Equal(t, []Index{{PageX: 1}}, *changes)
}

func TestFlickAdvancesInGestureDirection(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(false))
	defer s.Destroy()
	f.start()
	f.bx.CurrentPos, f.bx.StartPos = -600, 0
	f.bx.Direction, f.by.Direction = 1, 1

	f.hooks.Trigger(scroller.EventFlick)

	require.Len(t, f.scrolls, 1)
	assert.Equal(t, scrollCall{X: -300, Y: 0, Duration: 600 * time.Millisecond, Easing: "bounce"}, f.scrolls[0])
}

func TestDragBeyondThresholdAnnouncesPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	changes := f.willChange()
	f.bx.AbsStartPos = -200

	f.hooks.Trigger(scroller.EventScroll, animate.Point{X: -50})
	assert.Empty(t, *changes, "not dragging")

	f.hooks.Trigger(scroller.EventBeforeStart)
	f.hooks.Trigger(scroller.EventScroll, animate.Point{X: -190})
	assert.Empty(t, *changes, "below threshold")
	f.hooks.Trigger(scroller.EventScroll, animate.Point{X: -50})
	f.hooks.Trigger(scroller.EventScroll, animate.Point{X: -40})
	assert.Equal(t, []Index{{PageX: 1}}, *changes)

	f.hooks.Trigger(scroller.EventEnd)
	f.hooks.Trigger(scroller.EventScroll, animate.Point{X: -600})
	assert.Len(t, *changes, 1)
}

func TestNavigationAnnouncesPageOnce(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	changes := f.willChange()

	s.Next()
	f.events.Trigger(scroller.EventScrollEnd)

	assert.Equal(t, []Index{{PageX: 1}}, *changes)
}

func TestMousewheel(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 3, wheel: true})
	s := New(f, withLoop(false))
	defer s.Destroy()
	f.start()

	assert.True(t, f.events.Trigger(scroller.EventMousewheelMove, scroller.Wheel{}))

	f.events.Trigger(scroller.EventMousewheelEnd, scroller.Wheel{DirectionX: 1})
	assert.Equal(t, 1, s.CurrentPage().PageX)
	f.events.Trigger(scroller.EventMousewheelEnd, scroller.Wheel{DirectionY: 1})
	assert.Equal(t, 2, s.CurrentPage().PageX)
	f.events.Trigger(scroller.EventMousewheelEnd, scroller.Wheel{DirectionX: -1})
	assert.Equal(t, 1, s.CurrentPage().PageX)
	f.events.Trigger(scroller.EventMousewheelEnd, scroller.Wheel{DirectionY: -1})
	assert.Equal(t, 0, s.CurrentPage().PageX)
	assert.Len(t, f.scrolls, 4)
}

func TestMousewheelNotDeclared(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(false))
	defer s.Destroy()

	assert.False(t, f.events.Has(scroller.EventMousewheelMove))
}

func TestResizeRecomputesWidth(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	require.Equal(t, 1200.0, f.content.Width)

	for _, c := range f.content.Children() {
		c.Width = 600
	}
	f.wrapper.Width = 600
	assert.True(t, f.hooks.Trigger(scroller.EventResize))

	assert.Equal(t, 2400.0, f.content.Width)
	assert.Equal(t, 1, f.refreshes)
	assert.Equal(t, -1800.0, f.bx.MaxScrollPos)
	assert.Equal(t, -600.0, f.bx.CurrentPos, "stays on its page")

	f.hooks.Trigger(scroller.EventResize)
	assert.Equal(t, 1, f.refreshes, "unchanged extents")
}

func TestResizeRecomputesHeight(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2, vertical: true})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	require.Equal(t, 300.0, f.content.Child(0).Height)

	f.wrapper.Height = 100
	f.hooks.Trigger(scroller.EventResize)

	for _, c := range f.content.Children() {
		assert.Equal(t, 100.0, c.Height)
	}
	assert.Equal(t, 1, f.refreshes)
}

func TestReconfigureKeepsRealPage(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 3})
	s := New(f, withLoop(true))
	defer s.Destroy()
	f.start()
	s.Next()
	require.Equal(t, Index{PageX: 1}, s.CurrentPage().Index)

	s.Reconfigure(withLoop(false))

	assert.False(t, s.Options().Loop)
	assert.Equal(t, 3, f.content.Len())
	assert.Equal(t, 900.0, f.content.Width)
	assert.Equal(t, Index{PageX: 1}, s.CurrentPage().Index)
	assert.Equal(t, -300.0, f.bx.CurrentPos)
	assert.Equal(t, 1, f.hooks.Len(scroller.EventRefresh))
}

func TestSurfaceDestroyTearsDown(t *testing.T) {
	f := newFakeSurface(surfaceConfig{pages: 2})
	New(f, withLoop(true))

	f.hooks.Trigger(scroller.EventDestroy)

	assert.Equal(t, 2, f.content.Len())
	assert.Zero(t, f.hooks.Len(scroller.EventRefresh))
}
