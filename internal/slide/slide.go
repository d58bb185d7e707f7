// Package slide pages a scroll surface: it lays a discrete page grid over the
// content, optionally loops it with clone pages, and turns releases, flicks,
// wheel steps and navigation calls into page-to-page motion.
package slide

import (
	"math"
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/ease"
	"github.com/cristianoliveira/glide/internal/hooks"
	"github.com/cristianoliveira/glide/internal/layout"
	"github.com/cristianoliveira/glide/internal/logging"
	"github.com/cristianoliveira/glide/internal/scroller"
)

// EventSlideWillChange is declared on the surface's public events. Its
// payload is the real Index the surface is about to land on.
const EventSlideWillChange = "slideWillChange"

// Surface is the scroll surface a Slide is bound to. *scroller.Scroller
// implements it.
type Surface interface {
	Hooks() *hooks.Registry
	Events() *hooks.Registry
	Wrapper() *layout.Node
	Content() *layout.Node
	BehaviorX() *scroller.Behavior
	BehaviorY() *scroller.Behavior
	Options() scroller.Options
	ScrollTo(x, y float64, duration time.Duration, easing ease.Easing)
	Refresh()
}

// deriveTime asks goTo to compute the duration from the travel distance.
const deriveTime time.Duration = -1

type extents struct {
	wrapperWidth, wrapperHeight float64
	contentWidth, contentHeight float64
}

// Slide is the paging model bound to one surface.
type Slide struct {
	surface   Surface
	opts      Options
	pages     *Pages
	listeners hooks.Disposer
	clones    int

	exposed   Index
	measured  extents
	inited    bool
	touching  bool
	destroyed bool
}

// New binds paging to surface. Bind before the surface's Init so the
// initial position lands on the start page.
func New(surface Surface, opts Options) *Slide {
	s := &Slide{surface: surface}
	surface.Events().RegisterType(EventSlideWillChange)
	s.init(opts)
	return s
}

func (s *Slide) init(opts Options) {
	s.opts = opts.resolve()
	content := s.surface.Content()
	if content.Len() <= 1 {
		s.opts.Loop = false
	}
	slideX := s.surface.Options().ScrollX
	s.pages = NewPages(slideX, s.opts.Loop && slideX, s.opts.Loop && !slideX)
	s.inited = false
	s.touching = false
	s.exposed = Index{}

	s.keepStyle(content)
	if s.opts.Loop {
		s.cloneEdges(content)
	}
	s.setSize()
	s.bind()
}

// keepStyle records how the content looked so teardown can restore it.
func (s *Slide) keepStyle(content *layout.Node) {
	width, flow := content.Width, content.Flow
	children := append([]*layout.Node(nil), content.Children()...)
	heights := make([]float64, len(children))
	for i, c := range children {
		heights[i] = c.Height
	}
	s.listeners.Add(func() {
		content.Width, content.Flow = width, flow
		for i, c := range children {
			c.Height = heights[i]
		}
	})
}

func (s *Slide) cloneEdges(content *layout.Node) {
	first := content.Child(0).Copy()
	last := content.Child(content.Len() - 1).Copy()
	content.Prepend(last)
	content.Append(first)
	s.clones = 2
	s.listeners.Add(func() {
		content.Remove(first)
		content.Remove(last)
		s.clones = 0
	})
}

func (s *Slide) setSize() {
	content := s.surface.Content()
	if s.pages.SlideX {
		content.Flow = layout.Horizontal
		if first := content.Child(0); first != nil {
			content.Width = first.MeasuredWidth() * float64(content.Len())
		}
		return
	}
	content.Flow = layout.Vertical
	height := s.surface.Wrapper().MeasuredHeight()
	for _, c := range content.Children() {
		c.Height = height
	}
}

func (s *Slide) bind() {
	h, ev := s.surface.Hooks(), s.surface.Events()
	d := &s.listeners
	d.On(h, scroller.EventRefresh, func(...any) bool {
		s.refresh()
		return false
	})
	d.On(h, scroller.EventBeforeInitialScrollTo, func(args ...any) bool {
		if len(args) > 0 {
			if point, ok := args[0].(*animate.Point); ok {
				s.initialScroll(point)
			}
		}
		return false
	})
	d.On(h, scroller.EventMomentum, func(args ...any) bool {
		if len(args) > 0 {
			if meta, ok := args[0].(*scroller.MomentumMeta); ok {
				s.momentum(meta)
			}
		}
		return false
	})
	d.On(h, scroller.EventFlick, func(...any) bool {
		s.flick()
		return false
	})
	d.On(h, scroller.EventResize, func(...any) bool {
		s.resize()
		return true
	})
	d.On(h, scroller.EventBeforeStart, func(...any) bool {
		s.touching = true
		return false
	})
	d.On(h, scroller.EventScroll, func(args ...any) bool {
		if len(args) > 0 {
			if point, ok := args[0].(animate.Point); ok {
				s.scrollMoving(point)
			}
		}
		return false
	})
	d.On(h, scroller.EventEnd, func(...any) bool {
		s.touching = false
		return false
	})
	d.On(h, scroller.EventDestroy, func(...any) bool {
		s.Destroy()
		return false
	})
	d.On(ev, scroller.EventScrollEnd, func(...any) bool {
		return s.scrollEnd()
	})
	if ev.Has(scroller.EventMousewheelMove) {
		d.On(ev, scroller.EventMousewheelMove, func(...any) bool { return true })
	}
	if ev.Has(scroller.EventMousewheelEnd) {
		d.On(ev, scroller.EventMousewheelEnd, func(args ...any) bool {
			if len(args) > 0 {
				if w, ok := args[0].(scroller.Wheel); ok {
					s.wheelEnd(w)
				}
			}
			return false
		})
	}
}

// Options returns the resolved options. Loop reads false when there are too
// few pages to loop.
func (s *Slide) Options() Options { return s.opts }

// Pages exposes the page grid.
func (s *Slide) Pages() *Pages { return s.pages }

// PageCount returns the number of real pages.
func (s *Slide) PageCount() int {
	return s.surface.Content().Len() - s.clones
}

// CurrentPage returns the real page the surface is on or heading to.
func (s *Slide) CurrentPage() Page {
	cur := s.pages.Current()
	return Page{Index: s.pages.RealPage(cur.Index), X: cur.X, Y: cur.Y}
}

// Next moves one page forward.
func (s *Slide) Next() {
	if s.destroyed {
		return
	}
	idx := s.pages.NextPage()
	s.goTo(idx.PageX, idx.PageY, deriveTime, s.opts.Easing)
}

// Prev moves one page back.
func (s *Slide) Prev() {
	if s.destroyed {
		return
	}
	idx := s.pages.PrevPage()
	s.goTo(idx.PageX, idx.PageY, deriveTime, s.opts.Easing)
}

// GoToPage moves to a real page. It does nothing when the surface already
// rests there.
func (s *Slide) GoToPage(x, y int) {
	if s.destroyed {
		return
	}
	idx := s.pages.RealPage2Page(x, y)
	s.goTo(idx.PageX, idx.PageY, deriveTime, s.opts.Easing)
}

// Reconfigure tears paging down and binds it again with opts, keeping the
// current real page.
func (s *Slide) Reconfigure(opts Options) {
	if s.destroyed {
		return
	}
	real := s.CurrentPage().Index
	s.listeners.Dispose()
	s.init(opts)
	s.surface.Refresh()

	idx := s.pages.RealPage2Page(real.PageX, real.PageY)
	p := s.pages.Change2SafePage(idx.PageX, idx.PageY)
	s.pages.ChangeCurrentPage(p)
	s.exposed = s.pages.RealPage(p.Index)
	s.inited = true
	s.surface.ScrollTo(p.X, p.Y, 0, s.opts.Easing)
}

// Destroy unsubscribes every listener, removes the clone pages and restores
// the content's original sizing.
func (s *Slide) Destroy() {
	if s.destroyed {
		return
	}
	s.listeners.Dispose()
	s.destroyed = true
}

func (s *Slide) goTo(pageX, pageY int, duration time.Duration, easing ease.Easing) {
	p := s.pages.Change2SafePage(pageX, pageY)
	dx := p.X - s.surface.BehaviorX().CurrentPos
	dy := p.Y - s.surface.BehaviorY().CurrentPos
	if dx == 0 && dy == 0 {
		return
	}
	if duration == deriveTime {
		duration = s.travelTime(dx, dy)
	}
	s.pages.ChangeCurrentPage(p)
	s.willChange(p.Index)
	s.surface.ScrollTo(p.X, p.Y, duration, easing)
}

func (s *Slide) travelTime(dx, dy float64) time.Duration {
	if s.opts.Speed > 0 {
		return s.opts.Speed
	}
	ms := math.Max(math.Max(
		math.Min(math.Abs(dx), maxTravelTime),
		math.Min(math.Abs(dy), maxTravelTime)),
		minTravelTime)
	return time.Duration(ms * float64(time.Millisecond))
}

// willChange announces the real page a transition lands on, once per page.
func (s *Slide) willChange(idx Index) {
	real := s.pages.RealPage(idx)
	if real == s.exposed {
		return
	}
	s.exposed = real
	logging.Debug("slide will change", "page_x", real.PageX, "page_y", real.PageY)
	s.surface.Events().Trigger(EventSlideWillChange, real)
}

func (s *Slide) geometry() Geometry {
	w, c := s.surface.Wrapper(), s.surface.Content()
	return Geometry{
		WrapperWidth:  w.MeasuredWidth(),
		WrapperHeight: w.MeasuredHeight(),
		ContentWidth:  c.MeasuredWidth(),
		ContentHeight: c.MeasuredHeight(),
		MaxScrollX:    s.surface.BehaviorX().MaxScrollPos,
		MaxScrollY:    s.surface.BehaviorY().MaxScrollPos,
	}
}

func (s *Slide) currentExtents() extents {
	w, c := s.surface.Wrapper(), s.surface.Content()
	return extents{
		wrapperWidth:  w.MeasuredWidth(),
		wrapperHeight: w.MeasuredHeight(),
		contentWidth:  c.MeasuredWidth(),
		contentHeight: c.MeasuredHeight(),
	}
}

// refresh rebuilds the grid. Once the initial page is placed it also keeps
// the surface on its current page at the new offsets.
func (s *Slide) refresh() {
	s.pages.Refresh(s.geometry())
	s.measured = s.currentExtents()
	if !s.inited {
		return
	}
	cur := s.pages.Current()
	p := s.pages.Change2SafePage(cur.PageX, cur.PageY)
	s.pages.ChangeCurrentPage(p)
	if p.X != s.surface.BehaviorX().CurrentPos || p.Y != s.surface.BehaviorY().CurrentPos {
		s.surface.ScrollTo(p.X, p.Y, 0, s.opts.Easing)
	}
}

func (s *Slide) initialScroll(point *animate.Point) {
	p := s.pages.InitPage(s.opts.StartPageX, s.opts.StartPageY)
	s.pages.ChangeCurrentPage(p)
	s.exposed = s.pages.RealPage(p.Index)
	point.X, point.Y = p.X, p.Y
	s.inited = true
}

func (s *Slide) beyondThreshold(x, y float64) bool {
	bx, by := s.surface.BehaviorX(), s.surface.BehaviorY()
	return math.Abs(x-bx.AbsStartPos) >= s.opts.Threshold ||
		math.Abs(y-by.AbsStartPos) >= s.opts.Threshold
}

func (s *Slide) nearest(x, y float64) Page {
	bx, by := s.surface.BehaviorX(), s.surface.BehaviorY()
	return s.pages.NearestPage(
		betweenFloat(x, bx.MaxScrollPos, bx.MinScrollPos),
		betweenFloat(y, by.MaxScrollPos, by.MinScrollPos),
		bx.Direction,
		by.Direction,
	)
}

// momentum replaces the physics destination with a page, always landing
// with the snap duration.
func (s *Slide) momentum(meta *scroller.MomentumMeta) {
	p := s.pages.Current()
	if s.beyondThreshold(meta.NewX, meta.NewY) {
		p = s.nearest(meta.NewX, meta.NewY)
	}
	meta.NewX, meta.NewY = p.X, p.Y
	meta.Time = s.opts.SnapTime
	meta.Easing = s.opts.Easing
	s.pages.ChangeCurrentPage(p)
	s.willChange(p.Index)
}

func (s *Slide) flick() {
	bx, by := s.surface.BehaviorX(), s.surface.BehaviorY()
	duration := s.travelTime(bx.CurrentPos-bx.StartPos, by.CurrentPos-by.StartPos)
	cur := s.pages.Current()
	s.goTo(cur.PageX+bx.Direction, cur.PageY+by.Direction, duration, s.opts.Easing)
}

func (s *Slide) scrollMoving(point animate.Point) {
	if !s.touching || !s.beyondThreshold(point.X, point.Y) {
		return
	}
	s.willChange(s.nearest(point.X, point.Y).Index)
}

// scrollEnd jumps from a loop clone to its real twin and claims the event.
func (s *Slide) scrollEnd() bool {
	s.touching = false
	if s.opts.Loop {
		if idx, ok := s.pages.ResetLoopPage(); ok {
			logging.Debug("slide loop re-centred", "page_x", idx.PageX, "page_y", idx.PageY)
			s.goTo(idx.PageX, idx.PageY, 0, s.opts.Easing)
			return true
		}
	}
	s.willChange(s.pages.Current().Index)
	return false
}

func (s *Slide) resize() {
	if s.pages.SlideX {
		s.surface.Content().Width = 0
	}
	s.setSize()
	if s.currentExtents() != s.measured {
		s.surface.Refresh()
		return
	}
	s.pages.Refresh(s.geometry())
}

func (s *Slide) wheelEnd(w scroller.Wheel) {
	switch {
	case w.DirectionX == scroller.DirectionPositive || w.DirectionY == scroller.DirectionPositive:
		s.Next()
	case w.DirectionX == scroller.DirectionNegative || w.DirectionY == scroller.DirectionNegative:
		s.Prev()
	}
}
