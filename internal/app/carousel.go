package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/hooks"
	"github.com/cristianoliveira/glide/internal/layout"
	"github.com/cristianoliveira/glide/internal/notice"
	"github.com/cristianoliveira/glide/internal/scroller"
	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/translate"
)

// DefaultSurface names the carousel in the page store when none is given.
const DefaultSurface = "carousel"

var (
	// ErrNoPages indicates a carousel without pages.
	ErrNoPages = errors.New("carousel needs at least one page")
	// ErrInvalidSize indicates a non-positive viewport size.
	ErrInvalidSize = errors.New("carousel size must be positive")
)

// Sink receives rendered positions from either translator strategy.
type Sink interface {
	translate.DirectSink
	translate.TransformSink
}

// CarouselInput holds everything a carousel is built from.
type CarouselInput struct {
	// Name keys the saved page in Store.
	Name  string
	Pages []string
	// Width and Height size the viewport and every page.
	Width  float64
	Height float64

	Sink         Sink
	UseTransform bool
	Scheduler    animate.Scheduler
	Clock        animate.Clock
	// Store persists the settled page. Nil keeps pages in memory.
	Store storage.PageStore
	// Notices reports store failures. Nil prints them to the console.
	Notices notice.Handler

	Scroller scroller.Options
	Slide    slide.Options
}

// Carousel is a paged scroll surface whose settled page survives restarts.
type Carousel struct {
	name      string
	scroller  *scroller.Scroller
	slide     *slide.Slide
	store     storage.PageStore
	notices   notice.Handler
	listeners hooks.Disposer
	saved     slide.Index
	closed    bool
}

// NewCarousel builds the surface, restores the saved page and initializes it.
func NewCarousel(ctx context.Context, in CarouselInput) (*Carousel, error) {
	if in.Sink == nil || in.Scheduler == nil || in.Clock == nil {
		panic("NewCarousel: sink, scheduler and clock dependencies cannot be nil")
	}
	if len(in.Pages) == 0 {
		return nil, ErrNoPages
	}
	if in.Width <= 0 || in.Height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, in.Width, in.Height)
	}
	if in.Name == "" {
		in.Name = DefaultSurface
	}
	if in.Store == nil {
		in.Store = storage.NewMemoryStore()
	}
	if in.Notices == nil {
		in.Notices = notice.Console{}
	}

	wrapper := layout.NewNode("wrapper", in.Width, in.Height)
	content := layout.NewNode("content", 0, 0)
	for i, body := range in.Pages {
		page := layout.NewNode(fmt.Sprintf("page-%d", i+1), in.Width, in.Height)
		page.Body = body
		content.Append(page)
	}
	wrapper.Append(content)

	slideOpts := in.Slide
	saved, err := in.Store.LoadPage(ctx, in.Name)
	switch {
	case err == nil:
		slideOpts.StartPageX, slideOpts.StartPageY = saved.PageX, saved.PageY
	case errors.Is(err, storage.ErrPageNotFound):
	default:
		in.Notices.Warning(fmt.Sprintf("could not restore page of %s: %v", in.Name, err))
	}

	var translater translate.Translator = translate.NewDirect(in.Sink)
	if in.UseTransform {
		translater = translate.NewTransform(in.Sink)
	}

	c := &Carousel{
		name:     in.Name,
		scroller: scroller.New(wrapper, content, translater, in.Scheduler, in.Clock, in.Scroller),
		store:    in.Store,
		notices:  in.Notices,
	}
	c.slide = slide.New(c.scroller, slideOpts)
	c.listeners.On(c.scroller.Events(), scroller.EventScrollEnd, func(...any) bool {
		c.persist()
		return false
	})
	c.scroller.Init()
	c.saved = c.slide.CurrentPage().Index
	return c, nil
}

// persist saves the current real page when it changed since the last save.
func (c *Carousel) persist() {
	page := c.slide.CurrentPage().Index
	if page == c.saved {
		return
	}
	if err := c.store.SavePage(context.Background(), c.name, page); err != nil {
		c.notices.Warning(fmt.Sprintf("could not save page of %s: %v", c.name, err))
		return
	}
	c.saved = page
}

// Name returns the store key.
func (c *Carousel) Name() string { return c.name }

// Scroller returns the underlying surface.
func (c *Carousel) Scroller() *scroller.Scroller { return c.scroller }

// Slide returns the paging model.
func (c *Carousel) Slide() *slide.Slide { return c.slide }

// Page returns the real page the carousel is on or heading to.
func (c *Carousel) Page() slide.Index { return c.slide.CurrentPage().Index }

// Pages returns the real pages in order, without loop clones.
func (c *Carousel) Pages() []*layout.Node {
	var out []*layout.Node
	for _, n := range c.scroller.Content().Children() {
		if !n.Clone {
			out = append(out, n)
		}
	}
	return out
}

// Resize resizes the viewport and every page, then re-lays the surface out.
func (c *Carousel) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}
	wrapper := c.scroller.Wrapper()
	if wrapper.Width == width && wrapper.Height == height {
		return nil
	}
	wrapper.Width, wrapper.Height = width, height
	for _, page := range c.scroller.Content().Children() {
		page.Width, page.Height = width, height
	}
	c.scroller.Resize()
	return nil
}

// Close destroys the surface. The store stays open; its owner closes it.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.listeners.Dispose()
	c.slide.Destroy()
	c.scroller.Destroy()
}
