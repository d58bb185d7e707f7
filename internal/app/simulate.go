package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/frame"
	"github.com/cristianoliveira/glide/internal/scroller"
	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/translate"
)

// maxSettleFrames bounds how long a step may animate before the next one.
const maxSettleFrames = 10000

var simulationEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// ErrUnknownStep indicates a step verb the simulation does not know.
var ErrUnknownStep = errors.New("unknown step")

// SimulateInput describes a headless run.
type SimulateInput struct {
	Name     string
	Pages    int
	Width    float64
	Height   float64
	Steps    []string
	Interval time.Duration
	Output   io.Writer
	Store    storage.PageStore
	Scroller scroller.Options
	Slide    slide.Options
}

// SimulateUseCase drives a carousel with a manual clock and writes every
// public event it raises.
type SimulateUseCase struct {
	in       SimulateInput
	carousel *Carousel
	queue    *frame.Queue
	clock    *frame.ManualClock
}

// NewSimulateUseCase creates a simulation use-case.
func NewSimulateUseCase(in SimulateInput) *SimulateUseCase {
	if in.Output == nil {
		in.Output = io.Discard
	}
	if in.Interval <= 0 {
		in.Interval = 16 * time.Millisecond
	}
	return &SimulateUseCase{
		in:    in,
		queue: frame.NewQueue(),
		clock: frame.NewManualClock(simulationEpoch),
	}
}

// Execute runs every step in order and returns the real page it ends on.
//
// Steps:
//
//	next | prev             navigate one page
//	goto X [Y]              navigate to a real page
//	swipe DX[,DY] DURATION  drag by the delta over DURATION and release
//	tap                     press and release without moving
//	wheel DX[,DY]           one wheel step
//	resize WxH              resize the viewport
//	wait DURATION           let time pass
func (u *SimulateUseCase) Execute(ctx context.Context) (slide.Index, error) {
	pages := make([]string, u.in.Pages)
	for i := range pages {
		pages[i] = fmt.Sprintf("page %d", i+1)
	}
	c, err := NewCarousel(ctx, CarouselInput{
		Name:         u.in.Name,
		Pages:        pages,
		Width:        u.in.Width,
		Height:       u.in.Height,
		Sink:         translate.NewMemorySink(),
		UseTransform: true,
		Scheduler:    u.queue,
		Clock:        u.clock,
		Store:        u.in.Store,
		Scroller:     u.in.Scroller,
		Slide:        u.in.Slide,
	})
	if err != nil {
		return slide.Index{}, err
	}
	defer c.Close()
	u.carousel = c
	u.record()

	u.printf("init", "page=%s x=%g y=%g", page(c.Page()), c.Scroller().X(), c.Scroller().Y())
	for i, step := range u.in.Steps {
		if err := ctx.Err(); err != nil {
			return c.Page(), err
		}
		if err := u.run(step); err != nil {
			return c.Page(), fmt.Errorf("step %d %q: %w", i+1, step, err)
		}
		u.settle()
	}
	u.printf("done", "page=%s x=%g y=%g", page(c.Page()), c.Scroller().X(), c.Scroller().Y())
	return c.Page(), nil
}

func (u *SimulateUseCase) record() {
	events := u.carousel.Scroller().Events()
	point := func(name string) func(args ...any) bool {
		return func(args ...any) bool {
			p := args[0].(animate.Point)
			u.printf(name, "x=%g y=%g", p.X, p.Y)
			return false
		}
	}
	bare := func(name string) func(args ...any) bool {
		return func(...any) bool {
			u.printf(name, "")
			return false
		}
	}
	u.carousel.listeners.On(events, scroller.EventScrollStart, bare(scroller.EventScrollStart))
	u.carousel.listeners.On(events, scroller.EventScroll, point(scroller.EventScroll))
	u.carousel.listeners.On(events, scroller.EventScrollEnd, point(scroller.EventScrollEnd))
	u.carousel.listeners.On(events, scroller.EventScrollCancel, bare(scroller.EventScrollCancel))
	u.carousel.listeners.On(events, slide.EventSlideWillChange, func(args ...any) bool {
		u.printf(slide.EventSlideWillChange, "page=%s", page(args[0].(slide.Index)))
		return false
	})
}

func (u *SimulateUseCase) run(step string) error {
	fields := strings.Fields(step)
	if len(fields) == 0 {
		return nil
	}
	sc, sl := u.carousel.Scroller(), u.carousel.Slide()
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "next":
		sl.Next()
	case "prev":
		sl.Prev()
	case "goto":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: goto X [Y]")
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		y := 0
		if len(args) == 2 {
			if y, err = strconv.Atoi(args[1]); err != nil {
				return err
			}
		}
		sl.GoToPage(x, y)
	case "swipe":
		if len(args) != 2 {
			return errors.New("usage: swipe DX[,DY] DURATION")
		}
		dx, dy, err := parseDelta(args[0])
		if err != nil {
			return err
		}
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return err
		}
		sc.Start()
		u.clock.Advance(d)
		sc.Move(dx, dy)
		sc.End()
	case "tap":
		sc.Start()
		sc.End()
	case "wheel":
		if len(args) != 1 {
			return errors.New("usage: wheel DX[,DY]")
		}
		dx, dy, err := parseDelta(args[0])
		if err != nil {
			return err
		}
		sc.Wheel(dx, dy)
	case "resize":
		if len(args) != 1 {
			return errors.New("usage: resize WxH")
		}
		w, h, ok := strings.Cut(strings.ToLower(args[0]), "x")
		if !ok {
			return errors.New("usage: resize WxH")
		}
		width, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return err
		}
		height, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return err
		}
		return u.carousel.Resize(width, height)
	case "wait":
		if len(args) != 1 {
			return errors.New("usage: wait DURATION")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return err
		}
		for end := u.clock.Now().Add(d); u.clock.Now().Before(end); {
			u.clock.Advance(min(u.in.Interval, end.Sub(u.clock.Now())))
			u.queue.Flush()
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStep, fields[0])
	}
	return nil
}

// settle runs frames until no motion is pending.
func (u *SimulateUseCase) settle() {
	frame.Drive(u.queue, u.clock, u.in.Interval, maxSettleFrames)
}

func (u *SimulateUseCase) printf(event, format string, args ...any) {
	elapsed := u.clock.Now().Sub(simulationEpoch).Milliseconds()
	line := fmt.Sprintf("+%06dms %-16s", elapsed, event)
	if format != "" {
		line += " " + fmt.Sprintf(format, args...)
	}
	_, _ = fmt.Fprintln(u.in.Output, strings.TrimRight(line, " "))
}

func parseDelta(s string) (float64, float64, error) {
	xs, ys, hasY := strings.Cut(s, ",")
	dx, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, err
	}
	if !hasY {
		return dx, 0, nil
	}
	dy, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

func page(idx slide.Index) string {
	return fmt.Sprintf("(%d,%d)", idx.PageX, idx.PageY)
}
