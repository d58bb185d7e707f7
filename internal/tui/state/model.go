// Package state holds the bubbletea model of the carousel demo.
package state

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/glide/internal/animate"
	"github.com/cristianoliveira/glide/internal/app"
	"github.com/cristianoliveira/glide/internal/frame"
	"github.com/cristianoliveira/glide/internal/logging"
	"github.com/cristianoliveira/glide/internal/notice"
	"github.com/cristianoliveira/glide/internal/scroller"
	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/tui/render"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	defaultInterval = 16 * time.Millisecond
	// header and status line
	chromeLines = 2
	minPageRows = 3
)

// Options configures the demo model.
type Options struct {
	Name         string
	Pages        []string
	Store        storage.PageStore
	Scroller     scroller.Options
	Slide        slide.Options
	UseTransform bool
	Interval     time.Duration
	// StatusFormat is a formatter preset name or template.
	StatusFormat string
	// Clock defaults to the system clock.
	Clock animate.Clock
}

// Model is the bubbletea model driving one carousel.
type Model struct {
	carousel *app.Carousel
	queue    *frame.Queue
	canvas   *Canvas
	notices  *notice.Buffer
	interval time.Duration
	vertical bool
	format   string

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	theme    render.Theme
	titles   map[string]string

	width, height int
	ticking       bool
	dragging      bool
	lastX, lastY  int
}

// NewModel builds the carousel at the default terminal size. The first
// WindowSizeMsg resizes it to the real one.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = frame.SystemClock{}
	}
	m := &Model{
		queue:    frame.NewQueue(),
		canvas:   NewCanvas(),
		notices:  notice.NewBuffer(opts.Clock.Now, nil),
		interval: opts.Interval,
		vertical: !opts.Scroller.ScrollX && opts.Scroller.ScrollY,
		format:   opts.StatusFormat,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    render.DefaultTheme(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	pw, ph := m.pageSize()
	c, err := app.NewCarousel(ctx, app.CarouselInput{
		Name:         opts.Name,
		Pages:        opts.Pages,
		Width:        float64(pw * render.CellWidth),
		Height:       float64(ph * render.CellHeight),
		Sink:         m.canvas,
		UseTransform: opts.UseTransform,
		Scheduler:    m.queue,
		Clock:        opts.Clock,
		Store:        opts.Store,
		Notices:      m.notices,
		Scroller:     opts.Scroller,
		Slide:        opts.Slide,
	})
	if err != nil {
		return nil, fmt.Errorf("tui: build carousel: %w", err)
	}
	m.carousel = c
	m.titles = make(map[string]string)
	for i, page := range c.Pages() {
		m.titles[page.ID] = fmt.Sprintf("%d/%d", i+1, len(opts.Pages))
	}
	m.viewport = viewport.New(pw, ph)
	return m, nil
}

// Carousel returns the driven carousel.
func (m *Model) Carousel() *app.Carousel { return m.carousel }

// Close releases the carousel.
func (m *Model) Close() { m.carousel.Close() }

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return m.schedule()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.ticking = false
		m.queue.Flush()
	}
	return m, m.schedule()
}

// schedule starts the frame ticker when motion is pending and none runs.
func (m *Model) schedule() tea.Cmd {
	if m.ticking || m.queue.Pending() == 0 {
		return nil
	}
	m.ticking = true
	return tick(m.interval)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	m.notices.Clear()
	sl := m.carousel.Slide()
	switch {
	case key.Matches(msg, m.keys.Next):
		sl.Next()
	case key.Matches(msg, m.keys.Prev):
		sl.Prev()
	case key.Matches(msg, m.keys.First):
		m.goTo(0)
	case key.Matches(msg, m.keys.Last):
		m.goTo(sl.PageCount() - 1)
	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err == nil && n <= sl.PageCount() {
			m.goTo(n - 1)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
}

func (m *Model) goTo(page int) {
	if m.vertical {
		m.carousel.Slide().GoToPage(0, page)
		return
	}
	m.carousel.Slide().GoToPage(page, 0)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	sc := m.carousel.Scroller()
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		sc.Wheel(0, -render.CellHeight)
		return
	case tea.MouseButtonWheelUp:
		sc.Wheel(0, render.CellHeight)
		return
	case tea.MouseButtonWheelRight:
		sc.Wheel(-render.CellWidth, 0)
		return
	case tea.MouseButtonWheelLeft:
		sc.Wheel(render.CellWidth, 0)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.dragging = true
		m.lastX, m.lastY = msg.X, msg.Y
		sc.Start()
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		m.drag(msg.X, msg.Y)
	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.drag(msg.X, msg.Y)
		m.dragging = false
		sc.End()
	}
}

func (m *Model) drag(x, y int) {
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	m.carousel.Scroller().Move(float64(dx*render.CellWidth), float64(dy*render.CellHeight))
}

// pageSize returns the page size in cells for the current terminal.
func (m *Model) pageSize() (int, int) {
	rows := m.height - chromeLines - lipgloss.Height(m.help.View(m.keys))
	return max(m.width, 1), max(rows, minPageRows)
}

// layout resizes the carousel and viewport to the terminal.
func (m *Model) layout() {
	m.help.Width = m.width
	pw, ph := m.pageSize()
	m.viewport.Width, m.viewport.Height = pw, ph
	if err := m.carousel.Resize(float64(pw*render.CellWidth), float64(ph*render.CellHeight)); err != nil {
		logging.Warn("resize carousel", "width", pw, "height", ph, "error", err)
	}
}
