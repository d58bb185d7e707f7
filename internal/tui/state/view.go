package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/glide/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(render.Header(m.theme, "glide", m.width))
	s.WriteString("\n")
	s.WriteString(m.body())
	s.WriteString("\n")

	x, y := m.canvas.Offset()
	sl := m.carousel.Slide()
	var text string
	if n, ok := m.notices.Latest(); ok {
		text = n.Text
	}
	s.WriteString(render.Status(m.theme, render.StatusState{
		Surface: m.carousel.Name(),
		Page:    m.currentPage(),
		Total:   sl.PageCount(),
		X:       x,
		Y:       y,
		Moving:  m.carousel.Scroller().Animater().Pending() || m.dragging,
		Width:   m.width,
		Format:  m.format,
		Notice:  text,
	}))
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m *Model) currentPage() int {
	idx := m.carousel.Page()
	if m.vertical {
		return idx.PageY
	}
	return idx.PageX
}

// body draws every content child, clones included, so the drawn strip lines
// up with the engine's geometry.
func (m *Model) body() string {
	pw, ph := m.pageSize()
	children := m.carousel.Scroller().Content().Children()
	cards := make([]string, len(children))
	for i, page := range children {
		cards[i] = render.Card(m.theme, m.titles[page.ID], page.Body, pw, ph)
	}

	x, y := m.canvas.Offset()
	if m.vertical {
		m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, cards...))
		m.viewport.SetYOffset(render.ToCells(-y, render.CellHeight))
		return m.viewport.View()
	}
	return render.Strip(cards, render.ToCells(-x, render.CellWidth), pw)
}
