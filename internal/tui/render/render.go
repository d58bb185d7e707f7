// Package render draws carousel pages and the surrounding chrome.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/formatter"
)

// Engine pixels spanned by one terminal cell. Physics constants are tuned
// for pixels, so the surface is laid out in pixels and drawn in cells.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Theme holds the styles used to draw a carousel.
type Theme struct {
	Header lipgloss.Style
	Card   lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Status lipgloss.Style
	Dot    lipgloss.Style
	Active lipgloss.Style
	Notice lipgloss.Style
}

// DefaultTheme returns the stock styles.
func DefaultTheme() Theme {
	blue := lipgloss.Color(ansiColorNumber(colors.Blue))
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Foreground(blue),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(blue),
		Body:   lipgloss.NewStyle(),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dot:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Active: lipgloss.NewStyle().Foreground(blue),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow))),
	}
}

// ToCells converts an engine offset to whole cells.
func ToCells(px float64, cell int) int {
	return int(math.Round(px / float64(cell)))
}

// Header renders the title bar.
func Header(th Theme, title string, width int) string {
	return th.Header.Width(width).MaxWidth(width).Render(title)
}

// Card renders one page as a bordered box of exactly width x height cells.
func Card(th Theme, title, body string, width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	heading := th.Title.MaxWidth(innerW).Render(title)
	content := lipgloss.Place(innerW, max(innerH-1, 1), lipgloss.Center, lipgloss.Center,
		th.Body.MaxWidth(innerW).Render(body))
	inner := lipgloss.JoinVertical(lipgloss.Left, heading, content)
	inner = lipgloss.NewStyle().Width(innerW).Height(innerH).MaxHeight(innerH).Render(inner)
	return th.Card.Render(inner)
}

// Strip lays cards side by side and shows the width-cell window starting
// offset cells into the strip. A negative offset shows blank space before the
// first card.
func Strip(cards []string, offset, width int) string {
	joined := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	lines := strings.Split(joined, "\n")
	for i, line := range lines {
		lines[i] = window(line, offset, width)
	}
	return strings.Join(lines, "\n")
}

func window(line string, offset, width int) string {
	pad := 0
	if offset < 0 {
		pad = min(-offset, width)
		offset = 0
	}
	cut := ansi.Cut(line, offset, offset+width-pad)
	out := strings.Repeat(" ", pad) + cut
	if w := ansi.StringWidth(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}

// Dots renders a page indicator with the current page highlighted.
func Dots(th Theme, current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = th.Active.Render("●")
		} else {
			dots[i] = th.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// StatusState is what the status line reports.
type StatusState struct {
	Surface string
	Page    int
	Total   int
	X, Y    float64
	Moving  bool
	Width   int
	// Format is a formatter preset name or template. Empty is the default preset.
	Format string
	// Notice replaces the readout when set.
	Notice string
}

// Status renders the status line.
func Status(th Theme, s StatusState) string {
	left := Dots(th, s.Page, s.Total)
	readout := formatter.Render(s.Format, formatter.Context{
		Surface: s.Surface,
		Page:    s.Page,
		Total:   s.Total,
		X:       s.X,
		Y:       s.Y,
		Moving:  s.Moving,
	})
	right := th.Status.MaxWidth(max(s.Width-lipgloss.Width(left)-1, 1)).Render(readout)
	if s.Notice != "" {
		room := max(s.Width-lipgloss.Width(left)-1, 1)
		right = th.Notice.MaxWidth(room).Render(s.Notice)
	}
	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
func ansiColorNumber(code string) string {
	if i := strings.LastIndex(code, ";"); i >= 0 {
		return strings.TrimSuffix(code[i+1:], "m")
	}
	return "7"
}
