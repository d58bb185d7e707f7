package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/glide/internal/app"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/tui/state"
	"github.com/spf13/cobra"
)

const demoCommandLong = `Open an interactive carousel in the terminal.

Drag with the mouse, use the wheel or the arrow keys to move between pages.
The last settled page is stored and restored on the next run.

USAGE:
    glide demo [OPTIONS]

OPTIONS:
    --pages <n>       Number of pages (default: 5)
    --name <name>     Surface name in the page store (default: carousel)
    --vertical        Page vertically instead of horizontally
    -h, --help        Show this help`

// runProgram runs a bubbletea model to completion. Can be changed for testing.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// openStore opens the page store for the loaded config. Can be changed for testing.
var openStore = storage.NewFromConfig

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	var (
		pages    int
		name     string
		vertical bool
	)
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive carousel",
		Long:  demoCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return fmt.Errorf("demo: --pages must be at least 1, got %d", pages)
			}
			store := openStore()
			defer store.Close()

			so := app.ScrollerOptions()
			if vertical {
				so.ScrollX, so.ScrollY = false, true
			}
			m, err := state.NewModel(cmd.Context(), state.Options{
				Name:         name,
				Pages:        demoPages(pages),
				Store:        store,
				Scroller:     so,
				Slide:        app.SlideOptions(),
				UseTransform: app.UseTransform(),
				StatusFormat: app.StatusFormat(),
				Interval:     app.FrameInterval(),
			})
			if err != nil {
				return err
			}
			defer m.Close()
			return runProgram(m)
		},
	}
	demoCmd.Flags().IntVar(&pages, "pages", 5, "Number of pages")
	demoCmd.Flags().StringVar(&name, "name", app.DefaultSurface, "Surface name in the page store")
	demoCmd.Flags().BoolVar(&vertical, "vertical", false, "Page vertically")
	return demoCmd
}

func demoPages(n int) []string {
	lines := []string{
		"Drag the page and let go.",
		"Short quick drags flick to the neighbour.",
		"The wheel moves one page per step.",
		"Past the last page the carousel loops.",
		"Resize the terminal: the page stays put.",
	}
	out := make([]string, n)
	for i := range out {
		var b strings.Builder
		b.WriteString(lines[i%len(lines)])
		fmt.Fprintf(&b, "\n\nPage %d of %d", i+1, n)
		out[i] = b.String()
	}
	return out
}
