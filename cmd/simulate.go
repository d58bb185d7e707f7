package cmd

import (
	"github.com/cristianoliveira/glide/internal/app"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/spf13/cobra"
)

const simulateCommandLong = `Drive a headless carousel with a manual clock and print every event it raises.

Each argument is one step. Time only moves while steps animate, so the
output is the same on every run.

USAGE:
    glide simulate [OPTIONS] [STEP...]

STEPS:
    next | prev               Navigate one page
    goto X [Y]                Navigate to a page
    swipe DX[,DY] DURATION    Drag by the delta over DURATION and release
    tap                       Press and release without moving
    wheel DX[,DY]             One wheel step
    resize WxH                Resize the viewport
    wait DURATION             Let time pass

OPTIONS:
    --pages <n>        Number of pages (default: 3)
    --width <px>       Viewport width (default: 300)
    --height <px>      Viewport height (default: 200)
    --name <name>      Surface name (default: simulate)
    --persist          Use the configured page store instead of memory
    -h, --help         Show this help

EXAMPLES:
    glide simulate next next prev
    glide simulate "swipe -120 100ms" "wheel 0,-16" "goto 0"`

// NewSimulateCmd creates the simulate command.
func NewSimulateCmd() *cobra.Command {
	var (
		pages         int
		width, height float64
		name          string
		persist       bool
	)
	simulateCmd := &cobra.Command{
		Use:   "simulate [STEP...]",
		Short: "Replay gestures against a headless carousel",
		Long:  simulateCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store storage.PageStore = storage.NewMemoryStore()
			if persist {
				store = openStore()
			}
			defer store.Close()

			opts := app.ScrollerOptions()
			_, err := app.NewSimulateUseCase(app.SimulateInput{
				Name:     name,
				Pages:    pages,
				Width:    width,
				Height:   height,
				Steps:    args,
				Interval: app.FrameInterval(),
				Output:   cmd.OutOrStdout(),
				Store:    store,
				Scroller: opts,
				Slide:    app.SlideOptions(),
			}).Execute(cmd.Context())
			return err
		},
	}
	simulateCmd.Flags().IntVar(&pages, "pages", 3, "Number of pages")
	simulateCmd.Flags().Float64Var(&width, "width", 300, "Viewport width")
	simulateCmd.Flags().Float64Var(&height, "height", 200, "Viewport height")
	simulateCmd.Flags().StringVar(&name, "name", "simulate", "Surface name")
	simulateCmd.Flags().BoolVar(&persist, "persist", false, "Use the configured page store")
	return simulateCmd
}
