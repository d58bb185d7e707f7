// Package cmd implements the glide command line.
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/config"
	"github.com/cristianoliveira/glide/internal/logging"
	"github.com/cristianoliveira/glide/internal/version"
	"github.com/spf13/cobra"
)

const rootCommandLong = `Momentum scrolling and paging for terminal carousels.

USAGE:
    glide [COMMAND] [OPTIONS]

EXAMPLES:
    # Open the interactive carousel
    glide demo

    # Replay gestures against a headless surface
    glide simulate next "swipe -120 100ms" wheel 0,-16`

// NewRootCmd builds the command tree. Each call returns a fresh tree so
// flag values never leak between executions.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "glide",
		Short:         "Momentum scrolling and paging for terminal carousels",
		Long:          rootCommandLong,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			colors.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if debug || config.GetBool("debug", false) {
				colors.SetDebug(true)
			}
			if err := logging.InitGlobal(); err != nil {
				colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
			}
			logging.Info("command started", "command", cmd.CommandPath())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			logging.Info("command completed", "command", cmd.CommandPath())
			return logging.ShutdownGlobal()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug output")

	root.AddCommand(
		NewDemoCmd(),
		NewSimulateCmd(),
		NewConfigCmd(),
		NewPagesCmd(),
		NewVersionCmd(),
	)
	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
