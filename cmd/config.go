package cmd

import (
	"fmt"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/config"
	"github.com/spf13/cobra"
)

const (
	configCommandLong = `Inspect and initialize the configuration.

USAGE:
    glide config <subcommand>

SUBCOMMANDS:
    init    Write a config file with the defaults
    show    Print the resolved configuration`
	configInitCommandLong = `Write the default configuration as TOML.

USAGE:
    glide config init [OPTIONS]

OPTIONS:
    --path <file>    Where to write (default: {config_dir}/config.toml)
    --force          Overwrite an existing file
    -h, --help       Show this help`
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration",
		Long:  configCommandLong,
	}
	configCmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Long:  configInitCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.SamplePath()
			}
			if err := config.WriteSample(path, force); err != nil {
				return err
			}
			colors.Success("wrote " + path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Where to write the file")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return initCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			source := config.FilePath()
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(w, "# file: %s\n", source)
			for _, key := range config.Keys() {
				fmt.Fprintf(w, "%s = %s\n", key, config.Get(key, ""))
			}
			return nil
		},
	}
}
