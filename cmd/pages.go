package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/glide/internal/app"
	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/storage"
	"github.com/cristianoliveira/glide/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

type pageLister interface {
	List(ctx context.Context) ([]sqlite.Record, error)
	Close() error
}

// openPageDB opens the sqlite page store directly. Can be changed for testing.
var openPageDB = func() (pageLister, error) {
	return sqlite.Open(storage.DBPath())
}

// NewPagesCmd creates the pages command and its subcommands.
func NewPagesCmd() *cobra.Command {
	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "Manage saved carousel pages",
		Long: `Manage the pages carousels settled on.

USAGE:
    glide pages <subcommand>

SUBCOMMANDS:
    list            List every saved page
    reset [NAME]    Forget the saved page of a surface (default: carousel)`,
	}
	pagesCmd.AddCommand(newPagesListCmd(), newPagesResetCmd())
	return pagesCmd
}

func newPagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every saved page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openPageDB()
			if err != nil {
				return fmt.Errorf("pages: open store: %w", err)
			}
			defer db.Close()

			records, err := db.List(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "no saved pages")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(w, "%-16s page=(%d,%d)  updated=%s\n",
					r.Surface, r.Page.PageX, r.Page.PageY, r.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newPagesResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [NAME]",
		Short: "Forget the saved page of a surface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.DefaultSurface
			if len(args) == 1 {
				name = args[0]
			}
			store := openStore()
			defer store.Close()
			if err := store.DeletePage(cmd.Context(), name); err != nil {
				return fmt.Errorf("pages: reset %s: %w", name, err)
			}
			colors.Success("reset " + name)
			return nil
		},
	}
}
