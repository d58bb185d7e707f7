// Package storage persists the last settled page of each scroll surface.
package storage

import (
	"context"

	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage/sqlite"
)

// ErrPageNotFound indicates that no page was saved for a surface.
var ErrPageNotFound = sqlite.ErrPageNotFound

// PageStore defines the page persistence operations.
type PageStore interface {
	SavePage(ctx context.Context, surface string, page slide.Index) error
	LoadPage(ctx context.Context, surface string) (slide.Index, error)
	DeletePage(ctx context.Context, surface string) error
	Close() error
}
