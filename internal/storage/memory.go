package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cristianoliveira/glide/internal/slide"
	"github.com/cristianoliveira/glide/internal/storage/sqlite"
)

// MemoryStore keeps pages for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	pages map[string]slide.Index
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[string]slide.Index)}
}

// SavePage records page for surface.
func (m *MemoryStore) SavePage(_ context.Context, surface string, page slide.Index) error {
	if strings.TrimSpace(surface) == "" {
		return sqlite.ErrInvalidSurface
	}
	if page.PageX < 0 || page.PageY < 0 {
		return fmt.Errorf("%w: (%d, %d)", sqlite.ErrInvalidPage, page.PageX, page.PageY)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[surface] = page
	return nil
}

// LoadPage returns the page saved for surface or ErrPageNotFound.
func (m *MemoryStore) LoadPage(_ context.Context, surface string) (slide.Index, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page, ok := m.pages[surface]
	if !ok {
		return slide.Index{}, fmt.Errorf("%w: %s", ErrPageNotFound, surface)
	}
	return page, nil
}

// DeletePage forgets surface.
func (m *MemoryStore) DeletePage(_ context.Context, surface string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, surface)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
