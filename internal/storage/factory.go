package storage

import (
	"fmt"
	"path/filepath"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/config"
	"github.com/cristianoliveira/glide/internal/storage/sqlite"
)

// PagesDBFileName is the store file under state_dir.
const PagesDBFileName = "pages.db"

var (
	_ PageStore = (*sqlite.Store)(nil)
	_ PageStore = (*MemoryStore)(nil)
)

var openSQLite = func(path string) (PageStore, error) { return sqlite.Open(path) }

// DBPath returns where the sqlite store lives for the loaded config.
func DBPath() string {
	return filepath.Join(config.Get("state_dir", ""), PagesDBFileName)
}

// NewFromConfig returns the sqlite store when store_enabled is set, and a
// MemoryStore otherwise or when sqlite cannot be opened.
func NewFromConfig() PageStore {
	if !config.GetBool("store_enabled", true) {
		return NewMemoryStore()
	}
	store, err := openSQLite(DBPath())
	if err != nil {
		colors.Warning(fmt.Sprintf("failed to open page store, pages will not persist: %v", err))
		return NewMemoryStore()
	}
	return store
}
