// Package sqlite provides a SQLite-backed page store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/glide/internal/slide"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pages (
	surface    TEXT PRIMARY KEY,
	page_x     INTEGER NOT NULL DEFAULT 0,
	page_y     INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
);
`

// Record is one saved page.
type Record struct {
	Surface   string
	Page      slide.Index
	UpdatedAt time.Time
}

// Store keeps the last settled page of each surface.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite store: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}

	s := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite store: create schema: %w", err)
	}
	return nil
}

// SavePage records page as the last settled page of surface.
func (s *Store) SavePage(ctx context.Context, surface string, page slide.Index) error {
	if err := validate(surface, page); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO pages (surface, page_x, page_y, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(surface) DO UPDATE SET
	page_x = excluded.page_x,
	page_y = excluded.page_y,
	updated_at = excluded.updated_at`,
		surface, page.PageX, page.PageY, s.now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("sqlite store: save page: %w", err)
	}
	return nil
}

// LoadPage returns the saved page of surface or ErrPageNotFound.
func (s *Store) LoadPage(ctx context.Context, surface string) (slide.Index, error) {
	if strings.TrimSpace(surface) == "" {
		return slide.Index{}, ErrInvalidSurface
	}
	var page slide.Index
	err := s.db.QueryRowContext(ctx,
		`SELECT page_x, page_y FROM pages WHERE surface = ?`, surface,
	).Scan(&page.PageX, &page.PageY)
	if errors.Is(err, sql.ErrNoRows) {
		return slide.Index{}, fmt.Errorf("%w: %s", ErrPageNotFound, surface)
	}
	if err != nil {
		return slide.Index{}, fmt.Errorf("sqlite store: load page: %w", err)
	}
	return page, nil
}

// DeletePage forgets the saved page of surface. Deleting a missing page is
// not an error.
func (s *Store) DeletePage(ctx context.Context, surface string) error {
	if strings.TrimSpace(surface) == "" {
		return ErrInvalidSurface
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE surface = ?`, surface); err != nil {
		return fmt.Errorf("sqlite store: delete page: %w", err)
	}
	return nil
}

// List returns every saved page ordered by surface name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT surface, page_x, page_y, updated_at FROM pages ORDER BY surface`)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list pages: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			updated string
		)
		if err := rows.Scan(&r.Surface, &r.Page.PageX, &r.Page.PageY, &updated); err != nil {
			return nil, fmt.Errorf("sqlite store: scan page: %w", err)
		}
		r.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite store: list pages: %w", err)
	}
	return out, nil
}

func validate(surface string, page slide.Index) error {
	if strings.TrimSpace(surface) == "" {
		return ErrInvalidSurface
	}
	if page.PageX < 0 || page.PageY < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidPage, page.PageX, page.PageY)
	}
	return nil
}
