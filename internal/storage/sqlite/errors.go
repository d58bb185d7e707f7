package sqlite

import "errors"

var (
	// ErrInvalidSurface indicates an empty surface name.
	ErrInvalidSurface = errors.New("invalid surface name")
	// ErrInvalidPage indicates a negative page index.
	ErrInvalidPage = errors.New("invalid page index")
	// ErrPageNotFound indicates that no page was saved for a surface.
	ErrPageNotFound = errors.New("page not found")
)
