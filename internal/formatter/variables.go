package formatter

import (
	"strconv"
)

// Context holds the values status templates can reference.
type Context struct {
	Surface string
	// Page is zero-based; ${page} shows it one-based.
	Page   int
	Total  int
	X, Y   float64
	Moving bool
}

var variables = map[string]func(Context) string{
	"surface": func(c Context) string { return c.Surface },
	"page":    func(c Context) string { return strconv.Itoa(c.Page + 1) },
	"total":   func(c Context) string { return strconv.Itoa(c.Total) },
	"x":       func(c Context) string { return strconv.FormatFloat(c.X, 'g', -1, 64) },
	"y":       func(c Context) string { return strconv.FormatFloat(c.Y, 'g', -1, 64) },
	"motion": func(c Context) string {
		if c.Moving {
			return "moving"
		}
		return "idle"
	},
	"progress": func(c Context) string {
		if c.Total <= 0 {
			return "0%"
		}
		return strconv.Itoa((c.Page+1)*100/c.Total) + "%"
	},
}

// Resolve returns the value of one variable.
func (c Context) Resolve(name string) (string, bool) {
	fn, ok := variables[name]
	if !ok {
		return "", false
	}
	return fn(c), true
}

// IsVariable reports whether name is a known variable.
func IsVariable(name string) bool {
	_, ok := variables[name]
	return ok
}

// VariableNames lists the known variables in a fixed order.
func VariableNames() []string {
	return []string{"surface", "page", "total", "x", "y", "motion", "progress"}
}
