// Package formatter renders the carousel status line from templates with
// ${variable} placeholders, either given inline or picked from named presets.
package formatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownVariable indicates a placeholder no variable resolves.
var ErrUnknownVariable = errors.New("unknown variable")

var variablePattern = regexp.MustCompile(`\$\{([a-z0-9-]+)\}`)

// Parse returns the variables a template references, without duplicates,
// in order of first use.
func Parse(template string) []string {
	seen := make(map[string]bool)
	vars := []string{}
	for _, match := range variablePattern.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			vars = append(vars, match[1])
		}
	}
	return vars
}

// Validate reports unbalanced delimiters and unknown variables.
func Validate(template string) error {
	if open, closed := strings.Count(template, "${"), len(variablePattern.FindAllString(template, -1)); open != closed {
		return fmt.Errorf("malformed placeholder: %d opened, %d well-formed", open, closed)
	}
	for _, name := range Parse(template) {
		if !IsVariable(name) {
			return fmt.Errorf("%w: %s (available: %s)", ErrUnknownVariable, name, strings.Join(VariableNames(), ", "))
		}
	}
	return nil
}

// Substitute replaces every placeholder with its value from ctx.
func Substitute(template string, ctx Context) (string, error) {
	var err error
	out := variablePattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := variablePattern.FindStringSubmatch(placeholder)[1]
		value, ok := ctx.Resolve(name)
		if !ok && err == nil {
			err = fmt.Errorf("%w: %s", ErrUnknownVariable, name)
		}
		return value
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// Render resolves format as a preset name or an inline template and
// substitutes ctx into it. An invalid format renders the default preset.
func Render(format string, ctx Context) string {
	out, err := Substitute(Resolve(format), ctx)
	if err != nil {
		out, _ = Substitute(DefaultPreset().Template, ctx)
	}
	return out
}
