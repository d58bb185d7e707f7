package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/formatter"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// validatorRegistry manages the set of registered validators.
type validatorRegistry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// registry is the global validator registry.
var registry = &validatorRegistry{
	validators: make(map[string]Validator),
}

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	registry.validators[key] = validator
}

// getValidator returns the validator for a key, or nil if not registered.
func getValidator(key string) Validator {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.validators[key]
}

// PositiveIntValidator returns a validator that ensures a value is a positive integer.
func PositiveIntValidator() Validator {
	return intValidator("a positive integer", func(n int) bool { return n > 0 })
}

// NonNegativeIntValidator returns a validator that accepts zero and positive integers.
func NonNegativeIntValidator() Validator {
	return intValidator("a non-negative integer", func(n int) bool { return n >= 0 })
}

func intValidator(what string, ok func(int) bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || !ok(n) {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be %s, using default: %s", key, value, what, defaultValue))
			return defaultValue, nil
		}
		return strconv.Itoa(n), nil
	}
}

// PositiveFloatValidator returns a validator that ensures a value is a finite float above zero.
func PositiveFloatValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || !(f > 0) || f > 1e9 {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a positive number, using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// EnumValidator returns a validator that ensures a value is one of the allowed enum values.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		valueLower := strings.ToLower(strings.TrimSpace(value))
		if !allowed[valueLower] {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': must be one of: %s; using default: %s", key, value, allowedValues(allowed), defaultValue))
			return defaultValue, nil
		}
		return valueLower, nil
	}
}

// BoolValidator returns a validator that normalizes and validates boolean values.
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', must be one of: 1, true, yes, on, 0, false, no, off; using default: %s", key, value, defaultValue))
			return defaultValue, nil
		}
		return normalized, nil
	}
}

// StatusFormatValidator accepts a formatter preset name or a template whose
// variables all resolve.
func StatusFormatValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if _, ok := formatter.Lookup(value); ok {
			return value, nil
		}
		if err := formatter.Validate(value); err != nil {
			colors.Warning(fmt.Sprintf("invalid %s value '%s': %v; using default: %s", key, value, err, defaultValue))
			return defaultValue, nil
		}
		return value, nil
	}
}

// initValidators registers all configuration validators.
func initValidators() {
	positiveInt := PositiveIntValidator()
	for _, key := range []string{
		"bounce_time", "momentum_limit_time", "swipe_time", "swipe_bounce_time",
		"flick_limit_time", "flick_limit_distance", "frame_interval",
		"slide_threshold", "slide_snap_time", "logging_max_files",
	} {
		RegisterValidator(key, positiveInt)
	}

	nonNegativeInt := NonNegativeIntValidator()
	for _, key := range []string{"momentum_limit_distance", "slide_speed", "slide_start_page_x", "slide_start_page_y"} {
		RegisterValidator(key, nonNegativeInt)
	}

	RegisterValidator("deceleration", PositiveFloatValidator())

	RegisterValidator("probe_type", EnumValidator(map[string]bool{"none": true, "throttle": true, "normal": true, "realtime": true}))
	RegisterValidator("slide_easing", EnumValidator(map[string]bool{"swipe": true, "swipe_bounce": true, "bounce": true, "linear": true}))
	RegisterValidator("status_format", StatusFormatValidator())
	RegisterValidator("logging_level", EnumValidator(map[string]bool{"debug": true, "info": true, "warn": true, "error": true}))

	boolValidator := BoolValidator()
	for _, key := range []string{
		"scroll_x", "scroll_y", "use_transform", "bounce", "momentum",
		"slide_loop", "store_enabled", "logging_enabled", "debug", "quiet",
	} {
		RegisterValidator(key, boolValidator)
	}
}

// normalizeBool converts various boolean representations to "true"/"false".
func normalizeBool(val string) string {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		// If invalid, return as-is; validation will fix it.
		return val
	}
}

// allowedValues returns a comma-separated string of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
