// Package colors prints console messages for the CLI and mirrors them to the
// structured logger when one is set.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("GLIDE_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the defaults.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Error(msg) })
	write(true, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Info(msg, "type", "success") })
	write(false, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Warn(msg) })
	write(true, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Info(msg) })
	write(false, "%s%s%s\n", Blue, msg, Reset)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Debug(msg) })
	write(true, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
}

func mirror(fn func(Logger)) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		fn(l)
	}
}

// write prints to the console. Console failures have nowhere better to go,
// so they fall back to a plain line on os.Stderr.
func write(toErr bool, format string, args ...any) {
	mu.RLock()
	w := stdout
	if toErr {
		w = stderr
	}
	mu.RUnlock()
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}
