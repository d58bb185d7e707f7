package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/glide/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the key-value pairs to every entry.
	With(args ...any) Logger
	// Shutdown flushes and closes the log file.
	Shutdown() error
}

// fileLogger writes JSON lines through charmbracelet/log.
type fileLogger struct {
	clogger *clog.Logger
	file    *logFile
}

// logFile is shared by a logger and everything derived from it with With.
type logFile struct {
	mu     sync.Mutex
	f      *os.File
	path   string
	closed bool
}

func (lf *logFile) Write(p []byte) (int, error) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.closed {
		return len(p), nil
	}
	return lf.f.Write(p)
}

func (lf *logFile) close() error {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.closed {
		return nil
	}
	lf.closed = true
	return lf.f.Close()
}

// Init opens a new log file for cfg and returns a logger writing to it.
// A disabled config yields a logger that discards everything.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, fmt.Errorf("failed to determine log directory: %w", err)
		}
	} else if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, fileName(cfg, time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	lf := &logFile{f: f, path: path}
	clogger := clog.NewWithOptions(lf, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	return &fileLogger{
		clogger: clogger.With("pid", cfg.PID, "command", cfg.Command),
		file:    lf,
	}, nil
}

func fileName(cfg Config, now time.Time) string {
	return fmt.Sprintf("%s%s_PID%d_%s.log",
		FilePrefix,
		now.Format("20060102_150405.000"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *fileLogger) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *fileLogger) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

func (l *fileLogger) With(args ...any) Logger {
	return &fileLogger{clogger: l.clogger.With(args...), file: l.file}
}

func (l *fileLogger) Shutdown() error {
	return l.file.close()
}

// noopLogger is a logger that discards all output.
type noopLogger struct{}

func (n noopLogger) Debug(msg string, args ...any) {}
func (n noopLogger) Info(msg string, args ...any)  {}
func (n noopLogger) Warn(msg string, args ...any)  {}
func (n noopLogger) Error(msg string, args ...any) {}
func (n noopLogger) With(args ...any) Logger       { return n }
func (n noopLogger) Shutdown() error               { return nil }

var (
	globalLogger   Logger
	globalLoggerMu sync.RWMutex
)

// InitGlobal replaces the global logger with one built from the global
// configuration and mirrors console output into it.
func InitGlobal() error {
	l, err := Init(FromGlobalConfig())
	if err != nil {
		return err
	}
	globalLoggerMu.Lock()
	prev := globalLogger
	globalLogger = l
	globalLoggerMu.Unlock()
	if prev != nil {
		prev.Shutdown()
	}

	colors.SetLogger(l)
	if path := CurrentLogFile(); path != "" {
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// GetGlobal returns the global logger, or a no-op logger if not initialized.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) {
	GetGlobal().Debug(msg, args...)
}

// Info logs an info message using the global logger.
func Info(msg string, args ...any) {
	GetGlobal().Info(msg, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) {
	GetGlobal().Warn(msg, args...)
}

// Error logs an error message using the global logger.
func Error(msg string, args ...any) {
	GetGlobal().Error(msg, args...)
}

// With returns a new global logger with additional key-value pairs.
func With(args ...any) Logger {
	return GetGlobal().With(args...)
}

// ShutdownGlobal closes the global logger and detaches it from console output.
func ShutdownGlobal() error {
	globalLoggerMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalLoggerMu.Unlock()
	if l == nil {
		return nil
	}
	colors.SetLogger(nil)
	return l.Shutdown()
}

// CurrentLogFile returns the path of the active log file, or "" when file
// logging is off.
func CurrentLogFile() string {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if fl, ok := globalLogger.(*fileLogger); ok {
		return fl.file.path
	}
	return ""
}
