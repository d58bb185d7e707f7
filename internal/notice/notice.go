// Package notice routes user-facing messages either to the console or to a
// buffer the terminal UI draws from.
package notice

import (
	"sync"
	"time"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/cristianoliveira/glide/internal/logging"
)

// Handler receives user-facing messages.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// Console prints messages with the colors package.
type Console struct{}

var (
	_ Handler = Console{}
	_ Handler = (*Buffer)(nil)
)

func (Console) Error(msg string)   { colors.Error(msg) }
func (Console) Warning(msg string) { colors.Warning(msg) }
func (Console) Info(msg string)    { colors.Info(msg) }

// Level is the severity of a Message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	default:
		return "info"
	}
}

// Message is one buffered notice.
type Message struct {
	Text      string
	Level     Level
	Timestamp time.Time
}

// Buffer keeps messages for display and mirrors them to the file logger,
// since nothing reaches the console while a full-screen program runs.
type Buffer struct {
	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
	onNotice func(Message)
}

// NewBuffer creates a buffer. onNotice, when set, runs after each message.
func NewBuffer(now func() time.Time, onNotice func(Message)) *Buffer {
	if now == nil {
		now = time.Now
	}
	return &Buffer{now: now, onNotice: onNotice}
}

func (b *Buffer) Error(msg string) {
	logging.Error(msg, "source", "notice")
	b.add(msg, LevelError)
}

func (b *Buffer) Warning(msg string) {
	logging.Warn(msg, "source", "notice")
	b.add(msg, LevelWarning)
}

func (b *Buffer) Info(msg string) {
	logging.Info(msg, "source", "notice")
	b.add(msg, LevelInfo)
}

func (b *Buffer) add(text string, level Level) {
	b.mu.Lock()
	m := Message{Text: text, Level: level, Timestamp: b.now()}
	b.messages = append(b.messages, m)
	cb := b.onNotice
	b.mu.Unlock()

	if cb != nil {
		cb(m)
	}
}

// Latest returns the newest message.
func (b *Buffer) Latest() (Message, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.messages) == 0 {
		return Message{}, false
	}
	return b.messages[len(b.messages)-1], true
}

// All returns a copy of every buffered message, oldest first.
func (b *Buffer) All() []Message {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}

// Clear drops every buffered message.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
}
