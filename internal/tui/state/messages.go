package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is delivered once per frame tick while motion is pending.
type frameMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
