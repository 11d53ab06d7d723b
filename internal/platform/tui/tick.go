// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, audio and config delivery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ReloadMsg carries a config reload from the watcher.
type ReloadMsg config.Reload

// tickCmd returns a Bubble Tea command that sends a tick message after one
// period at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForReload returns a command that blocks until the next reload.
// It yields nil once the channel is closed.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadMsg(r)
	}
}
