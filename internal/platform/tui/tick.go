// Package tui provides the Bubble Tea front end: the home menu, one screen
// per puzzle kind, the leaderboard, the help chat, and the SSH server that
// serves the same model to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crispy-forty/internal/timer"
)

// TickMsg delivers one countdown second for the countdown armed with Token.
type TickMsg struct {
	Token timer.Token
	At    time.Time
}

// tickCmd schedules the next countdown tick one second from now.
func tickCmd(tok timer.Token) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Token: tok, At: t}
	})
}

// feedbackClearMsg hides the "try again" line if nothing replaced it.
type feedbackClearMsg struct{ seq int }

func clearFeedbackCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return feedbackClearMsg{seq: seq}
	})
}
