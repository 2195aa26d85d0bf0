package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crispy-forty/internal/core"
)

// KeyMap holds the bindings used on every screen. Game commands are on
// ctrl chords so they never collide with typed answers.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Confirm      key.Binding
	Mark         key.Binding
	Hint         key.Binding
	Pause        key.Binding
	Shuffle      key.Binding
	RestartTimer key.Binding
	Chat         key.Binding
	Leaderboard  key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		Hint: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "hint"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pause"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "reshuffle"),
		),
		RestartTimer: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart timer"),
		),
		Chat: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help chat"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Hint, k.Pause, k.Chat, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Mark},
		{k.Confirm, k.Hint, k.Shuffle, k.RestartTimer},
		{k.Pause, k.Chat, k.Leaderboard, k.Back, k.Quit},
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Mark):
		return core.ActionMark
	case key.Matches(msg, k.Hint):
		return core.ActionHint
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Shuffle):
		return core.ActionShuffle
	case key.Matches(msg, k.RestartTimer):
		return core.ActionRestartTimer
	case key.Matches(msg, k.Chat):
		return core.ActionChat
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// levelHelp adapts the key map to the bindings that matter on a level screen.
type levelHelp struct {
	keys     KeyMap
	bindings []key.Binding
}

func (h levelHelp) ShortHelp() []key.Binding  { return h.bindings }
func (h levelHelp) FullHelp() [][]key.Binding { return h.keys.FullHelp() }
