package core

// Action is a semantic player intent, abstracted from physical key presses
// so puzzle views and the session work with high-level actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k
	ActionDown           // Down arrow, j
	ActionLeft           // Left arrow, h
	ActionRight          // Right arrow, l
	ActionConfirm        // Enter - submit answer, continue
	ActionMark           // Space - mark a cell (spot the difference)
	ActionHint           // ctrl+t - request a hint
	ActionPause          // ctrl+p - pause or resume
	ActionShuffle        // ctrl+s - reshuffle scrambled letters
	ActionRestartTimer   // ctrl+r - re-arm an expired countdown
	ActionChat           // ctrl+g - open the help chat
	ActionLeaderboard    // ctrl+l - show the leaderboard
	ActionBack           // esc - go back
	ActionQuit           // ctrl+c - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionMark:
		return "Mark"
	case ActionHint:
		return "Hint"
	case ActionPause:
		return "Pause"
	case ActionShuffle:
		return "Shuffle"
	case ActionRestartTimer:
		return "RestartTimer"
	case ActionChat:
		return "Chat"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Dir returns the board direction for a movement action.
func (a Action) Dir() Dir {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
