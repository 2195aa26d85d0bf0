package game

// State is the progression state of a session.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateLevelSuccess
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StatePlaying:
		return "playing"
	case StateLevelSuccess:
		return "level success"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Outcome is the result of submitting a typed answer.
type Outcome int

const (
	// Ignored means the answer was not considered: the session is not
	// playing or the level is not solved by typing.
	Ignored Outcome = iota
	Incorrect
	Correct
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "ignored"
	}
}
