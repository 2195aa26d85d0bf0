package game

import "time"

// LevelStats tracks effort spent on one level during a session.
type LevelStats struct {
	Attempts  int
	HintsUsed int
	TimeSpent time.Duration
}

// GameStats summarises a session.
type GameStats struct {
	Completed      int
	Total          int
	Current        int
	HintsUsed      int
	HintsAvailable int
	Elapsed        time.Duration
	// Percent is Completed/Total rounded to the nearest whole percent.
	Percent int
}
