package core

// Color represents a foreground color for a board cell.
// The front end maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPath
	ColorPlayer
	ColorGoal
	ColorFound
	ColorCursor
	ColorMuted
)
