// Package puzzle implements the interaction rules of levels that are solved
// by direct manipulation rather than a typed answer. Views feed player
// actions in and report a solve to the session exactly once.
package puzzle

import (
	"github.com/vovakirdan/crispy-forty/internal/core"
	"github.com/vovakirdan/crispy-forty/internal/levels"
)

// Maze tracks the player's position inside a maze level.
type Maze struct {
	def    levels.Maze
	pos    core.Point
	moves  int
	solved bool
}

// NewMaze places the player on the start cell.
func NewMaze(def levels.Maze) *Maze {
	return &Maze{def: def, pos: def.Start}
}

// Move steps one cell in dir. Walls and the board edge block the move.
// solved is true only for the move that first enters the goal.
func (m *Maze) Move(dir core.Dir) (moved, solved bool) {
	if m.solved || dir == core.DirNone {
		return false, false
	}

	next := m.pos.Add(dir)
	if !m.def.Open(next) {
		return false, false
	}

	m.pos = next
	m.moves++
	if m.pos == m.def.Goal {
		m.solved = true
		return true, true
	}
	return true, false
}

// Pos returns the player's current cell.
func (m *Maze) Pos() core.Point {
	return m.pos
}

// Moves returns the number of successful moves.
func (m *Maze) Moves() int {
	return m.moves
}

// Solved reports whether the goal has been reached.
func (m *Maze) Solved() bool {
	return m.solved
}

// Draw renders the maze into a new board.
func (m *Maze) Draw() *core.Board {
	w, h := m.def.Size()
	b := core.NewBoard(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.def.Walls[y][x] {
				b.Set(x, y, '█', core.ColorWall)
			} else {
				b.Set(x, y, '·', core.ColorPath)
			}
		}
	}
	b.Set(m.def.Goal.X, m.def.Goal.Y, '◎', core.ColorGoal)
	b.Set(m.pos.X, m.pos.Y, '●', core.ColorPlayer)
	return b
}
