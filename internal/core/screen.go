package core

import "strings"

// Cell is a single character on a Board with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Board is a fixed-size 2D cell buffer that puzzle views draw into.
// It decouples board layout from the terminal: views set runes and colors,
// the platform turns rows of cells into styled strings.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates a board filled with blank cells.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	b.Clear()
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Clear fills the board with uncolored spaces.
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, r rune, c Color) {
	if !P(x, y).Within(b.width, b.height) {
		return
	}
	b.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Board) Get(x, y int) Cell {
	if !P(x, y).Within(b.width, b.height) {
		return Cell{Rune: ' '}
	}
	return b.cells[y][x]
}

// String returns the board without colors, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
