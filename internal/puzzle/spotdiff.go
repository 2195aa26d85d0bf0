package puzzle

import (
	"github.com/vovakirdan/crispy-forty/internal/core"
	"github.com/vovakirdan/crispy-forty/internal/levels"
)

// DifferenceFinder tracks which differences of a spot-the-difference level
// have been found, and a cursor the player moves across the picture.
type DifferenceFinder struct {
	def    levels.SpotDifference
	found  []bool
	count  int
	cursor core.Point
}

// NewDifferenceFinder starts with nothing found and the cursor top-left.
func NewDifferenceFinder(def levels.SpotDifference) *DifferenceFinder {
	return &DifferenceFinder{
		def:   def,
		found: make([]bool, len(def.Differences)),
	}
}

// MoveCursor moves the cursor one cell, clamped to the picture.
func (f *DifferenceFinder) MoveCursor(dir core.Dir) {
	w, h := f.def.Size()
	next := f.cursor.Add(dir)
	f.cursor = core.P(core.Clamp(next.X, 0, w-1), core.Clamp(next.Y, 0, h-1))
}

// Cursor returns the cursor position.
func (f *DifferenceFinder) Cursor() core.Point {
	return f.cursor
}

// MarkCursor marks the cell under the cursor.
func (f *DifferenceFinder) MarkCursor() (hit, solved bool) {
	return f.Mark(f.cursor)
}

// Mark records a guess at p. Every unfound difference within the level's
// tolerance of p is marked found. solved is true only for the mark that
// finds the last difference.
func (f *DifferenceFinder) Mark(p core.Point) (hit, solved bool) {
	if f.Solved() {
		return false, false
	}
	for i, d := range f.def.Differences {
		if f.found[i] || d.ChebyshevDist(p) > f.def.Tolerance {
			continue
		}
		f.found[i] = true
		f.count++
		hit = true
	}
	return hit, hit && f.Solved()
}

// Found returns how many differences have been found.
func (f *DifferenceFinder) Found() int {
	return f.count
}

// Total returns how many differences the level has.
func (f *DifferenceFinder) Total() int {
	return len(f.def.Differences)
}

// Solved reports whether every difference has been found.
func (f *DifferenceFinder) Solved() bool {
	return f.count == len(f.def.Differences)
}

// Draw renders both pictures side by side, separated by gap columns, with
// found differences and the cursor highlighted in the right picture.
func (f *DifferenceFinder) Draw(gap int) *core.Board {
	w, h := f.def.Size()
	b := core.NewBoard(w*2+gap, h)
	for y := 0; y < h; y++ {
		left, right := []rune(f.def.Left[y]), []rune(f.def.Right[y])
		for x := 0; x < w; x++ {
			b.Set(x, y, left[x], core.ColorDefault)
			b.Set(w+gap+x, y, right[x], core.ColorDefault)
		}
	}
	for i, d := range f.def.Differences {
		if f.found[i] {
			b.Set(d.X, d.Y, b.Get(d.X, d.Y).Rune, core.ColorFound)
			b.Set(w+gap+d.X, d.Y, b.Get(w+gap+d.X, d.Y).Rune, core.ColorFound)
		}
	}
	c := b.Get(w+gap+f.cursor.X, f.cursor.Y)
	b.Set(w+gap+f.cursor.X, f.cursor.Y, c.Rune, core.ColorCursor)
	return b
}
