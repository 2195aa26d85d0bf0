// Package core provides the small value types shared by the puzzle logic and
// the terminal front end. It has no external dependencies so puzzle rules stay
// pure and testable.
package core

// Point is a cell position on a puzzle board. X grows to the right, Y grows
// downwards, matching row-major board data.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// P is shorthand for constructing a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by d.
func (p Point) Add(d Dir) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Within reports whether p lies inside a w x h board.
func (p Point) Within(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// ChebyshevDist returns the king-move distance between two points.
func (p Point) ChebyshevDist(o Point) int {
	return Max(Abs(p.X-o.X), Abs(p.Y-o.Y))
}

// Dir is one of the four board directions.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
