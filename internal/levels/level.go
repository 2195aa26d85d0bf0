// Package levels defines the level catalog: an ordered, dense sequence of
// puzzle definitions loaded from YAML. Each level carries exactly one
// kind-specific payload and, for text-answer kinds, an answer predicate.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/crispy-forty/internal/core"
)

// Kind tags the puzzle type of a level.
type Kind string

const (
	KindNumberPattern  Kind = "numberPattern"
	KindWordScramble   Kind = "wordScramble"
	KindSpotDifference Kind = "spotDifference"
	KindRiddle         Kind = "riddle"
	KindMaze           Kind = "maze"
)

// Kinds lists every supported kind in catalog order of introduction.
func Kinds() []Kind {
	return []Kind{KindNumberPattern, KindWordScramble, KindSpotDifference, KindRiddle, KindMaze}
}

// TextAnswer reports whether levels of this kind are solved by typing an
// answer. The other kinds report a solve through direct interaction.
func (k Kind) TextAnswer() bool {
	switch k {
	case KindNumberPattern, KindWordScramble, KindRiddle:
		return true
	default:
		return false
	}
}

// Payload is the kind-specific puzzle data of a level.
// The set of implementations is closed to this package.
type Payload interface {
	Kind() Kind
	validate() error
}

// NumberPattern asks for the next number in a sequence.
type NumberPattern struct {
	Sequence []int
}

func (NumberPattern) Kind() Kind { return KindNumberPattern }

func (p NumberPattern) validate() error {
	if len(p.Sequence) == 0 {
		return errors.New("number pattern needs a sequence")
	}
	return nil
}

// WordScramble asks for the word hidden in scrambled letters.
type WordScramble struct {
	Scrambled string
}

func (WordScramble) Kind() Kind { return KindWordScramble }

func (p WordScramble) validate() error {
	if p.Scrambled == "" {
		return errors.New("word scramble needs scrambled letters")
	}
	return nil
}

// Riddle is a free-text question.
type Riddle struct {
	Text string
}

func (Riddle) Kind() Kind { return KindRiddle }

func (p Riddle) validate() error {
	if p.Text == "" {
		return errors.New("riddle needs text")
	}
	return nil
}

// SpotDifference shows two equally sized character pictures. The player
// marks cells; a mark within Tolerance cells of an unfound difference
// counts as finding it.
type SpotDifference struct {
	Left        []string
	Right       []string
	Differences []core.Point
	Tolerance   int
}

func (SpotDifference) Kind() Kind { return KindSpotDifference }

// Size returns the picture dimensions in cells.
func (p SpotDifference) Size() (w, h int) {
	if len(p.Left) == 0 {
		return 0, 0
	}
	return len([]rune(p.Left[0])), len(p.Left)
}

func (p SpotDifference) validate() error {
	if len(p.Left) == 0 || len(p.Left) != len(p.Right) {
		return errors.New("spot the difference needs two pictures with the same number of rows")
	}
	w, h := p.Size()
	for y := range p.Left {
		if len([]rune(p.Left[y])) != w || len([]rune(p.Right[y])) != w {
			return fmt.Errorf("spot the difference row %d is not %d cells wide", y, w)
		}
	}
	if len(p.Differences) == 0 {
		return errors.New("spot the difference has no differences")
	}
	for _, d := range p.Differences {
		if !d.Within(w, h) {
			return fmt.Errorf("difference %v is outside the %dx%d picture", d, w, h)
		}
	}
	if p.Tolerance < 0 {
		return errors.New("spot the difference tolerance cannot be negative")
	}
	return nil
}

// diffCells returns every cell where the two pictures differ, row-major.
func diffCells(left, right []string) []core.Point {
	var pts []core.Point
	for y := range left {
		if y >= len(right) {
			break
		}
		l, r := []rune(left[y]), []rune(right[y])
		for x := range l {
			if x < len(r) && l[x] != r[x] {
				pts = append(pts, core.P(x, y))
			}
		}
	}
	return pts
}

// Maze is a walled grid with a start and a goal cell.
type Maze struct {
	Walls [][]bool
	Start core.Point
	Goal  core.Point
}

func (Maze) Kind() Kind { return KindMaze }

// Size returns the maze dimensions in cells.
func (m Maze) Size() (w, h int) {
	if len(m.Walls) == 0 {
		return 0, 0
	}
	return len(m.Walls[0]), len(m.Walls)
}

// Open reports whether p is inside the maze and not a wall.
func (m Maze) Open(p core.Point) bool {
	w, h := m.Size()
	return p.Within(w, h) && !m.Walls[p.Y][p.X]
}

func (m Maze) validate() error {
	w, _ := m.Size()
	if w == 0 {
		return errors.New("maze has no cells")
	}
	for y, row := range m.Walls {
		if len(row) != w {
			return fmt.Errorf("maze row %d is not %d cells wide", y, w)
		}
	}
	if !m.Open(m.Start) {
		return fmt.Errorf("maze start %v is not an open cell", m.Start)
	}
	if !m.Open(m.Goal) {
		return fmt.Errorf("maze goal %v is not an open cell", m.Goal)
	}
	if m.Start == m.Goal {
		return errors.New("maze start and goal coincide")
	}
	return nil
}

// Level is one immutable catalog entry.
type Level struct {
	ID           int
	Title        string
	Instructions string
	Hint         string
	Timed        bool
	TimeLimit    int // seconds, > 0 iff Timed
	Payload      Payload

	checker *Checker
}

// Kind returns the puzzle kind of the level.
func (l *Level) Kind() Kind {
	if l.Payload == nil {
		return ""
	}
	return l.Payload.Kind()
}

// TextAnswer reports whether the level is solved by typing an answer.
func (l *Level) TextAnswer() bool {
	return l.Kind().TextAnswer()
}

// CheckAnswer applies the level's predicate to an already normalized answer.
// Levels solved by interaction always return false.
func (l *Level) CheckAnswer(normalized string) bool {
	if l.checker == nil {
		return false
	}
	return l.checker.Match(normalized)
}

// validate checks the level in isolation; catalog-wide rules live in New.
func (l *Level) validate() error {
	if l.Payload == nil {
		return errors.New("missing payload")
	}
	if err := l.Payload.validate(); err != nil {
		return err
	}
	if l.Timed && l.TimeLimit <= 0 {
		return errors.New("timed level needs a positive time limit")
	}
	if !l.Timed && l.TimeLimit != 0 {
		return errors.New("time limit set on an untimed level")
	}
	if l.TextAnswer() && l.checker == nil {
		return fmt.Errorf("%s level needs answers or an expression", l.Kind())
	}
	if !l.TextAnswer() && l.checker != nil {
		return fmt.Errorf("%s level is solved by interaction and cannot take answers", l.Kind())
	}
	return nil
}
