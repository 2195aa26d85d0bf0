package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crispy-forty/internal/core"
)

// YAMLCatalog is the on-disk structure of a catalog file.
type YAMLCatalog struct {
	Levels []YAMLLevel `yaml:"levels"`
	Fill   *YAMLFill   `yaml:"fill,omitempty"`
}

// YAMLLevel is a flat level record; which payload fields apply depends on Kind.
type YAMLLevel struct {
	ID           int    `yaml:"id"`
	Kind         Kind   `yaml:"kind"`
	Title        string `yaml:"title"`
	Instructions string `yaml:"instructions"`
	Hint         string `yaml:"hint"`
	Timed        bool   `yaml:"timed,omitempty"`
	TimeLimit    int    `yaml:"time_limit,omitempty"`

	// Answer predicate (text-answer kinds)
	Answers []string `yaml:"answers,omitempty"`
	Expr    string   `yaml:"expr,omitempty"`

	// numberPattern
	Sequence []int `yaml:"sequence,omitempty"`
	// wordScramble
	Scrambled string `yaml:"scrambled,omitempty"`
	// riddle
	Riddle string `yaml:"riddle,omitempty"`
	// spotDifference
	Left        []string     `yaml:"left,omitempty"`
	Right       []string     `yaml:"right,omitempty"`
	Differences []core.Point `yaml:"differences,omitempty"`
	Tolerance   int          `yaml:"tolerance,omitempty"`
	// maze: 1 is a wall, 0 is open
	Grid  [][]int     `yaml:"grid,omitempty"`
	Start *core.Point `yaml:"start,omitempty"`
	Goal  *core.Point `yaml:"goal,omitempty"`
}

// YAMLFill generates placeholder riddle levels after the explicit ones,
// up to and including level Through. Title may contain a %d verb for the id.
type YAMLFill struct {
	Through      int      `yaml:"through"`
	Title        string   `yaml:"title"`
	Instructions string   `yaml:"instructions"`
	Riddle       string   `yaml:"riddle"`
	Hint         string   `yaml:"hint"`
	Answers      []string `yaml:"answers"`
}

// ParseYAML parses a catalog document into levels, expanding any fill block.
// The result is not yet validated as a catalog; pass it to New.
func ParseYAML(data []byte) ([]Level, error) {
	var doc YAMLCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.build()
}

func (doc YAMLCatalog) build() ([]Level, error) {
	out := make([]Level, 0, len(doc.Levels))
	maxID := 0
	for _, yl := range doc.Levels {
		lvl, err := yl.toLevel()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", yl.ID, err)
		}
		out = append(out, lvl)
		maxID = max(maxID, yl.ID)
	}

	if doc.Fill != nil {
		for id := maxID + 1; id <= doc.Fill.Through; id++ {
			yl := YAMLLevel{
				ID:           id,
				Kind:         KindRiddle,
				Title:        fillTitle(doc.Fill.Title, id),
				Instructions: doc.Fill.Instructions,
				Hint:         doc.Fill.Hint,
				Riddle:       doc.Fill.Riddle,
				Answers:      doc.Fill.Answers,
			}
			lvl, err := yl.toLevel()
			if err != nil {
				return nil, fmt.Errorf("fill level %d: %w", id, err)
			}
			out = append(out, lvl)
		}
	}

	return out, nil
}

func (yl YAMLLevel) toLevel() (Level, error) {
	checker, err := NewChecker(yl.Answers, yl.Expr)
	if err != nil {
		return Level{}, err
	}

	lvl := Level{
		ID:           yl.ID,
		Title:        yl.Title,
		Instructions: yl.Instructions,
		Hint:         yl.Hint,
		Timed:        yl.Timed,
		TimeLimit:    yl.TimeLimit,
		checker:      checker,
	}

	switch yl.Kind {
	case KindNumberPattern:
		lvl.Payload = NumberPattern{Sequence: yl.Sequence}
	case KindWordScramble:
		lvl.Payload = WordScramble{Scrambled: yl.Scrambled}
	case KindRiddle:
		lvl.Payload = Riddle{Text: yl.Riddle}
	case KindSpotDifference:
		diffs := yl.Differences
		if len(diffs) == 0 {
			diffs = diffCells(yl.Left, yl.Right)
		}
		lvl.Payload = SpotDifference{
			Left:        yl.Left,
			Right:       yl.Right,
			Differences: diffs,
			Tolerance:   yl.Tolerance,
		}
	case KindMaze:
		if yl.Start == nil || yl.Goal == nil {
			return Level{}, fmt.Errorf("maze needs start and goal")
		}
		walls := make([][]bool, len(yl.Grid))
		for y, row := range yl.Grid {
			walls[y] = make([]bool, len(row))
			for x, v := range row {
				walls[y][x] = v == 1
			}
		}
		lvl.Payload = Maze{Walls: walls, Start: *yl.Start, Goal: *yl.Goal}
	default:
		return Level{}, fmt.Errorf("unknown kind %q", yl.Kind)
	}

	return lvl, nil
}

// fillTitle numbers a generated level. A title with a %d verb is used as
// the format; any other title gets the id appended.
func fillTitle(title string, id int) string {
	switch {
	case title == "":
		return fmt.Sprintf("Level %d", id)
	case strings.Contains(title, "%d"):
		return fmt.Sprintf(title, id)
	default:
		return fmt.Sprintf("%s %d", title, id)
	}
}
