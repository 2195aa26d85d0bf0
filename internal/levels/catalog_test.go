package levels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/core"
)

func riddle(id int, answer string) Level {
	c, _ := NewChecker([]string{answer}, "")
	return Level{ID: id, Title: "r", Payload: Riddle{Text: "?"}, checker: c}
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, 40, cat.Total())

	counts := cat.KindCounts()
	require.Equal(t, 1, counts[KindNumberPattern])
	require.Equal(t, 1, counts[KindWordScramble])
	require.Equal(t, 1, counts[KindSpotDifference])
	require.Equal(t, 1, counts[KindMaze])
	require.Equal(t, 36, counts[KindRiddle])

	for i, lvl := range cat.Levels() {
		require.Equal(t, i+1, lvl.ID)
	}

	maze := cat.Get(5)
	require.True(t, maze.Timed)
	require.Equal(t, 30, maze.TimeLimit)
	require.False(t, maze.TextAnswer())

	spot, ok := cat.Get(3).Payload.(SpotDifference)
	require.True(t, ok)
	require.ElementsMatch(t, []core.Point{core.P(7, 1), core.P(8, 3), core.P(8, 4)}, spot.Differences)

	require.Equal(t, "Level 6", cat.Get(6).Title)
	require.True(t, cat.Get(40).CheckAnswer("next"))
}

func TestDefaultCatalogAnswers(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	tests := []struct {
		level  int
		answer string
		want   bool
	}{
		{1, "64", true},
		{1, "32", false},
		{2, "puzzle", true},
		{2, "PUZZLE", false}, // predicates see normalized input only
		{4, "echo", true},
		{4, "an echo", true},
		{4, "wind", false},
		{3, "anything", false},
		{5, "anything", false},
	}

	for _, tt := range tests {
		got := cat.Get(tt.level).CheckAnswer(tt.answer)
		require.Equalf(t, tt.want, got, "level %d answer %q", tt.level, tt.answer)
	}
}

func TestCatalogGetOutOfRange(t *testing.T) {
	cat, err := New([]Level{riddle(1, "a")})
	require.NoError(t, err)

	require.Nil(t, cat.Get(0))
	require.Nil(t, cat.Get(2))
	require.False(t, cat.Valid(0))
	require.True(t, cat.Valid(1))
}

func TestNewSortsByID(t *testing.T) {
	cat, err := New([]Level{riddle(2, "b"), riddle(1, "a")})
	require.NoError(t, err)
	require.True(t, cat.Get(1).CheckAnswer("a"))
	require.True(t, cat.Get(2).CheckAnswer("b"))
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	timedNoLimit := riddle(1, "a")
	timedNoLimit.Timed = true

	limitNoTimed := riddle(1, "a")
	limitNoTimed.TimeLimit = 10

	noAnswer := Level{ID: 1, Payload: Riddle{Text: "?"}}

	mazeWithAnswer := Level{
		ID: 1,
		Payload: Maze{
			Walls: [][]bool{{false, false}},
			Start: core.P(0, 0),
			Goal:  core.P(1, 0),
		},
		checker: riddle(1, "a").checker,
	}

	tests := []struct {
		name string
		lvls []Level
	}{
		{"empty", nil},
		{"gap", []Level{riddle(1, "a"), riddle(3, "c")}},
		{"duplicate", []Level{riddle(1, "a"), riddle(1, "b")}},
		{"starts at two", []Level{riddle(2, "a")}},
		{"timed without limit", []Level{timedNoLimit}},
		{"limit without timed", []Level{limitNoTimed}},
		{"text level without answer", []Level{noAnswer}},
		{"maze with answer", []Level{mazeWithAnswer}},
		{"no payload", []Level{{ID: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.lvls)
			require.Error(t, err)
		})
	}
}

func TestMazeValidation(t *testing.T) {
	walls := [][]bool{
		{true, true, true},
		{true, false, false},
		{true, true, true},
	}

	require.NoError(t, Maze{Walls: walls, Start: core.P(1, 1), Goal: core.P(2, 1)}.validate())
	require.Error(t, Maze{Walls: walls, Start: core.P(0, 0), Goal: core.P(2, 1)}.validate(), "start on wall")
	require.Error(t, Maze{Walls: walls, Start: core.P(1, 1), Goal: core.P(5, 1)}.validate(), "goal outside")
	require.Error(t, Maze{Walls: walls, Start: core.P(1, 1), Goal: core.P(1, 1)}.validate(), "start is goal")
	require.Error(t, Maze{Walls: [][]bool{{false, false}, {false}}, Start: core.P(0, 0), Goal: core.P(1, 0)}.validate(), "ragged")
}

func TestSpotDifferenceValidation(t *testing.T) {
	ok := SpotDifference{
		Left:        []string{"ab", "cd"},
		Right:       []string{"ab", "cx"},
		Differences: []core.Point{core.P(1, 1)},
	}
	require.NoError(t, ok.validate())

	ragged := ok
	ragged.Right = []string{"ab", "c"}
	require.Error(t, ragged.validate())

	outside := ok
	outside.Differences = []core.Point{core.P(4, 4)}
	require.Error(t, outside.validate())

	none := ok
	none.Differences = nil
	require.Error(t, none.validate())
}
