package tui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crispy-forty/internal/core"
	"github.com/vovakirdan/crispy-forty/internal/levels"
	"github.com/vovakirdan/crispy-forty/internal/puzzle"
)

// pictureGap is the number of columns between the two spot-the-difference pictures.
const pictureGap = 4

// levelView holds the interaction state of one level attempt. Exactly one
// of the kind-specific fields is set, chosen by the payload type.
type levelView struct {
	level *levels.Level

	scramble *puzzle.Scramble
	maze     *puzzle.Maze
	finder   *puzzle.DifferenceFinder
}

func newLevelView(lvl *levels.Level, rng *rand.Rand) *levelView {
	v := &levelView{level: lvl}
	switch p := lvl.Payload.(type) {
	case levels.NumberPattern, levels.Riddle:
	case levels.WordScramble:
		v.scramble = puzzle.NewScramble(p.Scrambled, rng)
	case levels.Maze:
		v.maze = puzzle.NewMaze(p)
	case levels.SpotDifference:
		v.finder = puzzle.NewDifferenceFinder(p)
	default:
		panic(fmt.Sprintf("tui: no view for level kind %q", lvl.Kind()))
	}
	return v
}

// handle applies a puzzle action and reports whether it solved the level.
// Text-answer levels are solved through the session instead.
func (v *levelView) handle(a core.Action) (solved bool) {
	switch {
	case v.maze != nil:
		if d := a.Dir(); d != core.DirNone {
			_, solved = v.maze.Move(d)
		}
	case v.finder != nil:
		switch a {
		case core.ActionMark, core.ActionConfirm:
			_, solved = v.finder.MarkCursor()
		default:
			if d := a.Dir(); d != core.DirNone {
				v.finder.MoveCursor(d)
			}
		}
	case v.scramble != nil:
		if a == core.ActionShuffle {
			v.scramble.Reshuffle()
		}
	}
	return solved
}

// render draws the puzzle body.
func (v *levelView) render() string {
	switch p := v.level.Payload.(type) {
	case levels.NumberPattern:
		parts := make([]string, 0, len(p.Sequence)+1)
		for _, n := range p.Sequence {
			parts = append(parts, strconv.Itoa(n))
		}
		parts = append(parts, accentStyle.Render("?"))
		return panelStyle.Render(strings.Join(parts, ", "))

	case levels.WordScramble:
		tiles := make([]string, 0, len(v.scramble.Letters()))
		for _, l := range v.scramble.Letters() {
			tiles = append(tiles, tileStyle.Render(l))
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, spaced(tiles)...)

	case levels.Riddle:
		return panelStyle.Width(56).Render(p.Text)

	case levels.Maze:
		status := subtitleStyle.Render(fmt.Sprintf("moves: %d", v.maze.Moves()))
		return lipgloss.JoinVertical(lipgloss.Center, panelStyle.Render(RenderBoard(v.maze.Draw())), status)

	case levels.SpotDifference:
		status := subtitleStyle.Render(fmt.Sprintf("found %d of %d differences", v.finder.Found(), v.finder.Total()))
		return lipgloss.JoinVertical(lipgloss.Center, panelStyle.Render(RenderBoard(v.finder.Draw(pictureGap))), status)

	default:
		panic(fmt.Sprintf("tui: no renderer for level kind %q", v.level.Kind()))
	}
}

func spaced(items []string) []string {
	out := make([]string, 0, len(items)*2)
	for i, s := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, s)
	}
	return out
}
