package core

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(6, 3)

	if b.Width() != 6 {
		t.Errorf("Width() = %d, expected 6", b.Width())
	}
	if b.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", b.Height())
	}

	for y := range b.Height() {
		for x := range b.Width() {
			if c := b.Get(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("new board should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestBoardSetGet(t *testing.T) {
	b := NewBoard(4, 4)

	b.Set(2, 1, '@', ColorPlayer)
	if c := b.Get(2, 1); c.Rune != '@' || c.Color != ColorPlayer {
		t.Errorf("Get(2, 1) = %+v, expected '@' player", c)
	}

	// Out of bounds is silent
	b.Set(-1, 0, 'A', ColorWall)
	b.Set(4, 0, 'A', ColorWall)
	b.Set(0, 4, 'A', ColorWall)
	if c := b.Get(9, 9); c.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", c.Rune)
	}
}

func TestBoardClearAndString(t *testing.T) {
	b := NewBoard(3, 2)
	b.Set(0, 0, '#', ColorWall)
	b.Set(2, 1, 'G', ColorGoal)

	if got, want := b.String(), "#  \n  G"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	b.Clear()
	if strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", "")) != "" {
		t.Errorf("Clear() left %q", b.String())
	}
}

func TestBoardStringRows(t *testing.T) {
	b := NewBoard(4, 2)
	b.Set(1, 1, '#', ColorWall)

	if got, want := b.String(), "    \n #  "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
