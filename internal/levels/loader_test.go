package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const firstFile = `
levels:
  - id: 1
    kind: numberPattern
    title: Doubles
    sequence: [1, 2, 4]
    answers: ["8"]
  - id: 2
    kind: maze
    title: Tiny
    grid:
      - [0, 0]
    start: {x: 0, y: 0}
    goal: {x: 1, y: 0}
    timed: true
    time_limit: 5
`

const secondFile = `
levels:
  - id: 3
    kind: wordScramble
    title: Scramble
    scrambled: TAC
    answers: [cat, act]
fill:
  through: 5
  title: "Bonus %d"
  riddle: Type ok
  answers: [ok]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cat.Total() != 40 {
		t.Errorf("expected 40 levels, got %d", cat.Total())
	}
}

func TestLoadDirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-first.yaml", firstFile)
	writeFile(t, dir, "02-second.yml", secondFile)
	writeFile(t, dir, "README.txt", "ignored")

	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(dir) failed: %v", err)
	}

	if cat.Total() != 5 {
		t.Fatalf("expected 5 levels, got %d", cat.Total())
	}
	if cat.Get(2).Kind() != KindMaze {
		t.Errorf("level 2 kind = %q, want maze", cat.Get(2).Kind())
	}
	if !cat.Get(3).CheckAnswer("act") {
		t.Error("level 3 should accept 'act'")
	}
	if cat.Get(5).Title != "Bonus 5" {
		t.Errorf("fill title = %q, want 'Bonus 5'", cat.Get(5).Title)
	}
}

func TestLoadSingleFileWithGap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gap.yaml", secondFile)

	if _, err := Load(path); err == nil {
		t.Error("expected error for catalog starting at level 3")
	}
}

func TestLoadMissingPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "levels: [",
		"unknown kind":  "levels:\n  - id: 1\n    kind: sudoku\n",
		"maze no goal":  "levels:\n  - id: 1\n    kind: maze\n    grid: [[0, 0]]\n    start: {x: 0, y: 0}\n",
		"bad predicate": "levels:\n  - id: 1\n    kind: riddle\n    riddle: x\n    expr: 'answer =='\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(doc)); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestFillTitles(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"", "Level 3"},
		{"Stage %d", "Stage 3"},
		{"Bonus", "Bonus 3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			doc := "levels:\n  - id: 1\n    kind: riddle\n    riddle: x\n    answers: [x]\n" +
				"fill:\n  through: 3\n  title: \"" + tt.title + "\"\n  riddle: r\n  answers: [next]\n"
			lvls, err := ParseYAML([]byte(doc))
			if err != nil {
				t.Fatalf("ParseYAML: %v", err)
			}
			if len(lvls) != 3 {
				t.Fatalf("got %d levels, want 3", len(lvls))
			}
			if got := lvls[2].Title; got != tt.want {
				t.Errorf("title = %q, want %q", got, tt.want)
			}
		})
	}
}
