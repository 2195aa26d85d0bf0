package main

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/storage"
)

// seed writes a leaderboard and completion history into the test database.
func seed(t *testing.T) {
	t.Helper()
	e, err := loadEnv(io.Discard, "test")
	require.NoError(t, err)
	defer e.Close()

	now := time.UnixMilli(1_700_000_000_000)
	e.board.RecordStart("low")
	e.board.RecordStart("high")
	e.board.RecordCompletion("high", 4, now)
	e.board.Save(e.store.SaveLeaderboard)

	for _, c := range []storage.Completion{
		{RunID: "r1", Player: "high", Level: 1, Attempts: 2, Hints: 1, Duration: 30 * time.Second},
		{RunID: "r1", Player: "high", Level: 2, Attempts: 1, Duration: 15 * time.Second},
		{RunID: "r2", Player: "low", Level: 1, Attempts: 5, Duration: time.Minute},
	} {
		_, err := e.backend.SaveCompletion(c)
		require.NoError(t, err)
	}
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		flagRanked = false
		flagStatsLimit = 10
	})
}

func TestLeaderboardCommand(t *testing.T) {
	isolate(t)
	resetFlags(t)

	require.Contains(t, execute(t, "leaderboard"), "No players yet.")

	seed(t)
	out := execute(t, "leaderboard")
	require.Less(t, strings.Index(out, "low"), strings.Index(out, "high"), "insertion order by default")
	require.Regexp(t, `low\s+1\s+-`, out)
	require.Regexp(t, `high\s+5\s+\d{4}-`, out)
}

func TestLeaderboardRankedCommand(t *testing.T) {
	isolate(t)
	resetFlags(t)
	seed(t)

	out := execute(t, "leaderboard", "--ranked")
	require.Less(t, strings.Index(out, "high"), strings.Index(out, "low"))
}

func TestLevelsCommand(t *testing.T) {
	isolate(t)

	out := execute(t, "levels")
	require.Contains(t, out, "40 levels")
	require.Regexp(t, `1\s+numberPattern\s+-\s+Number Pattern`, out)
	require.Regexp(t, `5\s+maze\s+30s`, out)
	require.Regexp(t, `riddle\s+36`, out)
}

func TestStatsCommand(t *testing.T) {
	isolate(t)
	resetFlags(t)

	require.Contains(t, execute(t, "stats"), "No completions recorded yet.")

	seed(t)
	out := execute(t, "stats")
	require.Regexp(t, `high\s+2\s+2\s+3\s+1\s+45s`, out)
	require.Regexp(t, `low\s+1\s+1\s+5\s+0\s+1m0s`, out)
	require.Less(t, strings.Index(out, "high"), strings.Index(out, "low"), "players sorted by name")
}

func TestStatsPlayerCommand(t *testing.T) {
	isolate(t)
	resetFlags(t)
	seed(t)

	out := execute(t, "stats", "high", "--limit", "1")
	require.Contains(t, out, "high: 2 levels solved, highest 2")
	require.Equal(t, 1, strings.Count(out, "\n  1  ")+strings.Count(out, "\n  2  "), "limit caps the listing")

	require.Contains(t, execute(t, "stats", "nobody"), "nobody has not completed any level yet.")
}
