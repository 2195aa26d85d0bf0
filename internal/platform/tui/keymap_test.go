package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/core"
	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"down", core.ActionDown},
		{"left", core.ActionLeft},
		{"right", core.ActionRight},
		{"enter", core.ActionConfirm},
		{"space", core.ActionMark},
		{"ctrl+t", core.ActionHint},
		{"ctrl+p", core.ActionPause},
		{"ctrl+s", core.ActionShuffle},
		{"ctrl+r", core.ActionRestartTimer},
		{"ctrl+g", core.ActionChat},
		{"ctrl+l", core.ActionLeaderboard},
		{"esc", core.ActionBack},
		{"ctrl+c", core.ActionQuit},
		{"h", core.ActionNone},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.Equal(t, tt.want, km.MapKey(keyMsg(tt.key)))
		})
	}
}

func TestRenderBoardKeepsShape(t *testing.T) {
	b := core.NewBoard(5, 3)
	b.Set(0, 0, '#', core.ColorWall)
	b.Set(1, 0, '@', core.ColorPlayer)
	b.Set(4, 2, 'G', core.ColorGoal)

	out := RenderBoard(b)
	require.Equal(t, 5, lipgloss.Width(out))
	require.Equal(t, 3, lipgloss.Height(out))
	require.Len(t, strings.Split(out, "\n"), 3)
}

func TestLeaderboardRows(t *testing.T) {
	rows := LeaderboardRows([]leaderboard.Entry{
		{Name: "Ada", Level: 3, Time: 1_700_000_000_000},
		{Name: "Bob", Level: 1},
	}, "Bob")

	require.Len(t, rows, 2)
	require.Equal(t, "1", rows[0][0])
	require.Equal(t, "Ada", rows[0][1])
	require.Equal(t, "3", rows[0][2])
	require.NotEqual(t, "-", rows[0][3])
	require.Equal(t, "▸ Bob", rows[1][1])
	require.Equal(t, "-", rows[1][3])
}

func TestLeaderboardRankedToggle(t *testing.T) {
	board := leaderboard.New([]leaderboard.Entry{
		{Name: "Low", Level: 1},
		{Name: "High", Level: 5, Time: 10},
	})
	m := NewLeaderboardModel(board, "", 80, 24)
	require.Equal(t, "Low", m.Rows()[0][1])

	m, _ = m.Update(keyMsg("r"))
	require.Equal(t, "High", m.Rows()[0][1])
	require.Contains(t, m.View(), "(ranked)")

	m, _ = m.Update(keyMsg("esc"))
	require.True(t, m.Done())
}
