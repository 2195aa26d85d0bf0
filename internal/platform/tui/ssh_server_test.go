package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
	"github.com/vovakirdan/crispy-forty/internal/levels"
	"github.com/vovakirdan/crispy-forty/internal/persist"
	"github.com/vovakirdan/crispy-forty/internal/storage"
)

func TestUserModelsKeepSeparateProgress(t *testing.T) {
	lvls, err := levels.ParseYAML([]byte(testCatalog))
	require.NoError(t, err)
	cat, err := levels.New(lvls)
	require.NoError(t, err)

	mem := storage.NewMemory()
	board := leaderboard.New(nil)
	srv := &SSHServer{
		shared: Shared{
			Catalog: cat,
			Board:   board,
			Store:   persist.New(mem, persist.DefaultKeys(), nil),
			History: mem,
		},
		logger: log.New(io.Discard),
	}

	ada := srv.NewUserModel("ada", 80, 24)
	bob := srv.NewUserModel("bob", 80, 24)
	require.Equal(t, "ada", ada.Session().Player())
	require.Equal(t, "bob", bob.Session().Player())

	ada = press(ada, "enter", "8", "enter")
	bob = press(bob, "enter")
	require.Equal(t, []int{1}, ada.Session().Completed())
	require.Empty(t, bob.Session().Completed())

	// Both rows land on the one shared board
	require.Equal(t, 2, board.Len())
	entry, ok := board.Get("ada")
	require.True(t, ok)
	require.Equal(t, 2, entry.Level)

	// A reconnect picks up the user's own record
	again := srv.NewUserModel("ada", 80, 24)
	lvl, ok := again.Session().CanResume()
	require.True(t, ok)
	require.Equal(t, 1, lvl)
	require.Contains(t, mem.Keys(), "ada:crispyFortyGameState")
	require.Contains(t, mem.Keys(), "bob:crispyFortyGameState")
}
