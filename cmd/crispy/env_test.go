package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/persist"
	"github.com/vovakirdan/crispy-forty/internal/storage"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	flagConfig, flagCatalog, flagPlayer = "", "", ""
	flagDBPath = filepath.Join(dir, "crispy.db")
	t.Cleanup(func() { flagDBPath = "" })
	return dir
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLoadEnvOpensDatabase(t *testing.T) {
	isolate(t)

	e, err := loadEnv(io.Discard, "test")
	require.NoError(t, err)
	defer e.Close()

	require.IsType(t, &storage.Store{}, e.backend)
	require.Equal(t, 40, e.catalog.Total())
	require.Equal(t, 0, e.board.Len())
	require.Equal(t, persist.DefaultKeys(), e.store.Keys())
}

func TestLoadEnvFallsBackToMemory(t *testing.T) {
	dir := isolate(t)
	// A directory cannot be opened as a database file
	flagDBPath = dir

	e, err := loadEnv(io.Discard, "test")
	require.NoError(t, err)
	defer e.Close()

	require.IsType(t, &storage.Memory{}, e.backend)
}

func TestLoadEnvBadCatalog(t *testing.T) {
	dir := isolate(t)
	flagCatalog = filepath.Join(dir, "missing.yaml")
	t.Cleanup(func() { flagCatalog = "" })

	_, err := loadEnv(io.Discard, "test")
	require.ErrorContains(t, err, "loading level catalog")
}

func TestResetClearsProgress(t *testing.T) {
	isolate(t)

	e, err := loadEnv(io.Discard, "test")
	require.NoError(t, err)
	e.store.SaveProgress(persist.Progress{CurrentLevel: 2, LevelProgress: []int{1}, GameStarted: true})
	e.store.Namespace("ada").SaveProgress(persist.Progress{CurrentLevel: 3, LevelProgress: []int{1, 2}, GameStarted: true})
	e.Close()

	out := execute(t, "reset")
	require.Contains(t, out, "Progress cleared for local game.")

	e, err = loadEnv(io.Discard, "test")
	require.NoError(t, err)
	defer e.Close()

	lim := persist.Limits{Levels: e.catalog.Total(), Hints: 3}
	_, ok := e.store.LoadProgress(lim)
	require.False(t, ok)
	_, ok = e.store.Namespace("ada").LoadProgress(lim)
	require.True(t, ok)
}
