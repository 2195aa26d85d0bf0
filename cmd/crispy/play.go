package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crispy-forty/internal/game"
	"github.com/vovakirdan/crispy-forty/internal/platform/tui"
)

var flagSeed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Enter       - Submit answer / continue
  Arrows      - Move (mazes, pictures)
  Space       - Mark a difference
  Ctrl+T      - Use a hint
  Ctrl+P      - Pause / resume
  Ctrl+S      - Reshuffle letters
  Ctrl+R      - Restart the timer after it runs out
  Ctrl+G      - Help chat
  Ctrl+L      - Leaderboard
  Esc         - Back to menu
  Ctrl+C      - Quit

Examples:
  crispy play
  crispy play --player Ada
  crispy play --catalog ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for letter shuffles (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(nil, "crispy")
	if err != nil {
		return err
	}
	defer e.Close()

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.New(game.Options{
		Catalog:        e.catalog,
		Board:          e.board,
		Store:          e.store,
		History:        e.backend,
		Player:         flagPlayer,
		HintsAvailable: e.cfg.Game.HintsAvailable,
		Logger:         e.logger.WithPrefix("crispy/game"),
	})
	e.logger.Info("session ready", "player", session.Player(), "levels", e.catalog.Total(), "run", session.RunID())

	return tui.Run(tui.Options{
		Session:   session,
		Assistant: e.assistant(),
		MinDelay:  e.cfg.Assistant.MinDelay,
		MaxDelay:  e.cfg.Assistant.MaxDelay,
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    e.logger,
		Width:     width,
		Height:    height,
	})
}
