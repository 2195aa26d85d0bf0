// crispy is a forty-level puzzle game for the terminal.
//
// Usage:
//
//	crispy                    - Play (same as crispy play)
//	crispy play               - Play in this terminal
//	crispy serve              - Start SSH server for remote play
//	crispy leaderboard        - Show the leaderboard
//	crispy levels             - List the level catalog
//	crispy stats [player]     - Show completion history
//	crispy reset              - Forget saved progress
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.crispy, ./configs)
//	--db <path>       - Database path (default from config: ~/.crispy/crispy.db)
//	--catalog <path>  - Level catalog file or directory (default: built-in)
//	--player <name>   - Play as this player
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagCatalog string
	flagPlayer  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crispy",
	Short: "Crispy Forty - forty puzzles in your terminal",
	Long: `Crispy Forty is a terminal puzzle game: number patterns, word
scrambles, riddles, spot-the-difference pictures and mazes, one level
after another. Progress is saved, so you can quit and continue later.

Available commands:
  play         - Play in this terminal (default)
  serve        - Start SSH server for remote play
  leaderboard  - Show how far every player got
  levels       - List the level catalog
  stats        - Show completion history
  reset        - Forget saved progress

Examples:
  crispy
  crispy --player Ada
  crispy serve --ssh :2222
  crispy leaderboard --ranked`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Level catalog file or directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}
