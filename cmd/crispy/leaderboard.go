package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRanked bool

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard",
	Long: `Display every player and the level they have reached.

Players are listed in the order they first played. With --ranked they
are sorted by level, ties going to whoever got there first.

Examples:
  crispy leaderboard
  crispy leaderboard --ranked`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&flagRanked, "ranked", false, "Sort by level reached")
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	e, err := loadEnv(os.Stderr, "crispy")
	if err != nil {
		return err
	}
	defer e.Close()

	entries := e.board.Entries()
	if flagRanked {
		entries = e.board.Ranked()
	}

	fmt.Fprintln(w, "Leaderboard")
	fmt.Fprintln(w)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No players yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'crispy play' to get on the board!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-20s  %-5s  %s\n", "#", "Player", "Level", "Updated")
	fmt.Fprintf(w, "  %-4s  %-20s  %-5s  %s\n", "----", "------", "-----", "-------")

	for i, entry := range entries {
		dateStr := "-"
		if t := entry.UpdatedAt(); !t.IsZero() {
			dateStr = t.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-4d  %-20s  %-5d  %s\n", i+1, entry.Name, entry.Level, dateStr)
	}
	return nil
}
