package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crispy-forty/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats [player]",
	Short: "Show completion history",
	Long: `Without a player, summarise every player's completed levels.
With a player, list that player's most recent completions.

Examples:
  crispy stats
  crispy stats Ada --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of completions to show for a player")
}

func runStats(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	e, err := loadEnv(os.Stderr, "crispy")
	if err != nil {
		return err
	}
	defer e.Close()

	if len(args) == 1 {
		return printPlayerStats(w, e.backend, args[0])
	}

	all, err := e.backend.AllPlayerStats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No completions recorded yet.")
		return nil
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %-20s  %-7s  %-7s  %-8s  %-5s  %s\n", "Player", "Solved", "Highest", "Attempts", "Hints", "Time")
	for _, name := range names {
		st := all[name]
		fmt.Fprintf(w, "  %-20s  %-7d  %-7d  %-8d  %-5d  %s\n",
			name, st.Completions, st.HighestLevel, st.TotalAttempts, st.TotalHints, st.TotalTime.Round(time.Second))
	}
	return nil
}

func printPlayerStats(w io.Writer, h storage.History, player string) error {
	st, err := h.PlayerStats(player)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if st.Completions == 0 {
		fmt.Fprintf(w, "%s has not completed any level yet.\n", player)
		return nil
	}

	fmt.Fprintf(w, "%s: %d levels solved, highest %d, last played %s\n\n",
		player, st.Completions, st.HighestLevel, st.LastPlayed.Local().Format("2006-01-02 15:04"))

	recent, err := h.Completions(player, flagStatsLimit)
	if err != nil {
		return fmt.Errorf("reading completions: %w", err)
	}
	fmt.Fprintf(w, "  %-5s  %-8s  %-5s  %-8s  %s\n", "Level", "Attempts", "Hints", "Time", "Date")
	for _, c := range recent {
		fmt.Fprintf(w, "  %-5d  %-8d  %-5d  %-8s  %s\n",
			c.Level, c.Attempts, c.Hints, c.Duration.Round(time.Second), c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
