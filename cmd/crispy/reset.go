package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagResetLeaderboard bool
	flagResetUser        string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved progress",
	Long: `Delete the saved game so the next run starts at level 1.

With --user, reset the progress of an SSH user instead of the local game.
With --leaderboard, also clear the shared leaderboard.

Examples:
  crispy reset
  crispy reset --user ada
  crispy reset --leaderboard`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetLeaderboard, "leaderboard", false, "Also clear the leaderboard")
	resetCmd.Flags().StringVar(&flagResetUser, "user", "", "Reset progress saved for this SSH user")
}

func runReset(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	e, err := loadEnv(os.Stderr, "crispy")
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.store
	who := "local game"
	if flagResetUser != "" {
		store = store.Namespace(flagResetUser)
		who = "SSH user " + flagResetUser
	}

	store.ClearProgress()
	fmt.Fprintf(w, "Progress cleared for %s.\n", who)

	if flagResetLeaderboard {
		store.ClearLeaderboard()
		fmt.Fprintln(w, "Leaderboard cleared.")
	}
	return nil
}
