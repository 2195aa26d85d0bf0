package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crispy-forty/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `List every level in the catalog with its kind and time limit.

Examples:
  crispy levels
  crispy levels --catalog ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	catalog, err := levels.Load(catalogPath())
	if err != nil {
		return fmt.Errorf("loading level catalog: %w", err)
	}

	fmt.Fprintf(w, "%d levels\n\n", catalog.Total())
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "ID", "Kind", "Timer", "Title")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "--", "----", "-----", "-----")

	for _, lvl := range catalog.Levels() {
		limit := "-"
		if lvl.Timed {
			limit = fmt.Sprintf("%ds", lvl.TimeLimit)
		}
		fmt.Fprintf(w, "  %-4d  %-16s  %-6s  %s\n", lvl.ID, lvl.Kind(), limit, lvl.Title)
	}

	fmt.Fprintln(w)
	counts := catalog.KindCounts()
	for _, k := range levels.Kinds() {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", k, n)
		}
	}
	return nil
}

// catalogPath resolves the catalog without opening the store.
func catalogPath() string {
	if flagCatalog != "" {
		return flagCatalog
	}
	cfg, err := configOrDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	return cfg.Game.Catalog
}
