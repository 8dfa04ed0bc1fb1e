package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/merge48/merge48/internal/registry"
	"github.com/merge48/merge48/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board",
	Long: `Display the top scores for the given board variant, with aggregate
stats. Without an argument the config file's default variant is used,
falling back to classic.

Examples:
  merge48 scores
  merge48 scores huge
  merge48 scores classic --limit 25
  merge48 scores --all
  merge48 scores huge --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every board with recorded games")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the board's recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	fileCfg := applyConfig()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		clearScores(store, args)
		return
	}

	if flagScoresAll {
		printAllStats(store)
		return
	}

	// Resolve the variant the same way play does
	variantID := "classic"
	if len(args) > 0 {
		variantID = args[0]
	} else if fileCfg.DefaultVariant != "" {
		variantID = fileCfg.DefaultVariant
	}

	// Scores can outlive their variant registration (ad-hoc boards),
	// so an unknown ID only affects the displayed title.
	title := variantID
	if registry.Exists(variantID) {
		if g, createErr := registry.Create(variantID); createErr == nil {
			title = g.Title()
		}
	}

	// Get top scores
	scores, err := store.TopScores(variantID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'merge48 play %s' to set the first high score!\n", variantID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	// Stats footer
	stats, err := store.GetVariantStats(variantID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  High: %d  Best tile: %d  Avg score: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}

// clearScores deletes recorded scores for one variant, or all of them
// with --all.
func clearScores(store *storage.Store, args []string) {
	if flagScoresAll {
		if err := store.ClearAllScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared all recorded scores.")
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant argument (or --all)")
		os.Exit(1)
	}

	variantID := args[0]
	if err := store.ClearScores(variantID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared recorded scores for %q.\n", variantID)
}

// printAllStats prints one summary line per board with recorded games.
func printAllStats(store *storage.Store) {
	stats, err := store.GetAllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	// Stable output order
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Recorded boards:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-10s  %-6s  %s\n", "Variant", "Games", "High", "Tile", "Last played")
	fmt.Printf("  %-12s  %-6s  %-10s  %-6s  %s\n", "-------", "-----", "----", "----", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %-6d  %-10d  %-6d  %s\n",
			id, st.GamesCount, st.HighScore, st.BestTile, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
