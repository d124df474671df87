package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcislaughter/bible-cryptogram/internal/registry"
	"github.com/marcislaughter/bible-cryptogram/internal/storage"
)

var (
	flagScoresVerse string
	flagByVerse     bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show scores for a game",
	Long: `Display the top 10 scores for the specified game.

Examples:
  versegames scores cryptogram
  versegames scores cryptogram --verse "John 3:16"
  versegames scores firstletter --by-verse
  versegames scores refmatch --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresVerse, "verse", "", "Only show scores for this verse")
	scoresCmd.Flags().BoolVar(&flagByVerse, "by-verse", false, "Show the best score of every verse")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'versegames list' to see available games.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
	case flagByVerse:
		printBestByVerse(store, gameID, info.Title)
	default:
		printTopScores(store, gameID, info.Title)
	}
}

func printTopScores(store *storage.Store, gameID, title string) {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresVerse != "" {
		scores, err = store.ScoresForVerse(gameID, flagScoresVerse)
		if len(scores) > 10 {
			scores = scores[:10]
		}
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No verses solved yet.")
		fmt.Println()
		fmt.Printf("Play 'versegames play %s' to record the first score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-24s  %s\n", "Rank", "Score", "Verse", "Date")
	fmt.Printf("  %-4s  %-5s  %-24s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %4d%%  %-24s  %s\n", i+1, entry.Score, entry.Reference, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Solved: %d  Verses: %d  Best: %d%%  Average: %.0f%%\n",
			stats.GamesCount, stats.VersesCount, stats.HighScore, stats.AvgScore)
	}
}

func printBestByVerse(store *storage.Store, gameID, title string) {
	best, err := store.BestVerses(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best per verse - %s\n", title)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No verses solved yet.")
		return
	}

	fmt.Printf("  %-24s  %-4s  %s\n", "Verse", "Best", "Solved")
	fmt.Printf("  %-24s  %-4s  %s\n", "-----", "----", "------")
	for _, v := range best {
		fmt.Printf("  %-24s  %3d%%  %d\n", v.Reference, v.Best, v.Plays)
	}
}
