package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcislaughter/bible-cryptogram/internal/platform/tui"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
	"github.com/marcislaughter/bible-cryptogram/internal/storage"
	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

var (
	flagVerse  string
	flagLevel  int
	flagChoose bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A-Z          - Type letters
  Arrows       - Move focus
  Backspace    - Clear
  Enter/Space  - Confirm, next verse when solved
  Tab/?        - Hint
  Ctrl+R       - Restart verse
  Ctrl+S       - Screenshot
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - More hints, fewer hidden words, fewer cards
  normal - Config values as written
  hard   - Fewer hints, more hidden words, more cards
  fixed  - Config values as written, level never changes

Examples:
  versegames play cryptogram
  versegames play cryptogram --verse "John 3:16"
  versegames play firstletter --level 4
  versegames play dictation --verse "Psalm 23"
  versegames play refmatch --difficulty hard
  versegames play unscramble --choose
  versegames play cryptogram --config ./my-games.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagVerse, "verse", "", `Start verse reference, e.g. "John 3:16" (a chapter for dictation)`)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "First-letter level 1-5 (0 = config)")
	playCmd.Flags().BoolVar(&flagChoose, "choose", false, "Pick the start verse from a menu")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'versegames list' to see available games.")
		os.Exit(1)
	}

	if err := applySettings(); err != nil {
		exitErr("%v", err)
	}
	if flagLevel < 0 || flagLevel > 5 {
		exitErr("--level must be between 1 and 5")
	}

	sel := tui.VerseSelection{Level: flagLevel}
	if flagVerse != "" {
		corpus, _ := verse.Load(flagCorpus)
		ref, err := resolveReference(corpus, flagVerse)
		if err != nil {
			exitErr("%v", err)
		}
		sel.Reference = ref
	}

	cfg := runtimeConfig()

	if flagChoose && flagVerse == "" {
		picked, updatedCfg, err := tui.RunVerseSelector(gameID, info.Title, cfg)
		if err != nil {
			exitErr("%v", err)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if picked == nil {
			return
		}
		sel.Reference = picked.Reference
		if flagLevel == 0 {
			sel.Level = picked.Level
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		exitErr("creating game: %v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, sel)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running game: %v", runErr)
	}
}

// resolveReference matches a verse reference, or a chapter whose first
// verse is returned.
func resolveReference(corpus *verse.Corpus, ref string) (string, error) {
	if v, ok := corpus.Lookup(ref); ok {
		return v.Reference, nil
	}
	if verses := corpus.InChapter(strings.TrimSpace(ref)); len(verses) > 0 {
		return verses[0].Reference, nil
	}
	return "", fmt.Errorf("verse %q not found in corpus", ref)
}
