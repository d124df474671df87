// versegames is a terminal platform for Bible verse memorization puzzles.
//
// Usage:
//
//	versegames list              - List available games
//	versegames play <game>       - Play a game
//	versegames menu              - Start menu to pick games interactively
//	versegames serve             - Start SSH server for remote play
//	versegames scores <game>     - Show scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible puzzles
//	--db <path>          - Set database path (default: ~/.versegames/scores.db)
//	--corpus <path>      - Use a custom verse corpus YAML
//	--log-level <level>  - debug, info, warn, error
//
// Every flag can also be set with a VERSEGAMES_<FLAG> variable, read from
// the environment or a .env file (e.g. VERSEGAMES_DB, VERSEGAMES_LOG_LEVEL).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/marcislaughter/bible-cryptogram/internal/games/cryptogram"
	_ "github.com/marcislaughter/bible-cryptogram/internal/games/dictation"
	_ "github.com/marcislaughter/bible-cryptogram/internal/games/firstletter"
	_ "github.com/marcislaughter/bible-cryptogram/internal/games/refmatch"
	_ "github.com/marcislaughter/bible-cryptogram/internal/games/unscramble"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagCorpus   string
	flagLogLevel string

	// Game setting flags (play, menu)
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "versegames",
	Short: "Verse Games - Bible memorization puzzles in your terminal",
	Long: `Verse Games is a terminal platform of word puzzles for memorizing
Bible verses: cryptograms, word unscrambles, first-letter recall, chapter
dictation and reference matching.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View scores

Examples:
  versegames list
  versegames play cryptogram
  versegames play firstletter --level 4 --verse "John 3:16"
  versegames menu
  versegames serve --ssh :2222
  versegames scores refmatch`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyEnv(cmd.Flags()); err != nil {
			return err
		}
		return setupLogging(cmd.Name())
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.versegames/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagCorpus, "corpus", "", "Path to a verse corpus YAML (default: built-in KJV selection)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
