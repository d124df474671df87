package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

// applySettings validates the corpus, config and difficulty flags and hands
// them to the games. Games fall back to defaults on bad files, so errors are
// caught here instead.
func applySettings() error {
	if _, err := verse.Load(flagCorpus); err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.Load(flagConfig); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	session.SetCorpusPath(flagCorpus)
	session.SetConfigPath(flagConfig)
	session.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// exitErr prints an error and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
