package config

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// Limits applied by Validate.
const (
	MinPairs = 2
	MaxPairs = 8
	MinLevel = 1
	MaxLevel = 5
)

// DefaultGamesConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultGamesConfig() GamesConfig {
	return GamesConfig{
		Cryptogram: CryptogramConfig{
			Hints:        3,
			ShowMistakes: true,
			FlashMS:      600,
		},
		Unscramble: UnscrambleConfig{
			Hints:          2,
			FlashMS:        700,
			MinWordLetters: 2,
		},
		FirstLetter: FirstLetterConfig{
			Level:   3,
			Hints:   3,
			FlashMS: 500,
		},
		Dictation: DictationConfig{
			Hints:   5,
			FlashMS: 400,
		},
		RefMatch: RefMatchConfig{
			Pairs:            4,
			CorrectDelayMS:   800,
			IncorrectDelayMS: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGamesYAML
}

// Validate clamps out-of-range values into playable ones. Zero or negative
// durations fall back to the defaults.
func (c *GamesConfig) Validate() {
	def := DefaultGamesConfig()

	c.Cryptogram.Hints = max(c.Cryptogram.Hints, 0)
	c.Unscramble.Hints = max(c.Unscramble.Hints, 0)
	c.FirstLetter.Hints = max(c.FirstLetter.Hints, 0)
	c.Dictation.Hints = max(c.Dictation.Hints, 0)

	c.Cryptogram.FlashMS = positiveOr(c.Cryptogram.FlashMS, def.Cryptogram.FlashMS)
	c.Unscramble.FlashMS = positiveOr(c.Unscramble.FlashMS, def.Unscramble.FlashMS)
	c.FirstLetter.FlashMS = positiveOr(c.FirstLetter.FlashMS, def.FirstLetter.FlashMS)
	c.Dictation.FlashMS = positiveOr(c.Dictation.FlashMS, def.Dictation.FlashMS)
	c.RefMatch.CorrectDelayMS = positiveOr(c.RefMatch.CorrectDelayMS, def.RefMatch.CorrectDelayMS)
	c.RefMatch.IncorrectDelayMS = positiveOr(c.RefMatch.IncorrectDelayMS, def.RefMatch.IncorrectDelayMS)

	c.Unscramble.MinWordLetters = max(c.Unscramble.MinWordLetters, 2)
	c.FirstLetter.Level = min(max(c.FirstLetter.Level, MinLevel), MaxLevel)
	c.RefMatch.Pairs = min(max(c.RefMatch.Pairs, MinPairs), MaxPairs)
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
