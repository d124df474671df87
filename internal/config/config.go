// Package config provides YAML-based game configuration loading and
// difficulty presets for the verse games.
package config

import "time"

// GamesConfig contains the configuration of every game.
type GamesConfig struct {
	Cryptogram  CryptogramConfig  `yaml:"cryptogram"`
	Unscramble  UnscrambleConfig  `yaml:"unscramble"`
	FirstLetter FirstLetterConfig `yaml:"firstletter"`
	Dictation   DictationConfig   `yaml:"dictation"`
	RefMatch    RefMatchConfig    `yaml:"refmatch"`
}

// CryptogramConfig configures the substitution-cipher game.
type CryptogramConfig struct {
	Hints        int  `yaml:"hints"`
	ShowMistakes bool `yaml:"show_mistakes"`
	FlashMS      int  `yaml:"flash_ms"`
}

// UnscrambleConfig configures the word unscramble game.
type UnscrambleConfig struct {
	Hints          int `yaml:"hints"`
	FlashMS        int `yaml:"flash_ms"`
	MinWordLetters int `yaml:"min_word_letters"`
}

// FirstLetterConfig configures the first-letter recall game.
type FirstLetterConfig struct {
	Level   int `yaml:"level"` // 1..5
	Hints   int `yaml:"hints"`
	FlashMS int `yaml:"flash_ms"`
}

// DictationConfig configures the chapter dictation game.
type DictationConfig struct {
	Hints   int `yaml:"hints"`
	FlashMS int `yaml:"flash_ms"`
}

// RefMatchConfig configures the reference matching game.
type RefMatchConfig struct {
	Pairs            int `yaml:"pairs"`
	CorrectDelayMS   int `yaml:"correct_delay_ms"`
	IncorrectDelayMS int `yaml:"incorrect_delay_ms"`
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
