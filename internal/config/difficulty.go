package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// HintsForPreset scales a hint budget for a preset.
func HintsForPreset(base int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return max(base*2, 1)
	case DifficultyHard:
		return base / 2
	default:
		return base
	}
}

// LevelForPreset returns the first-letter level for a preset.
func LevelForPreset(level int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 2
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 5
	default:
		return level
	}
}

// PairsForPreset returns the number of matching pairs for a preset.
func PairsForPreset(pairs int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 6
	default:
		return pairs
	}
}

// IsFixedPreset returns true if the preset keeps the configured values.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GamesConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	cfg.Cryptogram.Hints = HintsForPreset(cfg.Cryptogram.Hints, preset)
	cfg.Unscramble.Hints = HintsForPreset(cfg.Unscramble.Hints, preset)
	cfg.FirstLetter.Hints = HintsForPreset(cfg.FirstLetter.Hints, preset)
	cfg.Dictation.Hints = HintsForPreset(cfg.Dictation.Hints, preset)
	cfg.FirstLetter.Level = LevelForPreset(cfg.FirstLetter.Level, preset)
	cfg.RefMatch.Pairs = PairsForPreset(cfg.RefMatch.Pairs, preset)
	cfg.Cryptogram.ShowMistakes = preset != DifficultyHard
}
