package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg := DefaultGamesConfig()
	var embedded GamesConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if diff := cmp.Diff(cfg, embedded); diff != "" {
		t.Errorf("embedded defaults drifted from hardcoded defaults (-hard +embedded):\n%s", diff)
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	data := "cryptogram:\n  hints: 7\nrefmatch:\n  pairs: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cryptogram.Hints != 7 {
		t.Errorf("hints = %d, want 7", cfg.Cryptogram.Hints)
	}
	if cfg.RefMatch.Pairs != MaxPairs {
		t.Errorf("pairs = %d, want clamped to %d", cfg.RefMatch.Pairs, MaxPairs)
	}
	if cfg.FirstLetter.Level != 3 {
		t.Errorf("unset level should keep the default, got %d", cfg.FirstLetter.Level)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("cryptogram: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("invalid YAML should fail")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := GamesConfig{
		Cryptogram:  CryptogramConfig{Hints: -4},
		FirstLetter: FirstLetterConfig{Level: 9},
		RefMatch:    RefMatchConfig{Pairs: 1, CorrectDelayMS: -5},
	}
	cfg.Validate()

	if cfg.Cryptogram.Hints != 0 {
		t.Errorf("negative hints should clamp to 0, got %d", cfg.Cryptogram.Hints)
	}
	if cfg.FirstLetter.Level != MaxLevel {
		t.Errorf("level should clamp to %d, got %d", MaxLevel, cfg.FirstLetter.Level)
	}
	if cfg.RefMatch.Pairs != MinPairs {
		t.Errorf("pairs should clamp to %d, got %d", MinPairs, cfg.RefMatch.Pairs)
	}
	if Millis(cfg.RefMatch.CorrectDelayMS) != 800*time.Millisecond {
		t.Errorf("non-positive delay should fall back to default, got %d", cfg.RefMatch.CorrectDelayMS)
	}
	if cfg.Unscramble.MinWordLetters != 2 {
		t.Errorf("min word letters should be at least 2, got %d", cfg.Unscramble.MinWordLetters)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		hints  int
		level  int
		pairs  int
	}{
		{DifficultyEasy, 6, 2, 3},
		{DifficultyNormal, 3, 3, 4},
		{DifficultyHard, 1, 5, 6},
		{DifficultyFixed, 3, 3, 4},
		{"", 3, 3, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGamesConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Cryptogram.Hints != tc.hints {
				t.Errorf("hints = %d, expected %d", cfg.Cryptogram.Hints, tc.hints)
			}
			if cfg.FirstLetter.Level != tc.level {
				t.Errorf("level = %d, expected %d", cfg.FirstLetter.Level, tc.level)
			}
			if cfg.RefMatch.Pairs != tc.pairs {
				t.Errorf("pairs = %d, expected %d", cfg.RefMatch.Pairs, tc.pairs)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
