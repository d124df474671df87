package unscramble

import "github.com/marcislaughter/bible-cryptogram/internal/games/session"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	session.Common
	Tiles   []string     // Shuffled letters per scrambled word
	Entries map[int]rune // Rune index -> typed letter
	Locked  []int        // Indices of solved words
	Focus   int          // Focused rune index, -1 if none
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Common:  g.Common(),
		Entries: make(map[int]rune, len(g.entries)),
		Focus:   -1,
	}
	for wi, w := range g.words {
		if !w.scramble {
			continue
		}
		snap.Tiles = append(snap.Tiles, string(w.tiles))
		if w.locked {
			snap.Locked = append(snap.Locked, wi)
		}
	}
	for k, v := range g.entries {
		snap.Entries[k] = v
	}
	if cur, ok := g.focus.Current(); ok {
		snap.Focus = cur
	}
	return snap
}
