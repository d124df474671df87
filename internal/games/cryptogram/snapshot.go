package cryptogram

import (
	"slices"

	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	session.Common
	Key      string        // Ciphertext letters for A..Z
	Guesses  map[rune]rune // Ciphertext letter -> guess
	Revealed string        // Hint-revealed letters, sorted
	Focus    int           // Focused rune index, -1 if none
	Cells    int           // Number of active cells
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var revealed []rune
	for l := range g.revealed {
		revealed = append(revealed, l)
	}
	slices.Sort(revealed)

	focus := -1
	if cur, ok := g.focus.Current(); ok {
		focus = cur
	}

	return Snapshot{
		Common:   g.Common(),
		Key:      g.cipher.Key(),
		Guesses:  g.guesses.Entries(),
		Revealed: string(revealed),
		Focus:    focus,
		Cells:    len(g.focus.Cells()),
	}
}
