package dictation

import (
	"slices"

	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	session.Common
	Verses int   // Verses in the chapter
	Cursor int   // Letters written so far
	Hinted []int // Rune positions filled by hints
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Common: g.Common(),
		Verses: len(g.verses),
		Cursor: g.cursor,
		Hinted: make([]int, 0, len(g.hinted)),
	}
	for pos := range g.hinted {
		snap.Hinted = append(snap.Hinted, pos)
	}
	slices.Sort(snap.Hinted)
	return snap
}
