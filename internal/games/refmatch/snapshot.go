package refmatch

import (
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/match"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	session.Common
	Cards    []match.Card
	Feedback []match.Feedback
	Attempts int
	Focus    int // Focused card id, -1 if none
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Common:   g.Common(),
		Cards:    g.engine.Cards(),
		Feedback: g.engine.Feedback(),
		Attempts: g.engine.Attempts(),
		Focus:    -1,
	}
	if cur, ok := g.focus.Current(); ok {
		snap.Focus = cur
	}
	return snap
}
