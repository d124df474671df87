package firstletter

import (
	"slices"

	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	session.Common
	Level    int
	Hidden   []int // Word indices blanked at load
	Revealed []int // Word indices already recited
	Focus    int   // Focused word index, -1 if none
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Common: g.Common(),
		Level:  g.level,
		Hidden: sortedKeys(g.hidden),
		Focus:  -1,
	}
	snap.Revealed = sortedKeys(g.revealed)
	if cur, ok := g.focus.Current(); ok {
		snap.Focus = cur
	}
	return snap
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
