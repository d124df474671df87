package firstletter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
)

// THE LORD IS MY SHEPHERD; I SHALL NOT WANT.
const shepherd = "Psalm 23:1"

func newGame(t *testing.T, reference string, level int) *Game {
	t.Helper()
	session.SetStartVerse(reference)
	session.SetStartLevel(level)
	t.Cleanup(func() {
		session.SetStartVerse("")
		session.SetStartLevel(0)
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.Verse.Reference != reference {
		t.Fatalf("expected start verse %s, got %s", reference, g.Verse.Reference)
	}
	return g
}

func typeText(g *Game, text string) {
	for _, r := range text {
		in := core.NewInputFrame()
		in.Type(r)
		g.Step(in)
	}
}

func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestFirstLetterSetup(t *testing.T) {
	g := newGame(t, shepherd, 0)

	snap := g.Snapshot()
	if snap.Level != 3 {
		t.Errorf("expected configured level 3, got %d", snap.Level)
	}
	if diff := cmp.Diff([]int{0, 2, 4, 5, 7}, snap.Hidden); diff != "" {
		t.Errorf("hidden words mismatch (-want +got):\n%s", diff)
	}
	if snap.Total != 9 || snap.Focus != 0 {
		t.Errorf("expected 9 words focused at 0, got total %d focus %d", snap.Total, snap.Focus)
	}
}

func TestFirstLetterLevels(t *testing.T) {
	tests := []struct {
		level  int
		hidden int
	}{
		{1, 0},
		{2, 2},
		{4, 7},
		{5, 9},
	}

	for _, tt := range tests {
		g := newGame(t, shepherd, tt.level)
		if got := len(g.Snapshot().Hidden); got != tt.hidden {
			t.Errorf("level %d: expected %d hidden words, got %d", tt.level, tt.hidden, got)
		}
	}
}

func TestFirstLetterSolve(t *testing.T) {
	g := newGame(t, shepherd, 0)

	typeText(g, "TLIMSISNW")

	if !g.Solved || g.Score != 100 {
		t.Fatalf("expected solved with 100, got solved=%v score=%d", g.Solved, g.Score)
	}
	if got := len(g.Snapshot().Revealed); got != 9 {
		t.Errorf("expected 9 revealed words, got %d", got)
	}
	if !g.State().GameOver {
		t.Error("solved verse should report game over")
	}

	press(g, core.ActionConfirm)
	if g.Verse.Reference != "Psalm 23:2" || g.Solved {
		t.Errorf("expected fresh Psalm 23:2, got %s solved=%v", g.Verse.Reference, g.Solved)
	}
}

func TestFirstLetterWrongLetter(t *testing.T) {
	g := newGame(t, shepherd, 0)

	typeText(g, "X")
	if g.Mistakes != 1 {
		t.Errorf("expected 1 mistake, got %d", g.Mistakes)
	}
	if !g.Flash.Active(0) {
		t.Error("wrong letter should flash the word")
	}
	if cur, _ := g.focus.Current(); cur != 0 {
		t.Errorf("focus should stay on word 0, got %d", cur)
	}

	idle(g, 40)
	if g.Flash.Active(0) {
		t.Error("flash should be over after 500ms")
	}

	typeText(g, "TLIMSISNW")
	if !g.Solved || g.Score != 89 {
		t.Errorf("expected solved with 89, got solved=%v score=%d", g.Solved, g.Score)
	}
}

func TestFirstLetterHint(t *testing.T) {
	g := newGame(t, shepherd, 0)

	press(g, core.ActionHint)
	if !g.revealed[0] || g.HintsLeft != 2 || g.HintsUsed != 1 {
		t.Errorf("hint should reveal word 0, got revealed=%v left=%d used=%d",
			g.revealed[0], g.HintsLeft, g.HintsUsed)
	}
	if cur, _ := g.focus.Current(); cur != 1 {
		t.Errorf("focus should move to word 1, got %d", cur)
	}

	press(g, core.ActionHint)
	press(g, core.ActionHint)
	press(g, core.ActionHint)
	if g.HintsUsed != 3 || g.HintsLeft != 0 {
		t.Errorf("hints should stop at the budget, got used=%d left=%d", g.HintsUsed, g.HintsLeft)
	}
	if cur, _ := g.focus.Current(); cur != 3 {
		t.Errorf("exhausted hint should not move focus, got %d", cur)
	}
}

func TestFirstLetterNavigation(t *testing.T) {
	g := newGame(t, shepherd, 0)

	press(g, core.ActionLeft)
	if cur, _ := g.focus.Current(); cur != 8 {
		t.Errorf("left from the first word should wrap to 8, got %d", cur)
	}

	r, ok := g.Hits.Rect(3)
	if !ok {
		t.Fatal("expected a click target for word 3")
	}
	in := core.NewInputFrame()
	in.Click(r.X, r.Y)
	g.Step(in)
	if cur, _ := g.focus.Current(); cur != 3 {
		t.Errorf("click should focus word 3, got %d", cur)
	}

	typeText(g, "M")
	if !g.revealed[3] {
		t.Error("typing M should recite MY out of order")
	}
}

func TestFirstLetterRender(t *testing.T) {
	g := newGame(t, shepherd, 0)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !screen.Contains("First Letter Recall") || !screen.Contains("Level 3") {
		t.Error("header missing")
	}
	if !screen.Contains("___ LORD __ MY ________; _ SHALL ___ WANT.") {
		t.Errorf("hidden words should render as blanks:\n%s", screen.String())
	}

	typeText(g, "T")
	g.Render(screen)
	if !screen.Contains("THE LORD __ MY") {
		t.Errorf("recited word should be shown:\n%s", screen.String())
	}

	typeText(g, "LIMSISNW")
	g.Render(screen)
	if !screen.Contains("Solved!") {
		t.Error("solved overlay missing")
	}
}
