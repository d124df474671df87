package refmatch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/match"
)

const shepherd = "Psalm 23:1"

func newGame(t *testing.T, reference string, seed int64) *Game {
	t.Helper()
	session.SetStartVerse(reference)
	t.Cleanup(func() { session.SetStartVerse("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	if g.Verse.Reference != reference {
		t.Fatalf("expected start verse %s, got %s", reference, g.Verse.Reference)
	}
	return g
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

func click(t *testing.T, g *Game, id int) {
	t.Helper()
	r, ok := g.Hits.Rect(id)
	if !ok {
		t.Fatalf("no click target for card %d", id)
	}
	in := core.NewInputFrame()
	in.Click(r.X+1, r.Y+1)
	g.Step(in)
}

// partner returns the id of the card completing id's pair.
func partner(g *Game, id int) int {
	self, _ := g.engine.Card(id)
	for _, c := range g.engine.Cards() {
		if c.PairKey == self.PairKey && c.ID != id {
			return c.ID
		}
	}
	return -1
}

// stranger returns a card of the other kind from a different pair.
func stranger(g *Game, id int) int {
	self, _ := g.engine.Card(id)
	for _, c := range g.engine.Cards() {
		if c.PairKey != self.PairKey && c.Kind != self.Kind && !c.Matched {
			return c.ID
		}
	}
	return -1
}

func TestRefMatchDeal(t *testing.T) {
	g := newGame(t, shepherd, 1)

	cards := g.engine.Cards()
	if len(cards) != 8 || g.Total != 4 {
		t.Fatalf("expected 4 pairs of cards, got %d cards total %d", len(cards), g.Total)
	}

	refs := 0
	hasStart := false
	for _, c := range cards {
		if !strings.HasPrefix(c.PairKey, "Psalm 23:") {
			t.Errorf("distractors should come from the same chapter, got %s", c.PairKey)
		}
		if c.Kind == match.KindReference {
			refs++
			hasStart = hasStart || c.Text == shepherd
		}
	}
	if refs != 4 || !hasStart {
		t.Errorf("expected 4 reference cards including %s, got %d (start %v)", shepherd, refs, hasStart)
	}
	if g.Hits.Len() != 8 {
		t.Errorf("expected 8 click targets, got %d", g.Hits.Len())
	}
}

func TestRefMatchCorrectPair(t *testing.T) {
	g := newGame(t, shepherd, 1)

	click(t, g, 0)
	click(t, g, partner(g, 0))
	if len(g.engine.Feedback()) != 1 {
		t.Fatal("expected feedback for the pair")
	}

	idle(g, 40)
	if g.engine.MatchedPairs() != 0 {
		t.Error("pair should not match before the feedback delay")
	}
	idle(g, 10)
	if g.engine.MatchedPairs() != 1 {
		t.Fatalf("pair should match after 800ms, got %d", g.engine.MatchedPairs())
	}
	if len(g.focus.Cells()) != 6 {
		t.Errorf("matched cards should leave the focus ring, got %v", g.focus.Cells())
	}
}

func TestRefMatchMismatch(t *testing.T) {
	g := newGame(t, shepherd, 1)

	click(t, g, 0)
	click(t, g, stranger(g, 0))
	if g.Mistakes != 1 || g.engine.Mistakes() != 1 {
		t.Errorf("expected 1 mistake, got %d/%d", g.Mistakes, g.engine.Mistakes())
	}

	idle(g, 62)
	if len(g.engine.Feedback()) != 0 {
		t.Error("wrong pair feedback should end after 1000ms")
	}
	if g.engine.MatchedPairs() != 0 {
		t.Error("wrong pair must not match")
	}
}

func TestRefMatchSolve(t *testing.T) {
	g := newGame(t, shepherd, 3)

	click(t, g, 0)
	click(t, g, stranger(g, 0))
	idle(g, 62)

	for _, c := range g.engine.Cards() {
		if c.Kind != match.KindVerse {
			continue
		}
		click(t, g, c.ID)
		click(t, g, partner(g, c.ID))
	}
	idle(g, 50)

	if !g.Solved {
		t.Fatalf("expected solved, matched %d", g.engine.MatchedPairs())
	}
	if g.Score != 75 {
		t.Errorf("expected score 75 with one mismatch, got %d", g.Score)
	}

	press(g, core.ActionConfirm)
	if g.Verse.Reference != "Psalm 23:2" || g.Solved {
		t.Errorf("expected fresh Psalm 23:2, got %s solved=%v", g.Verse.Reference, g.Solved)
	}
}

func TestRefMatchKeyboard(t *testing.T) {
	g := newGame(t, shepherd, 1)

	press(g, core.ActionRight)
	press(g, core.ActionDown)
	if cur, _ := g.focus.Current(); cur != 3 {
		t.Errorf("expected focus on card 3, got %d", cur)
	}
	press(g, core.ActionConfirm)
	if id, ok := g.engine.Selected(); !ok || id != 3 {
		t.Errorf("confirm should select the focused card, got %d %v", id, ok)
	}
	press(g, core.ActionUp)
	press(g, core.ActionLeft)
	if cur, _ := g.focus.Current(); cur != 0 {
		t.Errorf("expected focus back on card 0, got %d", cur)
	}
}

func TestRefMatchReset(t *testing.T) {
	g := newGame(t, shepherd, 1)

	click(t, g, 0)
	click(t, g, partner(g, 0))
	press(g, core.ActionReset)
	idle(g, 60)

	if g.engine.MatchedPairs() != 0 || len(g.engine.Feedback()) != 0 {
		t.Error("redeal should drop pending feedback")
	}
	if g.Verse.Reference != shepherd {
		t.Errorf("redeal should keep the verse, got %s", g.Verse.Reference)
	}
}

func TestRefMatchRender(t *testing.T) {
	g := newGame(t, shepherd, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !screen.Contains("Reference Match") || !screen.Contains("Pairs: 0/4") {
		t.Error("header missing")
	}
	if !screen.Contains(shepherd) {
		t.Errorf("reference card missing:\n%s", screen.String())
	}
}

func TestRefMatchDeterminism(t *testing.T) {
	g1 := newGame(t, shepherd, 42)
	g2 := newGame(t, shepherd, 42)

	for _, g := range []*Game{g1, g2} {
		press(g, core.ActionRight)
		press(g, core.ActionConfirm)
		press(g, core.ActionRight)
		press(g, core.ActionConfirm)
		idle(g, 10)
	}

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("same seed and input diverged (-g1 +g2):\n%s", diff)
	}
}

func TestFit(t *testing.T) {
	got := fit("THE LORD IS MY SHEPHERD", 10, 2)
	want := []string{"THE LORD", "IS MY…"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fit mismatch (-want +got):\n%s", diff)
	}
	if fit("AMEN", 10, 0) != nil {
		t.Error("no rows should fit nothing")
	}
}
