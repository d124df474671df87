package session

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

func TestFlow(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		width  int
		want   []Pos
	}{
		{"single line", []int{3, 4, 2}, 20, []Pos{{0, 0}, {0, 4}, {0, 9}}},
		{"wraps", []int{3, 4, 2}, 8, []Pos{{0, 0}, {0, 4}, {1, 0}}},
		{"exact fit", []int{3, 4}, 8, []Pos{{0, 0}, {0, 4}}},
		{"word wider than line", []int{2, 10, 2}, 6, []Pos{{0, 0}, {1, 0}, {2, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flow(tt.widths, tt.width, 1)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flow mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if Lines(nil) != 0 || Lines([]Pos{{0, 0}, {2, 0}}) != 3 {
		t.Error("Lines should count to the last line")
	}
}

func TestHitMap(t *testing.T) {
	var h HitMap
	h.Add(1, core.NewRect(0, 0, 4, 2))
	h.Add(2, core.NewRect(2, 1, 4, 2))

	if id, ok := h.At(0, 0); !ok || id != 1 {
		t.Errorf("expected target 1, got %d %v", id, ok)
	}
	if id, ok := h.At(3, 1); !ok || id != 2 {
		t.Errorf("overlap should pick the later target, got %d %v", id, ok)
	}
	if _, ok := h.At(10, 10); ok {
		t.Error("expected no target outside the rects")
	}
	if r, ok := h.Rect(2); !ok || r.X != 2 {
		t.Errorf("expected rect of target 2, got %+v %v", r, ok)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("expected empty map after reset, got %d", h.Len())
	}
}

func TestVertical(t *testing.T) {
	at := map[int]Point{
		0: {0, 0}, 1: {5, 0}, 2: {10, 0},
		3: {1, 2}, 4: {9, 2},
		5: {4, 4},
	}
	cells := []int{0, 1, 2, 3, 4, 5}

	tests := []struct {
		cur, dir int
		want     int
		ok       bool
	}{
		{2, 1, 4, true},
		{0, 1, 3, true},
		{3, 1, 5, true},
		{5, -1, 3, true},
		{4, -1, 2, true},
		{1, -1, 1, false},
		{5, 1, 5, false},
	}

	for _, tt := range tests {
		got, ok := Vertical(cells, at, tt.cur, tt.dir)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Vertical(%d, %d) = %d %v, want %d %v", tt.cur, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFlashes(t *testing.T) {
	sched := puzzle.NewScheduler()
	f := NewFlashes(sched)

	ended := 0
	f.Start(1, 100*time.Millisecond, func() { ended++ })
	if !f.Active(1) || f.Len() != 1 {
		t.Fatal("flash should be active")
	}

	sched.Advance(50 * time.Millisecond)
	f.Start(1, 100*time.Millisecond, func() { ended += 10 })
	sched.Advance(60 * time.Millisecond)
	if !f.Active(1) || ended != 0 {
		t.Errorf("replaced flash should keep running, active=%v ended=%d", f.Active(1), ended)
	}

	sched.Advance(50 * time.Millisecond)
	if f.Active(1) || ended != 10 {
		t.Errorf("expected only the replacing callback, active=%v ended=%d", f.Active(1), ended)
	}

	f.Start(2, 100*time.Millisecond, func() { ended++ })
	f.Reset()
	sched.Advance(time.Second)
	if f.Len() != 0 || ended != 10 {
		t.Errorf("reset should drop flashes silently, len=%d ended=%d", f.Len(), ended)
	}
}

func TestSessionBookkeeping(t *testing.T) {
	SetStartVerse("John 11:35")
	t.Cleanup(func() { SetStartVerse("") })

	var s Session
	s.Begin(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, 40, 12)
	s.Load(s.Index, 1)
	s.Total = 4

	if s.Verse.Reference != "John 11:35" || s.Verse.Text != "JESUS WEPT." {
		t.Fatalf("unexpected verse %+v", s.Verse)
	}
	if !s.CanHint() {
		t.Fatal("expected a hint available")
	}
	s.UseHint()
	s.UseHint()
	if s.HintsLeft != 0 || s.HintsUsed != 1 || s.CanHint() {
		t.Errorf("hints should stop at the budget, left=%d used=%d", s.HintsLeft, s.HintsUsed)
	}

	s.Mistake()
	s.Finish()
	if !s.Solved || s.Score != 50 {
		t.Errorf("expected solved with 50, got %v %d", s.Solved, s.Score)
	}
	s.Mistake()
	s.Finish()
	if s.Score != 50 {
		t.Errorf("score should not change once solved, got %d", s.Score)
	}

	if s.NextIndex() != s.Index+1 {
		t.Errorf("expected next index %d, got %d", s.Index+1, s.NextIndex())
	}

	s.Resize(30, 10)
	if !s.TooSmall || !s.State().Paused {
		t.Error("small screen should pause the game")
	}
	s.Resize(80, 24)
	if s.TooSmall {
		t.Error("restored screen should resume the game")
	}
}

func TestLoadInvalidatesEffects(t *testing.T) {
	var s Session
	s.Begin(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, 40, 12)
	s.Load(0, 0)

	fired := false
	s.Sched.After(10*time.Millisecond, func() { fired = true })
	s.Flash.Start(3, 10*time.Millisecond, nil)

	s.Load(1, 0)
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if fired || s.Flash.Active(3) {
		t.Error("effects of the previous verse must not run")
	}
	if s.Tick != 10 {
		t.Errorf("expected 10 ticks, got %d", s.Tick)
	}
}

func TestCurrentOptionsDefaults(t *testing.T) {
	SetDifficultyPreset("bogus")
	SetStartLevel(4)
	t.Cleanup(func() {
		SetDifficultyPreset("")
		SetStartLevel(0)
	})

	opts := CurrentOptions()
	if opts.Corpus == nil || opts.Corpus.Len() == 0 {
		t.Fatal("expected the embedded corpus")
	}
	if opts.Level != 4 {
		t.Errorf("expected level override 4, got %d", opts.Level)
	}
	if opts.Games.Cryptogram.Hints <= 0 {
		t.Errorf("expected default hints, got %d", opts.Games.Cryptogram.Hints)
	}
	if Corpus() != opts.Corpus {
		t.Error("corpus should be cached by path")
	}
}

func TestStartWith(t *testing.T) {
	SetStartVerse("Psalm 23:1")
	t.Cleanup(func() { SetStartVerse("") })

	var s Session
	StartWith("Jude 25", 2, func() {
		s.Begin(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, 40, 12)
	})

	if s.Opts.StartVerse != "Jude 25" || s.Opts.Level != 2 {
		t.Errorf("expected overridden start, got %q level %d", s.Opts.StartVerse, s.Opts.Level)
	}
	if got := GetStartVerse(); got != "Psalm 23:1" {
		t.Errorf("start verse should be restored, got %q", got)
	}
}

func TestStartWithKeepsUnsetFields(t *testing.T) {
	SetStartVerse("Jude 24")
	SetStartLevel(5)
	t.Cleanup(func() {
		SetStartVerse("")
		SetStartLevel(0)
	})

	var opts Options
	StartWith("", 0, func() { opts = CurrentOptions() })
	if opts.StartVerse != "Jude 24" || opts.Level != 5 {
		t.Errorf("zero selection should keep settings, got %q level %d", opts.StartVerse, opts.Level)
	}
}
