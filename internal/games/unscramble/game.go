// Package unscramble implements the word unscramble game: every word of the
// verse is shown with its letters shuffled and the player types it back in
// order.
package unscramble

import (
	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
)

const (
	minWidth  = 40
	minHeight = 14
)

// word is one verse token and its puzzle state.
type word struct {
	puzzle.Word
	slots    []int  // rune indices of the letters
	tiles    []rune // shuffled letters
	scramble bool   // false for words shown as-is
	locked   bool
	pending  bool // wrong answer being shown before it clears
}

// Game implements the unscramble puzzle.
type Game struct {
	session.Session

	cfg      config.UnscrambleConfig
	text     []rune
	words    []word
	slotWord map[int]int  // rune index -> word index
	entries  map[int]rune // rune index -> typed letter
	focus    puzzle.Focus

	cellAt   map[int]session.Point // rune index -> tile row position
	overflow bool
}

// New creates a new unscramble game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("unscramble", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "unscramble"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Unscramble"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Put the shuffled letters of each word back in order"
}

// Reset initializes the game on the start verse.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Begin(cfg, minWidth, minHeight)
	g.cfg = g.Opts.Games.Unscramble
	g.loadVerse(g.Index)
}

func (g *Game) loadVerse(i int) {
	g.Load(i, g.cfg.Hints)

	g.text = []rune(g.Verse.Text)
	g.entries = make(map[int]rune)
	g.slotWord = make(map[int]int)
	g.words = g.words[:0]

	for wi, w := range puzzle.Words(g.Verse.Text) {
		wd := word{Word: w}
		for k, r := range []rune(w.Raw) {
			if puzzle.IsLetter(r) {
				wd.slots = append(wd.slots, w.Start+k)
				g.slotWord[w.Start+k] = wi
			}
		}
		if len(wd.slots) >= g.cfg.MinWordLetters {
			wd.scramble = true
			wd.tiles = g.shuffle([]rune(w.Letter))
			g.Total++
		}
		g.words = append(g.words, wd)
	}

	g.focus = puzzle.Focus{}
	g.refreshCells()
	g.layout()
	g.checkSolved()
}

// shuffle returns letters in a random order that differs from the original
// whenever the word has two different letters.
func (g *Game) shuffle(letters []rune) []rune {
	out := append([]rune(nil), letters...)
	for attempt := 0; attempt < 10; attempt++ {
		g.Rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		if string(out) != string(letters) {
			break
		}
	}
	return out
}

// refreshCells rebuilds the active cells: slots of unlocked words.
func (g *Game) refreshCells() {
	var cells []int
	for _, w := range g.words {
		if w.scramble && !w.locked {
			cells = append(cells, w.slots...)
		}
	}
	g.focus.SetCells(cells)
}

// Resize adapts the layout to a new screen size, keeping progress.
func (g *Game) Resize(width, height int) {
	g.Session.Resize(width, height)
	g.layout()
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Advance()

	if g.TooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, e := range in.Events() {
		g.handle(e)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handle(e core.Event) {
	switch e.Action {
	case core.ActionReset:
		g.loadVerse(g.Index)
		return
	case core.ActionConfirm:
		if g.Solved {
			g.loadVerse(g.NextIndex())
			return
		}
		g.focus.Next()
		return
	}

	if g.Solved {
		return
	}

	switch e.Action {
	case core.ActionLetter:
		g.typeLetter(e.Letter)
	case core.ActionDelete:
		g.erase()
	case core.ActionLeft:
		g.focus.Prev()
	case core.ActionRight:
		g.focus.Next()
	case core.ActionUp, core.ActionDown:
		dir := 1
		if e.Action == core.ActionUp {
			dir = -1
		}
		if cur, ok := g.focus.Current(); ok {
			if next, ok := session.Vertical(g.focus.Cells(), g.cellAt, cur, dir); ok {
				g.focus.Focus(next)
			}
		}
	case core.ActionHint:
		g.hint()
	case core.ActionClick:
		if id, ok := g.Hits.At(e.X, e.Y); ok {
			g.focus.Focus(id)
		}
	}
}

// available reports whether letter is still free among the tiles of w,
// not counting the entry at slot skip.
func (g *Game) available(w *word, letter rune, skip int) bool {
	free := 0
	for _, t := range w.tiles {
		if t == letter {
			free++
		}
	}
	for _, s := range w.slots {
		if s != skip && g.entries[s] == letter {
			free--
		}
	}
	return free > 0
}

func (g *Game) typeLetter(letter rune) {
	cur, ok := g.focus.Current()
	if !ok {
		return
	}
	w := &g.words[g.slotWord[cur]]
	if w.pending {
		return
	}
	if !g.available(w, letter, cur) {
		g.Flash.Start(cur, config.Millis(g.cfg.FlashMS), nil)
		return
	}

	g.entries[cur] = letter
	if g.filled(w) {
		g.check(g.slotWord[cur])
		return
	}
	g.focus.Next()
}

// erase clears the focused slot, or the previous one when it is empty.
func (g *Game) erase() {
	cur, ok := g.focus.Current()
	if !ok || g.words[g.slotWord[cur]].pending {
		return
	}
	if _, set := g.entries[cur]; set {
		delete(g.entries, cur)
		return
	}
	prev, ok := g.focus.Prev()
	if ok && !g.words[g.slotWord[prev]].pending {
		delete(g.entries, prev)
	}
}

func (g *Game) filled(w *word) bool {
	for _, s := range w.slots {
		if g.entries[s] == 0 {
			return false
		}
	}
	return true
}

// check grades a completed word.
func (g *Game) check(wi int) {
	w := &g.words[wi]
	typed := make([]rune, len(w.slots))
	for i, s := range w.slots {
		typed[i] = g.entries[s]
	}

	if string(typed) == w.Letter {
		w.locked = true
		g.refreshCells()
		g.checkSolved()
		return
	}

	g.Mistake()
	w.pending = true
	d := config.Millis(g.cfg.FlashMS)
	for _, s := range w.slots {
		g.Flash.Start(s, d, nil)
	}
	g.Sched.After(d, func() { g.clearWord(wi) })
	g.focus.Next()
}

// clearWord empties a wrongly answered word once its flash ends.
func (g *Game) clearWord(wi int) {
	if wi >= len(g.words) {
		return
	}
	w := &g.words[wi]
	if !w.pending || w.locked {
		return
	}
	w.pending = false
	for _, s := range w.slots {
		delete(g.entries, s)
	}
	if cur, ok := g.focus.Current(); ok && g.slotWord[cur] == wi {
		g.focus.Focus(w.slots[0])
	}
}

// hint completes the focused word, or the next unlocked one.
func (g *Game) hint() {
	if !g.CanHint() {
		return
	}
	cur, ok := g.focus.Current()
	if !ok {
		return
	}
	wi := g.slotWord[cur]
	w := &g.words[wi]
	for i, s := range w.slots {
		g.entries[s] = rune(w.Letter[i])
	}
	w.pending = false
	w.locked = true
	g.UseHint()
	g.refreshCells()
	g.checkSolved()
}

func (g *Game) checkSolved() {
	for _, w := range g.words {
		if w.scramble && !w.locked {
			return
		}
	}
	g.Finish()
}
