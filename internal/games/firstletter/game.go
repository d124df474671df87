// Package firstletter implements first-letter recall: the player types the
// first letter of each word in order, with part of the verse hidden
// according to the difficulty level.
package firstletter

import (
	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
)

const (
	minWidth  = 40
	minHeight = 12
)

// Game implements the first-letter recall puzzle.
type Game struct {
	session.Session

	cfg      config.FirstLetterConfig
	level    int
	words    []puzzle.Word
	targets  []int        // word indices that have letters
	hidden   map[int]bool // word index -> blanked until typed
	revealed map[int]bool // word index -> typed or hinted
	hinted   map[int]bool
	focus    puzzle.Focus

	wordAt   map[int]session.Point
	overflow bool
}

// New creates a new first-letter game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("firstletter", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "firstletter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "First Letter Recall"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Recite a verse by typing the first letter of every word"
}

// Reset initializes the game on the start verse.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Begin(cfg, minWidth, minHeight)
	g.cfg = g.Opts.Games.FirstLetter
	g.level = g.cfg.Level
	if g.Opts.Level > 0 {
		g.level = g.Opts.Level
	}
	g.level = core.Clamp(g.level, puzzle.MinLevel, puzzle.MaxLevel)
	g.loadVerse(g.Index)
}

// Level returns the difficulty level in use.
func (g *Game) Level() int {
	return g.level
}

func (g *Game) loadVerse(i int) {
	g.Load(i, g.cfg.Hints)

	g.words = puzzle.Words(g.Verse.Text)
	g.targets = g.targets[:0]
	for wi, w := range g.words {
		if w.Letter != "" {
			g.targets = append(g.targets, wi)
		}
	}

	g.hidden = make(map[int]bool)
	for _, ti := range puzzle.HiddenIndices(len(g.targets), g.level) {
		g.hidden[g.targets[ti]] = true
	}
	g.revealed = make(map[int]bool)
	g.hinted = make(map[int]bool)
	g.Total = len(g.targets)

	g.focus = puzzle.Focus{}
	g.refreshCells()
	g.layout()
	if g.Total == 0 {
		g.Finish()
	}
}

func (g *Game) refreshCells() {
	var cells []int
	for _, wi := range g.targets {
		if !g.revealed[wi] {
			cells = append(cells, wi)
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
			if next, ok := session.Vertical(g.focus.Cells(), g.wordAt, cur, dir); ok {
				g.focus.Focus(next)
			}
		}
	case core.ActionHint:
		if cur, ok := g.focus.Current(); ok && g.CanHint() {
			g.hinted[cur] = true
			g.UseHint()
			g.reveal(cur)
		}
	case core.ActionClick:
		if id, ok := g.Hits.At(e.X, e.Y); ok {
			g.focus.Focus(id)
		}
	}
}

func (g *Game) typeLetter(letter rune) {
	cur, ok := g.focus.Current()
	if !ok {
		return
	}
	if g.words[cur].First() != letter {
		g.Mistake()
		g.Flash.Start(cur, config.Millis(g.cfg.FlashMS), nil)
		return
	}
	g.reveal(cur)
}

// reveal marks word wi as recited and moves focus on.
func (g *Game) reveal(wi int) {
	g.revealed[wi] = true
	g.refreshCells()
	if len(g.focus.Cells()) == 0 {
		g.Finish()
	}
}
