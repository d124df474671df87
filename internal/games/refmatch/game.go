// Package refmatch implements reference matching: verse cards are paired
// with the cards naming their references.
package refmatch

import (
	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/match"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
)

const (
	minWidth  = 50
	minHeight = 16
)

// Game implements the reference matching puzzle.
type Game struct {
	session.Session

	cfg    config.RefMatchConfig
	engine *match.Engine
	focus  puzzle.Focus

	cardAt   map[int]core.Rect
	overflow bool
}

// New creates a new reference matching game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("refmatch", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "refmatch"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Reference Match"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Pair each verse with its reference"
}

// Reset initializes the game on the start verse.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Begin(cfg, minWidth, minHeight)
	g.cfg = g.Opts.Games.RefMatch
	g.loadVerse(g.Index)
}

// loadVerse deals verse i and its distractors.
func (g *Game) loadVerse(i int) {
	g.Load(i, 0)

	indices := append([]int{g.Index}, g.Opts.Corpus.Distractors(g.Index, g.cfg.Pairs-1, g.Rng)...)
	pairs := make([]match.Pair, 0, len(indices))
	for _, j := range indices {
		v, _ := g.Opts.Corpus.At(j)
		pairs = append(pairs, match.Pair{Key: v.Reference, Verse: v.Text, Reference: v.Reference})
	}
	cards := match.Deal(pairs, g.Rng)

	delays := match.Delays{
		Correct:   config.Millis(g.cfg.CorrectDelayMS),
		Incorrect: config.Millis(g.cfg.IncorrectDelayMS),
	}
	if g.engine == nil || g.engine.Delays() != delays {
		g.engine = match.NewEngine(cards, delays)
	} else {
		g.engine.Reset(cards)
	}
	g.Total = len(pairs)

	g.focus = puzzle.Focus{}
	g.refreshCells()
	g.layout()
}

func (g *Game) refreshCells() {
	var cells []int
	for _, c := range g.engine.Cards() {
		if !c.Matched {
			cells = append(cells, c.ID)
		}
	}
	g.focus.SetCells(cells)
}

// Engine exposes the match state.
func (g *Game) Engine() *match.Engine {
	return g.engine
}

// Resize adapts the layout to a new screen size, keeping progress.
func (g *Game) Resize(width, height int) {
	g.Session.Resize(width, height)
	g.layout()
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Advance()
	if g.engine.Advance(g.Cfg.TickDuration()) > 0 {
		g.refreshCells()
		g.checkSolved()
	}

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
		if cur, ok := g.focus.Current(); ok {
			g.pick(cur)
		}
		return
	}

	if g.Solved {
		return
	}

	switch e.Action {
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
			at := make(map[int]session.Point, len(g.cardAt))
			for id, r := range g.cardAt {
				at[id] = session.Point{X: r.X, Y: r.Y}
			}
			if next, ok := session.Vertical(g.focus.Cells(), at, cur, dir); ok {
				g.focus.Focus(next)
			}
		}
	case core.ActionClick:
		if id, ok := g.Hits.At(e.X, e.Y); ok {
			g.focus.Focus(id)
			g.pick(id)
		}
	}
}

func (g *Game) pick(id int) {
	if g.engine.Select(id) == match.OutcomeMismatch {
		g.Mistake()
	}
}

func (g *Game) checkSolved() {
	if g.engine.Solved() {
		g.Finish()
	}
}
