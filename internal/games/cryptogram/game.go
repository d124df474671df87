// Package cryptogram implements the verse cryptogram: the verse is encrypted
// with a random substitution cipher and the player decodes it letter by
// letter.
package cryptogram

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

// Game implements the cryptogram puzzle.
type Game struct {
	session.Session

	cfg      config.CryptogramConfig
	text     []rune
	cipher   puzzle.Cipher
	guesses  *puzzle.GuessMap[rune] // ciphertext letter -> guessed letter
	revealed map[rune]bool          // plaintext letters given by hints
	focus    puzzle.Focus

	cellAt   map[int]session.Point // rune index -> cipher row position
	rowStep  int
	overflow bool
}

// New creates a new cryptogram game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cryptogram", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cryptogram"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Verse Cryptogram"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Decode a verse hidden behind a substitution cipher"
}

// Reset initializes the game on the start verse.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Begin(cfg, minWidth, minHeight)
	g.cfg = g.Opts.Games.Cryptogram
	g.loadVerse(g.Index)
}

// loadVerse builds a new puzzle for corpus verse i.
func (g *Game) loadVerse(i int) {
	g.Load(i, g.cfg.Hints)

	g.text = []rune(g.Verse.Text)
	g.cipher = puzzle.NewCipher(g.Rng)
	g.guesses = puzzle.NewGuessMap[rune]()
	g.revealed = make(map[rune]bool)
	g.Total = len(puzzle.DistinctLetters(g.Verse.Text))
	g.focus = puzzle.Focus{}
	g.refreshCells()
	g.layout()
}

// refreshCells rebuilds the active cells: letters not revealed by a hint.
func (g *Game) refreshCells() {
	var cells []int
	for i, r := range g.text {
		if puzzle.IsLetter(r) && !g.revealed[r] {
			cells = append(cells, i)
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
		g.guess(e.Letter)
	case core.ActionDelete:
		if cur, ok := g.focus.Current(); ok {
			g.guesses.Clear(g.cipher.Encrypt(g.text[cur]))
		}
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

// guess assigns letter to the cipher letter of the focused cell.
func (g *Game) guess(letter rune) {
	cur, ok := g.focus.Current()
	if !ok {
		return
	}
	plain := g.text[cur]
	// Hint-revealed letters stay where they are.
	if !g.revealed[letter] {
		g.guesses.Set(g.cipher.Encrypt(plain), letter)
	}

	if letter != plain {
		g.Mistake()
		if g.cfg.ShowMistakes {
			g.Flash.Start(cur, config.Millis(g.cfg.FlashMS), nil)
		}
	}

	g.focus.Next()
	g.checkSolved()
}

// hint reveals the most frequent letter not yet decoded. A hint is only
// spent when a letter was revealed.
func (g *Game) hint() {
	if !g.CanHint() {
		return
	}
	l, ok := puzzle.NextHint(g.Verse.Text, g.cipher, g.guesses, g.revealed)
	if !ok {
		return
	}
	g.guesses.Set(g.cipher.Encrypt(l), l)
	g.revealed[l] = true
	g.UseHint()
	g.refreshCells()
	g.checkSolved()
}

func (g *Game) checkSolved() {
	if puzzle.IsSolved(g.Verse.Text, g.cipher, g.guesses) {
		g.Finish()
	}
}
