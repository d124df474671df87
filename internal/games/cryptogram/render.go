package cryptogram

import (
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

const help = "A-Z: guess  Arrows: move  Bksp: clear  Tab: hint  Ctrl+R: new cipher  Esc: menu"

// layout places every rune of the verse. Each text line uses a cipher row
// and a guess row, plus a spacer row when there is room.
func (g *Game) layout() {
	g.Hits.Reset()
	g.cellAt = make(map[int]session.Point, len(g.text))

	body := g.Body()
	words := puzzle.Words(g.Verse.Text)
	widths := make([]int, len(words))
	for i, w := range words {
		widths[i] = len([]rune(w.Raw))
	}
	pos := session.Flow(widths, body.W, 1)

	lines := session.Lines(pos)
	g.rowStep = 3
	if lines*3 > body.H {
		g.rowStep = 2
	}
	g.overflow = lines*g.rowStep > body.H+1

	for wi, w := range words {
		for k := range []rune(w.Raw) {
			idx := w.Start + k
			p := session.Point{
				X: body.X + pos[wi].Col + k,
				Y: body.Y + pos[wi].Line*g.rowStep,
			}
			g.cellAt[idx] = p
			if puzzle.IsLetter(g.text[idx]) {
				g.Hits.Add(idx, core.NewRect(p.X, p.Y, 1, 2))
			}
		}
	}
}

// Render draws the puzzle.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall || g.overflow {
		g.RenderTooSmall(dst)
		return
	}

	g.RenderHeader(dst, g.Title(), "")

	cur, hasFocus := g.focus.Current()
	var focusCipher rune
	if hasFocus {
		focusCipher = g.cipher.Encrypt(g.text[cur])
	}

	for idx, r := range g.text {
		p, ok := g.cellAt[idx]
		if !ok {
			continue
		}
		if !puzzle.IsLetter(r) {
			dst.SetColored(p.X, p.Y+1, r, core.ColorDefault)
			continue
		}

		enc := g.cipher.Encrypt(r)
		encColor := core.ColorCipher
		if hasFocus && enc == focusCipher {
			encColor = core.ColorSelected
		}
		dst.SetColored(p.X, p.Y, enc, encColor)

		guess := g.guesses.Get(enc)
		ch := guess
		if ch == 0 {
			ch = '_'
		}
		color := core.ColorGuess
		switch {
		case g.Flash.Active(idx):
			color = core.ColorError
		case hasFocus && idx == cur && !g.Solved:
			color = core.ColorFocus
		case g.revealed[r]:
			color = core.ColorHint
		case guess == 0:
			color = core.ColorMuted
		}
		dst.SetColored(p.X, p.Y+1, ch, color)
	}

	g.RenderFooter(dst, help)

	if g.Solved {
		g.RenderSolved(dst, g.Verse.Text)
	}
}
