package unscramble

import (
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

const help = "A-Z: type  Arrows: move  Bksp: erase  Tab: reveal word  Ctrl+R: reshuffle  Esc: menu"

// layout places each word: shuffled tiles on one row, answer slots below.
func (g *Game) layout() {
	g.Hits.Reset()
	g.cellAt = make(map[int]session.Point, len(g.text))

	body := g.Body()
	widths := make([]int, len(g.words))
	for i, w := range g.words {
		widths[i] = len([]rune(w.Raw))
	}
	pos := session.Flow(widths, body.W, 2)
	g.overflow = session.Lines(pos)*3 > body.H+1

	for wi, w := range g.words {
		for k := range []rune(w.Raw) {
			idx := w.Start + k
			p := session.Point{X: body.X + pos[wi].Col + k, Y: body.Y + pos[wi].Line*3}
			g.cellAt[idx] = p
			if w.scramble && puzzle.IsLetter(g.text[idx]) {
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
	for _, w := range g.words {
		if !w.scramble {
			g.renderPlain(dst, w)
			continue
		}
		g.renderTiles(dst, w)

		for k, r := range []rune(w.Raw) {
			idx := w.Start + k
			p := g.cellAt[idx]
			if !puzzle.IsLetter(r) {
				dst.SetColored(p.X, p.Y+1, r, core.ColorDefault)
				continue
			}
			ch, color := '_', core.ColorMuted
			if e, ok := g.entries[idx]; ok {
				ch, color = e, core.ColorGuess
			}
			switch {
			case g.Flash.Active(idx):
				color = core.ColorError
			case w.locked:
				color = core.ColorCorrect
			case hasFocus && idx == cur && !g.Solved:
				color = core.ColorFocus
			}
			dst.SetColored(p.X, p.Y+1, ch, color)
		}
	}

	g.RenderFooter(dst, help)

	if g.Solved {
		g.RenderSolved(dst, g.Verse.Text)
	}
}

// renderTiles draws the shuffled letters of w, dimming tiles already used.
func (g *Game) renderTiles(dst *core.Screen, w word) {
	used := make([]bool, len(w.tiles))
	if !w.locked {
		for _, s := range w.slots {
			e := g.entries[s]
			for t, r := range w.tiles {
				if !used[t] && r == e {
					used[t] = true
					break
				}
			}
		}
	}

	for t, r := range w.tiles {
		p := g.cellAt[w.slots[t]]
		color := core.ColorCipher
		switch {
		case w.locked:
			color = core.ColorMuted
		case used[t]:
			color = core.ColorMuted
			r = '·'
		}
		dst.SetColored(p.X, p.Y, r, color)
	}
}

// renderPlain draws a word that is not scrambled.
func (g *Game) renderPlain(dst *core.Screen, w word) {
	for k, r := range []rune(w.Raw) {
		p := g.cellAt[w.Start+k]
		dst.SetColored(p.X, p.Y+1, r, core.ColorDefault)
	}
}
