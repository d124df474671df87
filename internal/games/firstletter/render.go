package firstletter

import (
	"fmt"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
)

const help = "A-Z: first letter  Arrows: move  Tab: reveal word  Ctrl+R: restart  Esc: menu"

// layout flows the words with one blank row between lines.
func (g *Game) layout() {
	g.Hits.Reset()
	g.wordAt = make(map[int]session.Point, len(g.words))

	body := g.Body()
	widths := make([]int, len(g.words))
	for i, w := range g.words {
		widths[i] = len([]rune(w.Raw))
	}
	pos := session.Flow(widths, body.W, 1)
	g.overflow = session.Lines(pos)*2 > body.H+1

	for wi, p := range pos {
		pt := session.Point{X: body.X + p.Col, Y: body.Y + p.Line*2}
		g.wordAt[wi] = pt
		g.Hits.Add(wi, core.NewRect(pt.X, pt.Y, widths[wi], 1))
	}
}

// Render draws the puzzle.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall || g.overflow {
		g.RenderTooSmall(dst)
		return
	}

	g.RenderHeader(dst, g.Title(), fmt.Sprintf("Level %d", g.level))

	cur, hasFocus := g.focus.Current()
	for wi, w := range g.words {
		p := g.wordAt[wi]
		text := w.Raw
		color := core.ColorMuted

		switch {
		case g.revealed[wi] && g.hinted[wi]:
			color = core.ColorHint
		case g.revealed[wi]:
			color = core.ColorCorrect
		case g.hidden[wi]:
			text = blankWord(w.Raw)
		}
		if !g.revealed[wi] {
			if g.Flash.Active(wi) {
				color = core.ColorError
			} else if hasFocus && wi == cur {
				color = core.ColorFocus
			}
		}
		dst.DrawTextColored(p.X, p.Y, text, color)
	}

	g.RenderFooter(dst, help)

	if g.Solved {
		g.RenderSolved(dst, g.Verse.Text)
	}
}

// blankWord hides the letters of a token, keeping its punctuation.
func blankWord(raw string) string {
	out := []rune(raw)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = '_'
		}
	}
	return string(out)
}
