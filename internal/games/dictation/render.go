package dictation

import (
	"fmt"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

const help = "A-Z: write  Tab: finish word  Ctrl+R: restart  Esc: menu"

// layout flows the chapter; long chapters scroll with the cursor.
func (g *Game) layout() {
	g.cellAt = make(map[int]session.Point, len(g.text))
	g.lineOf = make(map[int]int, len(g.text))

	body := g.Body()
	widths := make([]int, len(g.words))
	for i, w := range g.words {
		widths[i] = len([]rune(w.Raw))
	}
	pos := session.Flow(widths, body.W, 1)
	g.lines = session.Lines(pos)
	g.rowStep = 2
	if g.lines*2 > body.H+1 {
		g.rowStep = 1
	}
	// Words wider than the body cannot be drawn.
	g.overflow = false
	for _, w := range widths {
		if w > body.W {
			g.overflow = true
		}
	}

	for wi, w := range g.words {
		for k := range []rune(w.Raw) {
			idx := w.Start + k
			g.cellAt[idx] = session.Point{X: body.X + pos[wi].Col + k, Y: pos[wi].Line}
			g.lineOf[idx] = pos[wi].Line
		}
	}
}

// firstLine returns the top visible line, keeping the cursor in view.
func (g *Game) firstLine() int {
	visible := max((g.Body().H+g.rowStep-1)/g.rowStep, 1)
	if g.lines <= visible {
		return 0
	}
	cur := g.lines - 1
	if pos, ok := g.current(); ok {
		cur = g.lineOf[pos]
	}
	top := cur - visible/2
	return core.Clamp(top, 0, g.lines-visible)
}

// Render draws the chapter.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall || g.overflow {
		g.RenderTooSmall(dst)
		return
	}

	written, total := g.Progress()
	g.RenderHeader(dst, g.Title(), fmt.Sprintf("%d/%d", written, total))

	body := g.Body()
	top := g.firstLine()
	cur, hasCur := g.current()
	for idx, r := range g.text {
		p, ok := g.cellAt[idx]
		if !ok {
			continue
		}
		row := (p.Y - top) * g.rowStep
		if row < 0 || row >= body.H {
			continue
		}
		y := body.Y + row

		if !puzzle.IsLetter(r) {
			dst.SetColored(p.X, y, r, core.ColorDefault)
			continue
		}
		switch {
		case g.Flash.Active(idx):
			dst.SetColored(p.X, y, '_', core.ColorError)
		case g.hinted[idx]:
			dst.SetColored(p.X, y, r, core.ColorHint)
		case g.typed[idx]:
			dst.SetColored(p.X, y, r, core.ColorCorrect)
		case hasCur && idx == cur:
			dst.SetColored(p.X, y, '_', core.ColorFocus)
		default:
			dst.SetColored(p.X, y, '_', core.ColorMuted)
		}
	}

	g.RenderFooter(dst, help)

	if g.Solved {
		g.RenderSolved(dst, fmt.Sprintf("%d verses written", len(g.verses)))
	}
}
