package refmatch

import (
	"fmt"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/match"
)

const (
	help    = "Arrows: move  Enter/Space: pick  Click: pick  Ctrl+R: redeal  Esc: menu"
	cardGap = 2
	maxCard = 6
)

// layout arranges the cards in a grid: two columns, three on wide screens.
func (g *Game) layout() {
	g.Hits.Reset()
	g.cardAt = make(map[int]core.Rect)

	cards := g.engine.Cards()
	body := g.Body()
	cols := 2
	if body.W >= 120 {
		cols = 3
	}
	rows := (len(cards) + cols - 1) / cols
	w := (body.W - (cols-1)*cardGap) / cols
	h := maxCard
	if rows > 0 {
		h = min(body.H/rows, maxCard)
	}
	g.overflow = h < 3 || w < 8

	for i, c := range cards {
		r := core.NewRect(body.X+(i%cols)*(w+cardGap), body.Y+(i/cols)*h, w, h)
		g.cardAt[c.ID] = r
		g.Hits.Add(c.ID, r)
	}
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall || g.overflow {
		g.RenderTooSmall(dst)
		return
	}

	g.RenderHeader(dst, g.Title(), fmt.Sprintf("Pairs: %d/%d", g.engine.MatchedPairs(), g.Total))

	cur, hasFocus := g.focus.Current()
	for _, c := range g.engine.Cards() {
		g.renderCard(dst, c, hasFocus && c.ID == cur)
	}

	g.RenderFooter(dst, help)

	if g.Solved {
		g.RenderSolved(dst, fmt.Sprintf("%d pairs matched in %d attempts", g.Total, g.engine.Attempts()))
	}
}

func (g *Game) renderCard(dst *core.Screen, c match.Card, focused bool) {
	r := g.cardAt[c.ID]

	border := core.ColorMuted
	fb, inFeedback := g.engine.FeedbackFor(c.ID)
	switch {
	case c.Matched:
		border = core.ColorCorrect
	case inFeedback && fb.Correct:
		border = core.ColorCorrect
	case inFeedback:
		border = core.ColorError
	case c.Selected:
		border = core.ColorSelected
	case focused:
		border = core.ColorFocus
	}
	dst.DrawBox(r, border)

	text := core.ColorDefault
	if c.Kind == match.KindReference {
		text = core.ColorTitle
	}
	if c.Matched {
		text = core.ColorMuted
	}
	for i, line := range fit(c.Text, r.W-2, r.H-2) {
		dst.DrawTextColored(r.X+1, r.Y+1+i, line, text)
	}
}

// fit wraps text into at most rows lines of width, marking cut text with an
// ellipsis.
func fit(text string, width, rows int) []string {
	if rows <= 0 || width <= 0 {
		return nil
	}
	lines := core.Wrap(text, width)
	if len(lines) <= rows {
		return lines
	}
	lines = lines[:rows]
	last := []rune(lines[rows-1])
	if len(last) >= width {
		last = last[:width-1]
	}
	lines[rows-1] = string(last) + "…"
	return lines
}
