package session

import (
	"fmt"
	"strings"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
)

// Screen regions shared by the games.
const (
	HeaderRows = 3 // title, status, separator
	FooterRows = 1
	Margin     = 2
)

// Body returns the area between header and footer.
func (s *Session) Body() core.Rect {
	w := s.Cfg.ScreenW - 2*Margin
	h := s.Cfg.ScreenH - HeaderRows - FooterRows - 1
	return core.NewRect(Margin, HeaderRows+1, max(w, 1), max(h, 1))
}

// RenderHeader draws the title, the reference and the hint/mistake counters.
func (s *Session) RenderHeader(dst *core.Screen, title, extra string) {
	dst.DrawTextCentered(0, title, core.ColorTitle)
	dst.DrawTextColored(Margin, 1, s.Verse.Reference, core.ColorTitle)

	status := fmt.Sprintf("Hints: %d  Mistakes: %d", s.HintsLeft, s.Mistakes)
	if extra != "" {
		status = extra + "  " + status
	}
	x := max(s.Cfg.ScreenW-Margin-len([]rune(status)), Margin)
	dst.DrawTextColored(x, 1, status, core.ColorMuted)
	dst.DrawHLine(0, 2, s.Cfg.ScreenW, '─', core.ColorMuted)
}

// RenderFooter draws a help line on the last row.
func (s *Session) RenderFooter(dst *core.Screen, help string) {
	dst.DrawTextCentered(s.Cfg.ScreenH-1, help, core.ColorMuted)
}

// RenderSolved draws the completion summary box over the screen.
func (s *Session) RenderSolved(dst *core.Screen, text string) {
	w := min(s.Cfg.ScreenW-4, 64)
	lines := core.Wrap(text, w-4)

	h := len(lines) + 9
	x := (s.Cfg.ScreenW - w) / 2
	y := max((s.Cfg.ScreenH-h)/2, 0)

	box := core.NewRect(x, y, w, h)
	for row := box.Y; row < box.Bottom(); row++ {
		dst.DrawHLine(box.X, row, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorCorrect)

	center := func(row int, msg string, c core.Color) {
		cx := x + (w-len([]rune(msg)))/2
		dst.DrawTextColored(cx, row, msg, c)
	}

	center(y+1, "Solved!", core.ColorCorrect)
	for i, line := range lines {
		center(y+3+i, line, core.ColorDefault)
	}
	row := y + 3 + len(lines)
	center(row+1, s.Verse.Reference, core.ColorTitle)
	center(row+2, fmt.Sprintf("Score: %d%%", s.Score), core.ColorCorrect)
	center(row+3, fmt.Sprintf("Hints used: %d  Mistakes: %d", s.HintsUsed, s.Mistakes), core.ColorMuted)
	center(row+4, "Enter: next verse  Ctrl+R: replay  Esc: menu", core.ColorMuted)
}

// RenderTooSmall shows a "window too small" message.
func (s *Session) RenderTooSmall(dst *core.Screen) {
	y := s.Cfg.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorError)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", s.minW, s.minH), core.ColorMuted)
}

// Blank returns a placeholder of n underscores.
func Blank(n int) string {
	return strings.Repeat("_", max(n, 0))
}
