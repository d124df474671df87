package session

import "github.com/marcislaughter/bible-cryptogram/internal/core"

// Pos is a word placement: line number and column of its first cell.
type Pos struct {
	Line, Col int
}

// Flow places words of the given widths left to right, wrapping into lines no
// wider than width with gap columns between words. A word wider than the
// line starts a line of its own.
func Flow(widths []int, width, gap int) []Pos {
	out := make([]Pos, len(widths))
	line, col := 0, 0
	for i, w := range widths {
		if col > 0 && col+gap+w > width {
			line++
			col = 0
		}
		if col > 0 {
			col += gap
		}
		out[i] = Pos{Line: line, Col: col}
		col += w
	}
	return out
}

// Lines returns how many lines a Flow result spans.
func Lines(pos []Pos) int {
	if len(pos) == 0 {
		return 0
	}
	return pos[len(pos)-1].Line + 1
}

// HitMap maps screen rectangles to cell ids for mouse hit-testing.
type HitMap struct {
	ids   []int
	rects []core.Rect
}

// Reset removes all targets.
func (h *HitMap) Reset() {
	h.ids = h.ids[:0]
	h.rects = h.rects[:0]
}

// Add registers a click target.
func (h *HitMap) Add(id int, r core.Rect) {
	h.ids = append(h.ids, id)
	h.rects = append(h.rects, r)
}

// At returns the id of the target containing (x, y). Later targets win.
func (h *HitMap) At(x, y int) (int, bool) {
	for i := len(h.rects) - 1; i >= 0; i-- {
		if h.rects[i].Contains(x, y) {
			return h.ids[i], true
		}
	}
	return 0, false
}

// Rect returns the rectangle registered for id.
func (h *HitMap) Rect(id int) (core.Rect, bool) {
	for i, got := range h.ids {
		if got == id {
			return h.rects[i], true
		}
	}
	return core.Rect{}, false
}

// Len returns the number of targets.
func (h *HitMap) Len() int {
	return len(h.ids)
}

// Point is a screen cell position.
type Point struct {
	X, Y int
}

// Vertical returns the cell on the nearest row above (dir < 0) or below
// (dir > 0) cur, picking the closest column. It reports false when there is
// no row in that direction.
func Vertical(cells []int, at map[int]Point, cur, dir int) (int, bool) {
	p, ok := at[cur]
	if !ok || dir == 0 {
		return cur, false
	}

	best, found := cur, false
	bestDY, bestDX := 0, 0
	for _, c := range cells {
		q := at[c]
		dy := (q.Y - p.Y) * dir
		if dy <= 0 {
			continue
		}
		dx := abs(q.X - p.X)
		if !found || dy < bestDY || (dy == bestDY && dx < bestDX) {
			best, found = c, true
			bestDY, bestDX = dy, dx
		}
	}
	return best, found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
