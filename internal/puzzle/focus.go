package puzzle

import "slices"

// NextCell returns the cell after cur in cells, wrapping to the first.
// If cur is not in cells the first cell is returned. It reports false only
// when cells is empty, in which case cur is returned unchanged.
func NextCell(cells []int, cur int) (int, bool) {
	if len(cells) == 0 {
		return cur, false
	}
	i := slices.Index(cells, cur)
	if i < 0 {
		return cells[0], true
	}
	return cells[(i+1)%len(cells)], true
}

// PrevCell returns the cell before cur in cells, wrapping to the last.
// If cur is not in cells the last cell is returned.
func PrevCell(cells []int, cur int) (int, bool) {
	if len(cells) == 0 {
		return cur, false
	}
	i := slices.Index(cells, cur)
	if i <= 0 {
		return cells[len(cells)-1], true
	}
	return cells[i-1], true
}

// Focus tracks the active input cell over an explicit, ascending list of
// active cell ids. Each method is one complete state transition.
type Focus struct {
	cells []int
	cur   int
	ok    bool
}

// SetCells replaces the active cells. The current cell is kept when it is
// still active; otherwise focus moves to the first active cell after it,
// wrapping to the first cell.
func (f *Focus) SetCells(cells []int) {
	f.cells = append(f.cells[:0], cells...)
	if len(f.cells) == 0 {
		f.ok = false
		return
	}
	if !f.ok {
		f.cur, f.ok = f.cells[0], true
		return
	}
	if slices.Contains(f.cells, f.cur) {
		return
	}
	for _, c := range f.cells {
		if c > f.cur {
			f.cur = c
			return
		}
	}
	f.cur = f.cells[0]
}

// Cells returns the active cells.
func (f *Focus) Cells() []int {
	return f.cells
}

// Current returns the focused cell, if any.
func (f *Focus) Current() (int, bool) {
	return f.cur, f.ok
}

// Is reports whether id is the focused cell.
func (f *Focus) Is(id int) bool {
	return f.ok && f.cur == id
}

// Focus moves focus to id if it is an active cell.
func (f *Focus) Focus(id int) bool {
	if !slices.Contains(f.cells, id) {
		return false
	}
	f.cur, f.ok = id, true
	return true
}

// Next moves focus to the following cell, wrapping around.
func (f *Focus) Next() (int, bool) {
	next, ok := NextCell(f.cells, f.cur)
	if ok {
		f.cur, f.ok = next, true
	}
	return f.cur, ok
}

// Prev moves focus to the preceding cell, wrapping around.
func (f *Focus) Prev() (int, bool) {
	prev, ok := PrevCell(f.cells, f.cur)
	if ok {
		f.cur, f.ok = prev, true
	}
	return f.cur, ok
}

// Clear drops focus and all cells.
func (f *Focus) Clear() {
	f.cells = f.cells[:0]
	f.ok = false
}
