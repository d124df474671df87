package session

import (
	"time"

	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

// Flashes tracks short-lived highlights (mistake flashes) keyed by cell id.
type Flashes struct {
	sched  *puzzle.Scheduler
	active map[int]puzzle.Timer
}

// NewFlashes creates a flash set on top of sched.
func NewFlashes(sched *puzzle.Scheduler) *Flashes {
	return &Flashes{sched: sched, active: make(map[int]puzzle.Timer)}
}

// Start highlights id for d. A running flash on the same id is replaced.
// then runs when the flash ends, unless it was replaced or reset first.
func (f *Flashes) Start(id int, d time.Duration, then func()) {
	if old, ok := f.active[id]; ok {
		f.sched.Cancel(old)
	}
	var t puzzle.Timer
	t = f.sched.After(d, func() {
		if cur, ok := f.active[id]; !ok || cur != t {
			return
		}
		delete(f.active, id)
		if then != nil {
			then()
		}
	})
	f.active[id] = t
}

// Active reports whether id is highlighted.
func (f *Flashes) Active(id int) bool {
	_, ok := f.active[id]
	return ok
}

// Len returns the number of running flashes.
func (f *Flashes) Len() int {
	return len(f.active)
}

// Reset drops every flash without running its callback.
func (f *Flashes) Reset() {
	for _, t := range f.active {
		f.sched.Cancel(t)
	}
	clear(f.active)
}
