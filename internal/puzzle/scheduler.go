package puzzle

import (
	"sort"
	"time"
)

// Timer identifies a scheduled callback.
type Timer struct {
	id  uint64
	gen uint64
}

type task struct {
	id  uint64
	gen uint64
	due time.Duration
	fn  func()
}

// Scheduler runs deferred callbacks against a virtual clock that the owner
// advances once per tick. Every callback is stamped with the generation that
// was current when it was scheduled; Invalidate starts a new generation, and
// callbacks from an older one never run.
type Scheduler struct {
	now    time.Duration
	gen    uint64
	nextID uint64
	tasks  []task
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) Timer {
	s.nextID++
	t := task{id: s.nextID, gen: s.gen, due: s.now + max(delay, 0), fn: fn}
	s.tasks = append(s.tasks, t)
	return Timer{id: t.id, gen: t.gen}
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(t Timer) bool {
	for i, pending := range s.tasks {
		if pending.id == t.id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and runs every due callback of the
// current generation in due order. Callbacks scheduled by a callback run in
// the same call if they are already due. It returns how many callbacks ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	s.now += max(dt, 0)
	ran := 0
	for {
		due := s.popDue()
		if due == nil {
			return ran
		}
		if due.gen != s.gen {
			continue
		}
		due.fn()
		ran++
	}
}

// popDue removes and returns the earliest due task.
func (s *Scheduler) popDue() *task {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].id < s.tasks[j].id
	})
	if len(s.tasks) == 0 || s.tasks[0].due > s.now {
		return nil
	}
	t := s.tasks[0]
	s.tasks = s.tasks[1:]
	return &t
}

// Invalidate starts a new generation. Callbacks scheduled before the call
// become no-ops.
func (s *Scheduler) Invalidate() {
	s.gen++
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Stale reports whether t belongs to an older generation.
func (s *Scheduler) Stale(t Timer) bool {
	return t.gen != s.gen
}

// Pending returns the number of callbacks that would still run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.gen == s.gen {
			n++
		}
	}
	return n
}

// Now returns the scheduler's virtual clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
