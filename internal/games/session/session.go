// Package session holds what every verse game shares: resolved settings,
// the verse in play, hint and mistake bookkeeping, deferred effects, layout
// and click hit-testing, and the common screens (header, solved, too small).
package session

import (
	"math/rand"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

// Session is embedded by each game. Its fields are owned by the game.
type Session struct {
	Cfg   core.RuntimeConfig
	Opts  Options
	Rng   *rand.Rand
	Sched *puzzle.Scheduler
	Flash *Flashes
	Hits  HitMap

	Index int         // Corpus position of the verse in play
	Verse verse.Verse // Verse in play
	Tick  uint64

	HintsLeft int
	HintsUsed int
	Mistakes  int
	Total     int // Scored units: letters, words or pairs

	Solved bool
	Score  int

	TooSmall bool
	minW     int
	minH     int
}

// Begin prepares a fresh session: settings, RNG and the start verse index.
func (s *Session) Begin(cfg core.RuntimeConfig, minW, minH int) {
	s.Cfg = cfg
	s.Opts = CurrentOptions()
	s.Rng = rand.New(rand.NewSource(cfg.Seed))
	if s.Sched == nil {
		s.Sched = puzzle.NewScheduler()
	}
	s.Flash = NewFlashes(s.Sched)
	s.Tick = 0
	s.minW, s.minH = minW, minH
	s.checkSize()

	s.Index = -1
	if s.Opts.StartVerse != "" {
		s.Index = s.Opts.Corpus.IndexOf(s.Opts.StartVerse)
	}
	if s.Index < 0 {
		s.Index = s.Opts.Corpus.Random(s.Rng)
	}
}

// Load enters verse i with a hint budget. Deferred effects of the previous
// verse are invalidated.
func (s *Session) Load(i, hints int) {
	s.Sched.Invalidate()
	s.Flash.Reset()
	s.Hits.Reset()

	v, ok := s.Opts.Corpus.At(i)
	if !ok {
		i = 0
		v, _ = s.Opts.Corpus.At(0)
	}
	s.Index = i
	s.Verse = v

	s.HintsLeft = max(hints, 0)
	s.HintsUsed = 0
	s.Mistakes = 0
	s.Total = 0
	s.Solved = false
	s.Score = 0
}

// NextIndex returns the corpus position after the verse in play.
func (s *Session) NextIndex() int {
	return s.Opts.Corpus.Next(s.Index)
}

// Advance counts a tick and runs due deferred effects.
func (s *Session) Advance() {
	s.Tick++
	s.Sched.Advance(s.Cfg.TickDuration())
}

// CanHint reports whether a hint may be requested.
func (s *Session) CanHint() bool {
	return !s.Solved && s.HintsLeft > 0
}

// UseHint spends one hint. Games call it only after something was revealed.
func (s *Session) UseHint() {
	if s.HintsLeft > 0 {
		s.HintsLeft--
		s.HintsUsed++
	}
}

// Mistake records an incorrect attempt.
func (s *Session) Mistake() {
	s.Mistakes++
}

// Penalties returns hints used plus incorrect attempts.
func (s *Session) Penalties() int {
	return s.HintsUsed + s.Mistakes
}

// Finish marks the puzzle solved and computes the score. Later calls are
// no-ops.
func (s *Session) Finish() {
	if s.Solved {
		return
	}
	s.Solved = true
	s.Score = puzzle.Score(s.Total, s.Penalties())
}

// Resize updates the screen size.
func (s *Session) Resize(width, height int) {
	s.Cfg.ScreenW = width
	s.Cfg.ScreenH = height
	s.checkSize()
}

func (s *Session) checkSize() {
	s.TooSmall = s.Cfg.ScreenW < s.minW || s.Cfg.ScreenH < s.minH
}

// State returns the platform-facing game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.Score,
		GameOver: s.Solved,
		Paused:   s.TooSmall,
		Label:    s.Verse.Reference,
	}
}

// Common returns the shared part of a game snapshot.
func (s *Session) Common() Common {
	return Common{
		Tick:      s.Tick,
		Reference: s.Verse.Reference,
		HintsLeft: s.HintsLeft,
		HintsUsed: s.HintsUsed,
		Mistakes:  s.Mistakes,
		Total:     s.Total,
		Solved:    s.Solved,
		Score:     s.Score,
		Gen:       s.Sched.Generation(),
	}
}

// Common is the shared part of every game snapshot.
type Common struct {
	Tick      uint64
	Reference string
	HintsLeft int
	HintsUsed int
	Mistakes  int
	Total     int
	Solved    bool
	Score     int
	Gen       uint64
}
