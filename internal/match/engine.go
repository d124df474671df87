// Package match implements the verse/reference pairing game state: card
// selection, pair evaluation and the timed feedback that follows each pair.
package match

import (
	"slices"
	"time"

	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

// Default feedback windows.
const (
	DefaultCorrectDelay   = 800 * time.Millisecond
	DefaultIncorrectDelay = 1000 * time.Millisecond
)

// Delays holds how long each kind of feedback stays visible.
type Delays struct {
	Correct   time.Duration
	Incorrect time.Duration
}

// DefaultDelays returns the standard feedback windows.
func DefaultDelays() Delays {
	return Delays{Correct: DefaultCorrectDelay, Incorrect: DefaultIncorrectDelay}
}

// normalized replaces non-positive delays with the defaults.
func (d Delays) normalized() Delays {
	if d.Correct <= 0 {
		d.Correct = DefaultCorrectDelay
	}
	if d.Incorrect <= 0 {
		d.Incorrect = DefaultIncorrectDelay
	}
	return d
}

// Outcome describes what a Select call did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // Unknown, matched or in-feedback card
	OutcomeSelected                  // First card of a pair picked
	OutcomeDeselected                // The selected card was picked again
	OutcomeMatch                     // Second card completes a correct pair
	OutcomeMismatch                  // Second card completes a wrong pair
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "ignored"
	}
}

// Feedback is an evaluated pair waiting for its delay to elapse.
type Feedback struct {
	A, B    int
	Correct bool
}

// Has reports whether id is one of the two evaluated cards.
func (f Feedback) Has(id int) bool {
	return f.A == id || f.B == id
}

// Engine drives one round of the matching game.
//
// Evaluating a pair clears both selection flags at once, so the player can
// pick new cards while earlier feedback is still showing. Each evaluated pair
// keeps its own timer.
type Engine struct {
	cards  []Card
	index  map[int]int
	delays Delays
	sched  *puzzle.Scheduler

	selected int
	hasSel   bool
	feedback []Feedback

	attempts int
	mistakes int
}

// NewEngine creates an engine over cards.
func NewEngine(cards []Card, delays Delays) *Engine {
	e := &Engine{
		delays: delays.normalized(),
		sched:  puzzle.NewScheduler(),
	}
	e.Reset(cards)
	return e
}

// Reset starts a new round with cards. Feedback timers from the previous
// round become no-ops.
func (e *Engine) Reset(cards []Card) {
	e.sched.Invalidate()
	e.cards = make([]Card, len(cards))
	e.index = make(map[int]int, len(cards))
	for i, c := range cards {
		c.Selected = false
		c.Matched = false
		e.cards[i] = c
		e.index[c.ID] = i
	}
	e.hasSel = false
	e.feedback = e.feedback[:0]
	e.attempts = 0
	e.mistakes = 0
}

// Select handles a click on card id.
func (e *Engine) Select(id int) Outcome {
	i, ok := e.index[id]
	if !ok {
		return OutcomeIgnored
	}
	card := &e.cards[i]
	if card.Matched || e.inFeedback(id) {
		return OutcomeIgnored
	}

	if !e.hasSel {
		card.Selected = true
		e.selected, e.hasSel = id, true
		return OutcomeSelected
	}
	if e.selected == id {
		card.Selected = false
		e.hasSel = false
		return OutcomeDeselected
	}

	first := &e.cards[e.index[e.selected]]
	first.Selected = false
	card.Selected = false
	e.hasSel = false

	correct := first.PairKey == card.PairKey && first.Kind != card.Kind
	e.attempts++
	if !correct {
		e.mistakes++
	}
	e.evaluate(first.ID, card.ID, correct)

	if correct {
		return OutcomeMatch
	}
	return OutcomeMismatch
}

// evaluate starts the feedback window for a pair.
func (e *Engine) evaluate(a, b int, correct bool) {
	delay := e.delays.Incorrect
	if correct {
		delay = e.delays.Correct
	}
	e.feedback = append(e.feedback, Feedback{A: a, B: b, Correct: correct})
	e.sched.After(delay, func() { e.resolve(a, b, correct) })
}

// resolve ends the feedback for a pair. The captured ids are checked again
// since the cards may have changed while the timer was pending.
func (e *Engine) resolve(a, b int, correct bool) {
	e.feedback = slices.DeleteFunc(e.feedback, func(f Feedback) bool {
		return f.A == a && f.B == b
	})
	if !correct {
		return
	}
	for _, id := range []int{a, b} {
		if i, ok := e.index[id]; ok && !e.cards[i].Matched {
			e.cards[i].Matched = true
			e.cards[i].Selected = false
		}
	}
}

func (e *Engine) inFeedback(id int) bool {
	for _, f := range e.feedback {
		if f.Has(id) {
			return true
		}
	}
	return false
}

// Advance moves the feedback clock forward. It returns the number of
// feedback windows that ended.
func (e *Engine) Advance(dt time.Duration) int {
	return e.sched.Advance(dt)
}

// Cards returns a copy of the cards in deal order.
func (e *Engine) Cards() []Card {
	return slices.Clone(e.cards)
}

// Card returns the card with id.
func (e *Engine) Card(id int) (Card, bool) {
	i, ok := e.index[id]
	if !ok {
		return Card{}, false
	}
	return e.cards[i], true
}

// Selected returns the card waiting for its partner, if any.
func (e *Engine) Selected() (int, bool) {
	return e.selected, e.hasSel
}

// Feedback returns the pairs whose feedback is still showing, oldest first.
func (e *Engine) Feedback() []Feedback {
	return slices.Clone(e.feedback)
}

// FeedbackFor returns the active feedback that involves card id.
func (e *Engine) FeedbackFor(id int) (Feedback, bool) {
	for _, f := range e.feedback {
		if f.Has(id) {
			return f, true
		}
	}
	return Feedback{}, false
}

// Solved reports whether every card is matched.
func (e *Engine) Solved() bool {
	if len(e.cards) == 0 {
		return false
	}
	for _, c := range e.cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// MatchedPairs returns the number of pairs already matched.
func (e *Engine) MatchedPairs() int {
	n := 0
	for _, c := range e.cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// Attempts returns the number of pairs evaluated this round.
func (e *Engine) Attempts() int { return e.attempts }

// Mistakes returns the number of wrong pairs this round.
func (e *Engine) Mistakes() int { return e.mistakes }

// Delays returns the feedback windows in use.
func (e *Engine) Delays() Delays { return e.delays }
