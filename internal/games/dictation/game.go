// Package dictation implements chapter dictation: every verse of the
// selected verse's chapter is written out from memory, one letter at a time.
package dictation

import (
	"strings"

	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

const (
	minWidth  = 40
	minHeight = 12
)

// Game implements the chapter dictation puzzle.
type Game struct {
	session.Session

	cfg     config.DictationConfig
	verses  []verse.Verse
	last    int // corpus index of the chapter's last verse
	text    []rune
	words   []puzzle.Word
	wordOf  map[int]int // rune position -> word index
	letters []int       // rune positions of letters, in order
	cursor  int         // index into letters
	typed   map[int]bool
	hinted  map[int]bool

	cellAt   map[int]session.Point
	lineOf   map[int]int
	lines    int
	rowStep  int
	overflow bool
}

// New creates a new dictation game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dictation", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dictation"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chapter Dictation"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Write out a whole chapter from memory, letter by letter"
}

// Reset initializes the game on the start verse's chapter.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Begin(cfg, minWidth, minHeight)
	g.cfg = g.Opts.Games.Dictation
	g.loadChapter(g.Index)
}

// loadChapter enters the chapter containing corpus verse i.
func (g *Game) loadChapter(i int) {
	g.Load(i, g.cfg.Hints)

	chapter := g.Verse.Chapter()
	g.verses = g.Opts.Corpus.InChapter(chapter)
	g.last = g.Index
	texts := make([]string, len(g.verses))
	for k, v := range g.verses {
		texts[k] = v.Text
		if j := g.Opts.Corpus.IndexOf(v.Reference); j > g.last {
			g.last = j
		}
	}
	g.Verse = verse.Verse{Reference: chapter, Text: strings.Join(texts, " ")}

	g.text = []rune(g.Verse.Text)
	g.words = puzzle.Words(g.Verse.Text)
	g.wordOf = make(map[int]int, len(g.text))
	g.letters = g.letters[:0]
	g.Total = 0
	for wi, w := range g.words {
		if w.Letter != "" {
			g.Total++
		}
		for k := range []rune(w.Raw) {
			pos := w.Start + k
			g.wordOf[pos] = wi
			if puzzle.IsLetter(g.text[pos]) {
				g.letters = append(g.letters, pos)
			}
		}
	}

	g.cursor = 0
	g.typed = make(map[int]bool)
	g.hinted = make(map[int]bool)
	g.layout()
	if len(g.letters) == 0 {
		g.Finish()
	}
}

// Verses returns the verses of the chapter in play.
func (g *Game) Verses() []verse.Verse {
	return g.verses
}

// Resize adapts the layout to a new screen size, keeping progress.
func (g *Game) Resize(width, height int) {
	g.Session.Resize(width, height)
	g.layout()
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Advance()

	if g.TooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, e := range in.Events() {
		g.handle(e)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handle(e core.Event) {
	switch e.Action {
	case core.ActionReset:
		g.loadChapter(g.Index)
		return
	case core.ActionConfirm:
		if g.Solved {
			g.loadChapter(g.Opts.Corpus.Next(g.last))
		}
		return
	}

	if g.Solved {
		return
	}

	switch e.Action {
	case core.ActionLetter:
		g.typeLetter(e.Letter)
	case core.ActionHint:
		g.hint()
	}
}

// current returns the rune position awaiting input.
func (g *Game) current() (int, bool) {
	if g.cursor >= len(g.letters) {
		return 0, false
	}
	return g.letters[g.cursor], true
}

func (g *Game) typeLetter(letter rune) {
	pos, ok := g.current()
	if !ok {
		return
	}
	if g.text[pos] != letter {
		g.Mistake()
		g.Flash.Start(pos, config.Millis(g.cfg.FlashMS), nil)
		return
	}
	g.typed[pos] = true
	g.advance()
}

// hint writes the rest of the current word.
func (g *Game) hint() {
	pos, ok := g.current()
	if !ok || !g.CanHint() {
		return
	}
	wi := g.wordOf[pos]
	for ok && g.wordOf[pos] == wi {
		g.typed[pos] = true
		g.hinted[pos] = true
		g.cursor++
		pos, ok = g.current()
	}
	g.UseHint()
	g.advance()
}

// advance moves the cursor past written letters and checks completion.
func (g *Game) advance() {
	for g.cursor < len(g.letters) && g.typed[g.letters[g.cursor]] {
		g.cursor++
	}
	if g.cursor >= len(g.letters) {
		g.Finish()
	}
}

// Progress returns letters written and letters in the chapter.
func (g *Game) Progress() (int, int) {
	return g.cursor, len(g.letters)
}
