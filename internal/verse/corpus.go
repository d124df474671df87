// Package verse provides the static verse corpus the games draw from.
package verse

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

//go:embed data/verses.yaml
var defaultCorpusYAML []byte

// Verse is one corpus record. Text is uppercase.
type Verse struct {
	Reference string `yaml:"reference"`
	Text      string `yaml:"text"`
}

// Chapter returns the chapter key of the verse reference.
func (v Verse) Chapter() string {
	return ChapterFor(v.Reference)
}

type corpusFile struct {
	Verses []Verse `yaml:"verses"`
}

// Corpus is an ordered, read-only list of verses.
type Corpus struct {
	verses []Verse
	byRef  map[string]int
}

// New builds a corpus from verses, normalizing text to uppercase.
// Empty and duplicate references are rejected.
func New(verses []Verse) (*Corpus, error) {
	c := &Corpus{
		verses: make([]Verse, 0, len(verses)),
		byRef:  make(map[string]int, len(verses)),
	}
	for i, v := range verses {
		v.Reference = strings.TrimSpace(v.Reference)
		v.Text = puzzle.Normalize(v.Text)
		if v.Reference == "" {
			return nil, fmt.Errorf("verse: entry %d: missing reference", i)
		}
		if v.Text == "" {
			return nil, fmt.Errorf("verse: %s: missing text", v.Reference)
		}
		if _, dup := c.byRef[v.Reference]; dup {
			return nil, fmt.Errorf("verse: duplicate reference %s", v.Reference)
		}
		c.byRef[v.Reference] = len(c.verses)
		c.verses = append(c.verses, v)
	}
	if len(c.verses) == 0 {
		return nil, fmt.Errorf("verse: corpus is empty")
	}
	return c, nil
}

// Parse reads a YAML corpus document.
func Parse(data []byte) (*Corpus, error) {
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("verse: parse corpus: %w", err)
	}
	return New(f.Verses)
}

// Load reads a corpus file. An empty path yields the embedded corpus.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("verse: read corpus %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("verse: %s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded corpus.
func Default() *Corpus {
	c, err := Parse(defaultCorpusYAML)
	if err != nil {
		panic(err) // embedded data is covered by tests
	}
	return c
}

// Len returns the number of verses.
func (c *Corpus) Len() int {
	return len(c.verses)
}

// At returns verse i.
func (c *Corpus) At(i int) (Verse, bool) {
	if i < 0 || i >= len(c.verses) {
		return Verse{}, false
	}
	return c.verses[i], true
}

// All returns a copy of every verse in corpus order.
func (c *Corpus) All() []Verse {
	return slices.Clone(c.verses)
}

// IndexOf returns the position of reference, or -1.
func (c *Corpus) IndexOf(reference string) int {
	if i, ok := c.byRef[strings.TrimSpace(reference)]; ok {
		return i
	}
	return -1
}

// Lookup returns the verse with reference.
func (c *Corpus) Lookup(reference string) (Verse, bool) {
	return c.At(c.IndexOf(reference))
}

// Random returns a random verse position.
func (c *Corpus) Random(rng *rand.Rand) int {
	return rng.Intn(len(c.verses))
}

// Next returns the position after i, wrapping to the first verse.
func (c *Corpus) Next(i int) int {
	if i < 0 || i+1 >= len(c.verses) {
		return 0
	}
	return i + 1
}

// Chapter returns the chapter key of reference.
func (c *Corpus) Chapter(reference string) string {
	return ChapterFor(reference)
}

// InChapter returns the verses of chapter in corpus order. Unknown chapters
// yield nil.
func (c *Corpus) InChapter(chapter string) []Verse {
	var out []Verse
	for _, v := range c.verses {
		if v.Chapter() == chapter {
			out = append(out, v)
		}
	}
	return out
}

// Chapters returns the distinct chapter keys in first-seen order.
func (c *Corpus) Chapters() []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range c.verses {
		ch := v.Chapter()
		if !seen[ch] {
			seen[ch] = true
			out = append(out, ch)
		}
	}
	return out
}

// Distractors picks up to n verse positions other than i, taking verses from
// the same chapter first and filling from the rest of the corpus.
func (c *Corpus) Distractors(i, n int, rng *rand.Rand) []int {
	self, ok := c.At(i)
	if !ok || n <= 0 {
		return nil
	}

	var near, far []int
	for j, v := range c.verses {
		switch {
		case j == i:
		case v.Chapter() == self.Chapter():
			near = append(near, j)
		default:
			far = append(far, j)
		}
	}
	shuffle(rng, near)
	shuffle(rng, far)

	out := append(near, far...)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func shuffle(rng *rand.Rand, s []int) {
	rng.Shuffle(len(s), func(a, b int) { s[a], s[b] = s[b], s[a] })
}
