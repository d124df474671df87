// Package puzzle holds the puzzle-state engine shared by the verse games:
// substitution ciphers, the guess map, solve and hint logic, focus traversal,
// the difficulty word hider, scoring and a deferred-callback scheduler.
//
// Everything here is single-threaded and free of UI dependencies. Callers
// pre-validate input to uppercase A-Z letters, so nothing here returns errors
// for malformed guesses.
package puzzle

import (
	"strings"
	"unicode"
)

// IsLetter reports whether r is an uppercase A-Z letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Normalize uppercases text and folds runs of whitespace to single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToUpper(text)), " ")
}

// Letters returns the A-Z letters of text in order, duplicates included.
func Letters(text string) []rune {
	var out []rune
	for _, r := range text {
		if IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}

// DistinctLetters returns each A-Z letter of text once, in first-seen order.
func DistinctLetters(text string) []rune {
	var seen [26]bool
	var out []rune
	for _, r := range text {
		if !IsLetter(r) || seen[r-'A'] {
			continue
		}
		seen[r-'A'] = true
		out = append(out, r)
	}
	return out
}

// Word is one whitespace-separated token of a verse.
type Word struct {
	Index  int    // Position in the verse (0-based)
	Start  int    // Rune offset of the token in the verse text
	Raw    string // Token as written, punctuation included
	Letter string // A-Z letters only, e.g. "LORD'S" -> "LORDS"
}

// First returns the first letter of the word, or 0 if it has none.
func (w Word) First() rune {
	if w.Letter == "" {
		return 0
	}
	return rune(w.Letter[0])
}

// Words splits text into word tokens, keeping offsets into the rune slice.
func Words(text string) []Word {
	var (
		words []Word
		start = -1
		runes = []rune(text)
	)
	flush := func(end int) {
		raw := string(runes[start:end])
		words = append(words, Word{
			Index:  len(words),
			Start:  start,
			Raw:    raw,
			Letter: string(Letters(raw)),
		})
		start = -1
	}
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if start >= 0 {
				flush(i)
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		flush(len(runes))
	}
	return words
}
