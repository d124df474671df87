package puzzle

import "sort"

// LetterCount is one row of a letter frequency table.
type LetterCount struct {
	Letter rune
	Count  int
}

// Frequencies counts the A-Z letters of text, most frequent first.
// Ties keep first-seen order.
func Frequencies(text string) []LetterCount {
	var counts []LetterCount
	index := make(map[rune]int)
	for _, r := range Letters(text) {
		i, ok := index[r]
		if !ok {
			index[r] = len(counts)
			counts = append(counts, LetterCount{Letter: r})
			i = len(counts) - 1
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// NextHint picks the letter to reveal next: the most frequent letter of answer
// that is neither revealed already nor guessed correctly. It reports false when
// no such letter remains.
func NextHint(answer string, c Cipher, guesses *GuessMap[rune], revealed map[rune]bool) (rune, bool) {
	for _, lc := range Frequencies(answer) {
		if revealed[lc.Letter] {
			continue
		}
		if guesses.Get(c.Encrypt(lc.Letter)) == lc.Letter {
			continue
		}
		return lc.Letter, true
	}
	return 0, false
}
