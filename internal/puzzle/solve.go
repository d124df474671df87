package puzzle

// IsSolved reports whether every distinct letter of answer is decoded: for each
// letter L, the guess stored under Encrypt(L) must be L. Missing or wrong
// guesses for any letter leave the puzzle unsolved.
func IsSolved(answer string, c Cipher, guesses *GuessMap[rune]) bool {
	for _, l := range DistinctLetters(answer) {
		if guesses.Get(c.Encrypt(l)) != l {
			return false
		}
	}
	return true
}

// Correct counts the distinct letters of answer that are decoded correctly.
func Correct(answer string, c Cipher, guesses *GuessMap[rune]) int {
	n := 0
	for _, l := range DistinctLetters(answer) {
		if guesses.Get(c.Encrypt(l)) == l {
			n++
		}
	}
	return n
}
