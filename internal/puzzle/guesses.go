package puzzle

// GuessMap maps a key (a ciphertext letter, a cell position...) to one guessed
// letter. A letter occupies at most one key at a time: assigning it to a new
// key clears it from the key that held it before.
type GuessMap[K comparable] struct {
	m map[K]rune
}

// NewGuessMap creates an empty guess map.
func NewGuessMap[K comparable]() *GuessMap[K] {
	return &GuessMap[K]{m: make(map[K]rune)}
}

// Set assigns letter to key. A zero letter clears the key.
func (g *GuessMap[K]) Set(key K, letter rune) {
	if letter == 0 {
		g.Clear(key)
		return
	}
	for k, v := range g.m {
		if v == letter && k != key {
			delete(g.m, k)
		}
	}
	g.m[key] = letter
}

// Clear removes the guess for key.
func (g *GuessMap[K]) Clear(key K) {
	delete(g.m, key)
}

// Get returns the guess for key, or 0 if there is none.
func (g *GuessMap[K]) Get(key K) rune {
	return g.m[key]
}

// KeyOf returns the key currently holding letter.
func (g *GuessMap[K]) KeyOf(letter rune) (K, bool) {
	for k, v := range g.m {
		if v == letter {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Len returns the number of keys holding a guess.
func (g *GuessMap[K]) Len() int {
	return len(g.m)
}

// Reset removes every guess.
func (g *GuessMap[K]) Reset() {
	clear(g.m)
}

// Entries returns a copy of the current guesses.
func (g *GuessMap[K]) Entries() map[K]rune {
	out := make(map[K]rune, len(g.m))
	for k, v := range g.m {
		out[k] = v
	}
	return out
}
