package puzzle

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGuessMapMovesLetter(t *testing.T) {
	g := NewGuessMap[rune]()
	g.Set('X', 'A')
	g.Set('Y', 'A')

	want := map[rune]rune{'Y': 'A'}
	if diff := cmp.Diff(want, g.Entries()); diff != "" {
		t.Errorf("letter should move to the new key (-want +got):\n%s", diff)
	}
	if k, ok := g.KeyOf('A'); !ok || k != 'Y' {
		t.Errorf("KeyOf('A') = %q, %v; want 'Y', true", k, ok)
	}
}

func TestGuessMapOverwriteAndClear(t *testing.T) {
	g := NewGuessMap[int]()
	g.Set(3, 'E')
	g.Set(3, 'T')
	if g.Get(3) != 'T' {
		t.Errorf("Get(3) = %q, want 'T'", g.Get(3))
	}

	g.Set(3, 0)
	if g.Get(3) != 0 || g.Len() != 0 {
		t.Errorf("zero letter should clear the key, got %q (len %d)", g.Get(3), g.Len())
	}

	g.Set(1, 'A')
	g.Set(2, 'B')
	g.Clear(1)
	if g.Len() != 1 {
		t.Errorf("Len() after Clear = %d, want 1", g.Len())
	}
	g.Reset()
	if g.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", g.Len())
	}
}

func TestGuessMapNeverDuplicatesLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGuessMap[rune]()

	for i := 0; i < 2000; i++ {
		key := rune('A' + rng.Intn(26))
		letter := rune('A' + rng.Intn(26))
		if rng.Intn(5) == 0 {
			letter = 0
		}
		g.Set(key, letter)

		holders := make(map[rune]rune)
		for k, v := range g.Entries() {
			if prev, dup := holders[v]; dup {
				t.Fatalf("step %d: letter %q held by %q and %q", i, v, prev, k)
			}
			holders[v] = k
		}
	}
}
