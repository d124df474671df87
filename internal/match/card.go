package match

import "math/rand"

// Kind tells a verse card from a reference card.
type Kind int

const (
	KindVerse Kind = iota
	KindReference
)

func (k Kind) String() string {
	if k == KindReference {
		return "reference"
	}
	return "verse"
}

// Card is one tile on the board. Exactly two cards share a PairKey: one verse
// and one reference.
type Card struct {
	ID       int
	Kind     Kind
	Text     string
	PairKey  string
	Selected bool
	Matched  bool
}

// Pair is a verse and the reference it belongs to.
type Pair struct {
	Key       string
	Verse     string
	Reference string
}

// Deal turns pairs into a shuffled deck. Card ids follow the dealt order.
func Deal(pairs []Pair, rng *rand.Rand) []Card {
	cards := make([]Card, 0, len(pairs)*2)
	for _, p := range pairs {
		cards = append(cards,
			Card{Kind: KindVerse, Text: p.Verse, PairKey: p.Key},
			Card{Kind: KindReference, Text: p.Reference, PairKey: p.Key},
		)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].ID = i
	}
	return cards
}
