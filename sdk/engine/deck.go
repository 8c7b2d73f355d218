package engine

import (
	"math/rand"

	"github.com/lox/cfrsolver/poker"
)

// Deck is the remaining chance available to a Node: an ordered slice of
// cards representing the future chance sequence. It's shuffled once when
// the Deal is built, then drawn from sequentially during Monte-Carlo
// sampling. Full traversal instead enumerates every entry via
// Remaining/WithoutIndex.
type Deck struct {
	cards []poker.Card
}

// NewDeck wraps an already-ordered slice of cards as a Deck.
func NewDeck(cards []poker.Card) Deck {
	cp := make([]poker.Card, len(cards))
	copy(cp, cards)
	return Deck{cards: cp}
}

// Remaining returns the cards left in deck order.
func (d Deck) Remaining() []poker.Card { return d.cards }

// Len reports how many cards remain.
func (d Deck) Len() int { return len(d.cards) }

// DrawNext pops the first remaining card, the single draw Monte-Carlo
// sampling performs at a street-completing node.
func (d Deck) DrawNext() (poker.Card, Deck) {
	card := d.cards[0]
	rest := make([]poker.Card, len(d.cards)-1)
	copy(rest, d.cards[1:])
	return card, Deck{cards: rest}
}

// WithoutIndex returns a Deck with the card at position i removed,
// preserving the relative order of the rest — used by full traversal when
// enumerating every remaining card at a street-completing node.
func (d Deck) WithoutIndex(i int) Deck {
	rest := make([]poker.Card, 0, len(d.cards)-1)
	rest = append(rest, d.cards[:i]...)
	rest = append(rest, d.cards[i+1:]...)
	return Deck{cards: rest}
}

// Shuffle returns a Deck with its cards shuffled by rng (Fisher-Yates),
// used once when a Game builds a Deal for sampled iteration.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	cp := make([]poker.Card, len(d.cards))
	copy(cp, d.cards)
	for i := len(cp) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return Deck{cards: cp}
}
