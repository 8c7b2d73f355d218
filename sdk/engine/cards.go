package engine

import (
	"fmt"

	"github.com/lox/cfrsolver/poker"
)

// cardLess orders cards by rank then suit. HoleCards normalizes on this
// ordering rather than suit-then-rank so that two hands differing only in
// suit sort the same way a player would read them off a table.
func cardLess(a, b poker.Card) bool {
	if a.Rank() != b.Rank() {
		return a.Rank() < b.Rank()
	}
	return a.Suit() < b.Suit()
}

// HoleCards is an unordered pair of cards held by one player, normalized so
// that Card1 >= Card2 under the canonical (rank, suit) ordering. Two pairs
// built from the same two cards in either order compare equal.
type HoleCards struct {
	Card1, Card2 poker.Card
}

// NewHoleCards builds a normalized HoleCards from two concrete cards.
func NewHoleCards(a, b poker.Card) HoleCards {
	if cardLess(a, b) {
		a, b = b, a
	}
	return HoleCards{Card1: a, Card2: b}
}

// NewSingleHoleCard builds a HoleCards holding only one card, the shape
// Kuhn and Leduc deal. Card2 is left as the zero Card and treated as
// absent by String/Hand/Contains.
func NewSingleHoleCard(c poker.Card) HoleCards {
	return HoleCards{Card1: c}
}

// IsSingle reports whether this HoleCards holds only one card.
func (h HoleCards) IsSingle() bool {
	return h.Card2 == 0
}

func (h HoleCards) String() string {
	if h.IsSingle() {
		return h.Card1.String()
	}
	return h.Card1.String() + h.Card2.String()
}

// Hand returns the hole cards combined as a poker.Hand bitset, for handing
// to the showdown evaluator alongside the board.
func (h HoleCards) Hand() poker.Hand {
	if h.IsSingle() {
		return poker.NewHand(h.Card1)
	}
	return poker.NewHand(h.Card1, h.Card2)
}

// Contains reports whether c is one of the hole cards.
func (h HoleCards) Contains(c poker.Card) bool {
	if h.IsSingle() {
		return h.Card1 == c
	}
	return h.Card1 == c || h.Card2 == c
}

// PlayerCards pairs each player's hole cards for one deal.
type PlayerCards struct {
	cards [2]HoleCards // indexed by Player
}

// NewPlayerCards builds a PlayerCards from each player's hole cards.
func NewPlayerCards(ip, oop HoleCards) PlayerCards {
	return PlayerCards{cards: [2]HoleCards{ip, oop}}
}

// Get returns the given player's hole cards.
func (pc PlayerCards) Get(player Player) HoleCards { return pc.cards[player] }

func (pc PlayerCards) String() string {
	return fmt.Sprintf("%s|%s", pc.cards[IP], pc.cards[OOP])
}
