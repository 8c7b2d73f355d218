package engine

import "math/rand"

// Deal is the chance outcome for one game instance: both players' hole
// cards, the remaining deck (ordered for deterministic future draws), a
// range-weight pair, and the starting history (for postflop games this
// already contains the initial Flop StreetMarker).
type Deal struct {
	Cards     PlayerCards
	Deck      Deck
	IPWeight  float64
	OOPWeight float64
	History   History
}

// Game is the rules contract each concrete game (Kuhn, Leduc,
// PostflopHoldem) supplies to the tree walker.
type Game interface {
	// InitialPot returns the starting per-player pot contributions.
	InitialPot() Pot

	// Deck returns the canonical, ordered card set this game deals from.
	Deck() Deck

	// NumStreets reports how many betting rounds this game has.
	NumStreets() uint8

	// LegalActions returns the ordered legal actions at history; the order
	// defines index correspondence for regrets and strategy sums.
	LegalActions(history History) []Action

	// LegalFirstActions equals LegalActions(empty history); called once
	// at the root.
	LegalFirstActions() []Action

	// Deal produces one sampled chance outcome, used by Monte-Carlo
	// iteration.
	Deal(rng *rand.Rand) (Deal, error)

	// GenerateDeals enumerates every deal with non-zero probability, used
	// by full traversal.
	GenerateDeals() ([]Deal, error)

	// PlayerWins is called only at terminal nodes: Fold yields the
	// non-folding player; Check/Call compares hands via the showdown
	// collaborator; any other action at a terminal is a logic-bug error.
	PlayerWins(node *Node) (*bool, error)
}
