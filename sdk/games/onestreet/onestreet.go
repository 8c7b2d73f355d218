// Package onestreet implements a fixed three-card, one-board-card toy
// game used to pin the walker's sign conventions by hand: OOP is always
// dealt the 2, IP the 1, the board is always the 3, and OOP is always the
// first to act with a forced opening bet. The showdown rule (higher rank
// wins, board irrelevant) is carried over from sdk/games/kuhn since this
// toy game never pairs the board.
package onestreet

import (
	"math/rand"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
)

// OneStreet is a stateless Game with exactly one enumerated deal.
type OneStreet struct{}

// New builds a OneStreet game.
func New() *OneStreet { return &OneStreet{} }

func deck() []poker.Card {
	return []poker.Card{
		poker.NewCard(poker.Two, poker.Clubs),
		poker.NewCard(poker.Three, poker.Clubs),
		poker.NewCard(poker.Four, poker.Clubs),
	}
}

func (*OneStreet) InitialPot() engine.Pot { return engine.NewPot(1, 1) }

func (*OneStreet) Deck() engine.Deck { return engine.NewDeck(deck()) }

func (*OneStreet) NumStreets() uint8 { return 2 }

// LegalActions implements the forced-bet tree: the empty history and
// every street marker force a single Bet(Chips(1)); after a Bet the menu
// is {Fold, Call, Raise(Chips(1))}; after a Raise it narrows to
// {Fold, Call}.
func (g *OneStreet) LegalActions(history engine.History) []engine.Action {
	nodes := history.Nodes()
	if len(nodes) == 0 {
		return g.LegalFirstActions()
	}

	last := nodes[len(nodes)-1]
	if last.Kind == engine.HistoryNodeStreetKind {
		return g.LegalFirstActions()
	}

	switch last.Action.Kind {
	case engine.ActionBet:
		return []engine.Action{engine.Fold, engine.Call, engine.MakeRaise(engine.Chips(1))}
	case engine.ActionRaise:
		return []engine.Action{engine.Fold, engine.Call}
	default:
		return nil
	}
}

func (*OneStreet) LegalFirstActions() []engine.Action {
	return []engine.Action{engine.MakeBet(engine.Chips(1))}
}

// Deal always returns the one fixed deal this game has: it ignores rng
// since there is nothing left to sample.
func (g *OneStreet) Deal(rng *rand.Rand) (engine.Deal, error) {
	return g.fixedDeal(), nil
}

// GenerateDeals enumerates the single fixed deal: OOP holds the 2, IP
// holds the 1, and the remaining deck holds only the 3 so the
// street-completing node's averaging-over-remaining-cards degenerates to
// the unique forced board.
func (g *OneStreet) GenerateDeals() ([]engine.Deal, error) {
	return []engine.Deal{g.fixedDeal()}, nil
}

func (g *OneStreet) fixedDeal() engine.Deal {
	cards := deck()
	ipCard, oopCard, boardCard := cards[0], cards[1], cards[2]
	return engine.Deal{
		Cards:     engine.NewPlayerCards(engine.NewSingleHoleCard(ipCard), engine.NewSingleHoleCard(oopCard)),
		Deck:      engine.NewDeck([]poker.Card{boardCard}),
		IPWeight:  1,
		OOPWeight: 1,
		History:   engine.NewHistory(engine.Preflop()),
	}
}

// PlayerWins reports whether node.Player wins: Fold always awards the
// non-folding player, otherwise the higher hole-card rank wins (the board
// card never pairs a hand in this toy game, so it plays no part in
// showdown).
func (g *OneStreet) PlayerWins(node *engine.Node) (*bool, error) {
	nodes := node.History.Nodes()
	if len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Kind == engine.HistoryNodeActionKind && last.Action.Kind == engine.ActionFold {
			won := true
			return &won, nil
		}
	}

	myRank := node.Cards.Get(node.Player).Card1.Rank()
	oppRank := node.Cards.Get(node.Player.Opponent()).Card1.Rank()
	switch {
	case myRank > oppRank:
		won := true
		return &won, nil
	case myRank < oppRank:
		won := false
		return &won, nil
	default:
		return nil, nil
	}
}
