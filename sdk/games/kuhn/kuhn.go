// Package kuhn implements the three-card betting game Kuhn poker, the
// smallest game the solver core can train against end to end.
package kuhn

import (
	"math/rand"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
)

// Kuhn is a stateless Game: one hole card per player drawn from the
// 3-card deck {J, Q, K}, one street, bet sized at half pot.
type Kuhn struct{}

// New builds a Kuhn game.
func New() *Kuhn { return &Kuhn{} }

func deck() []poker.Card {
	return []poker.Card{
		poker.NewCard(poker.Jack, poker.Clubs),
		poker.NewCard(poker.Queen, poker.Clubs),
		poker.NewCard(poker.King, poker.Clubs),
	}
}

func (*Kuhn) InitialPot() engine.Pot { return engine.NewPot(1, 1) }

func (*Kuhn) Deck() engine.Deck { return engine.NewDeck(deck()) }

func (*Kuhn) NumStreets() uint8 { return 1 }

// LegalActions implements Kuhn's action menu: at the empty history or
// after a Check, {Check, Bet(PotPercent(50))}; after a Bet, {Fold, Call}.
func (k *Kuhn) LegalActions(history engine.History) []engine.Action {
	nodes := history.Nodes()
	if len(nodes) == 0 {
		return []engine.Action{engine.Check, engine.MakeBet(engine.PotPercent(50))}
	}

	last := nodes[len(nodes)-1]
	if last.Kind != engine.HistoryNodeActionKind {
		return []engine.Action{engine.Check, engine.MakeBet(engine.PotPercent(50))}
	}

	switch last.Action.Kind {
	case engine.ActionCheck:
		return []engine.Action{engine.Check, engine.MakeBet(engine.PotPercent(50))}
	case engine.ActionBet:
		return []engine.Action{engine.Fold, engine.Call}
	default:
		return nil
	}
}

func (k *Kuhn) LegalFirstActions() []engine.Action {
	return k.LegalActions(engine.NewHistory(engine.Preflop()))
}

func (k *Kuhn) Deal(rng *rand.Rand) (engine.Deal, error) {
	shuffled := engine.NewDeck(deck()).Shuffle(rng)
	ipCard, rest := shuffled.DrawNext()
	oopCard, rest := rest.DrawNext()

	return engine.Deal{
		Cards:     engine.NewPlayerCards(engine.NewSingleHoleCard(ipCard), engine.NewSingleHoleCard(oopCard)),
		Deck:      rest,
		IPWeight:  1,
		OOPWeight: 1,
		History:   engine.NewHistory(engine.Preflop()),
	}, nil
}

// GenerateDeals enumerates all six ordered deals of two distinct cards from
// the three-card deck, each given equal weight — the walker's full
// traversal averages them uniformly.
func (k *Kuhn) GenerateDeals() ([]engine.Deal, error) {
	cards := deck()
	deals := make([]engine.Deal, 0, 6)

	for i, ipCard := range cards {
		for j, oopCard := range cards {
			if i == j {
				continue
			}
			remaining := make([]poker.Card, 0, 1)
			for k, c := range cards {
				if k != i && k != j {
					remaining = append(remaining, c)
				}
			}
			deals = append(deals, engine.Deal{
				Cards:     engine.NewPlayerCards(engine.NewSingleHoleCard(ipCard), engine.NewSingleHoleCard(oopCard)),
				Deck:      engine.NewDeck(remaining),
				IPWeight:  1,
				OOPWeight: 1,
				History:   engine.NewHistory(engine.Preflop()),
			})
		}
	}
	return deals, nil
}

// PlayerWins reports whether node.Player wins relative to their opponent.
// A Fold always awards the win to whichever player is left to act next
// (the non-folder); otherwise the single hole card with the higher rank
// wins, ties are impossible with distinct cards but handled anyway.
func (k *Kuhn) PlayerWins(node *engine.Node) (*bool, error) {
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
