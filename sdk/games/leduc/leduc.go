// Package leduc implements Leduc hold'em: a six-card deck of paired ranks,
// one hole card, two streets, and a fixed chip-sized bet/raise ladder.
package leduc

import (
	"math/rand"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
)

// Leduc is a stateless Game.
type Leduc struct{}

// New builds a Leduc game.
func New() *Leduc { return &Leduc{} }

func deck() []poker.Card {
	return []poker.Card{
		poker.NewCard(poker.Jack, poker.Clubs),
		poker.NewCard(poker.Jack, poker.Diamonds),
		poker.NewCard(poker.Queen, poker.Clubs),
		poker.NewCard(poker.Queen, poker.Diamonds),
		poker.NewCard(poker.King, poker.Clubs),
		poker.NewCard(poker.King, poker.Diamonds),
	}
}

func (*Leduc) InitialPot() engine.Pot { return engine.NewPot(1, 1) }

func (*Leduc) Deck() engine.Deck { return engine.NewDeck(deck()) }

func (*Leduc) NumStreets() uint8 { return 2 }

// LegalActions implements Leduc's action menu: after Check or at a street
// marker, {Check, Bet(Chips(2)), Bet(Chips(4))}; after Bet, {Fold, Call,
// Raise(Chips(2)), Raise(Chips(4))}; after Raise, {Fold, Call}.
func (l *Leduc) LegalActions(history engine.History) []engine.Action {
	defaultMenu := []engine.Action{
		engine.Check,
		engine.MakeBet(engine.Chips(2)),
		engine.MakeBet(engine.Chips(4)),
	}

	nodes := history.Nodes()
	if len(nodes) == 0 {
		return defaultMenu
	}

	last := nodes[len(nodes)-1]
	if last.Kind == engine.HistoryNodeStreetKind {
		return defaultMenu
	}

	switch last.Action.Kind {
	case engine.ActionCheck:
		return defaultMenu
	case engine.ActionBet:
		return []engine.Action{
			engine.Fold,
			engine.Call,
			engine.MakeRaise(engine.Chips(2)),
			engine.MakeRaise(engine.Chips(4)),
		}
	case engine.ActionRaise:
		return []engine.Action{engine.Fold, engine.Call}
	default:
		return nil
	}
}

func (l *Leduc) LegalFirstActions() []engine.Action {
	return l.LegalActions(engine.NewHistory(engine.Preflop()))
}

func (l *Leduc) Deal(rng *rand.Rand) (engine.Deal, error) {
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

// GenerateDeals enumerates all 30 ordered deals of two distinct cards from
// the six-card deck, each weighted equally.
func (l *Leduc) GenerateDeals() ([]engine.Deal, error) {
	cards := deck()
	deals := make([]engine.Deal, 0, 30)

	for i, ipCard := range cards {
		for j, oopCard := range cards {
			if i == j {
				continue
			}
			remaining := make([]poker.Card, 0, len(cards)-2)
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

// PlayerWins reports whether node.Player wins the showdown. A card that
// matches the flop's rank beats any unpaired card; between two unpaired
// (or two impossible-to-both-pair) hands the higher rank wins; equal ranks
// with neither pairing the board tie.
func (l *Leduc) PlayerWins(node *engine.Node) (*bool, error) {
	nodes := node.History.Nodes()
	if len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Kind == engine.HistoryNodeActionKind && last.Action.Kind == engine.ActionFold {
			won := true
			return &won, nil
		}
	}

	board := node.History.CurrentStreet().Board
	myCard := node.Cards.Get(node.Player).Card1
	oppCard := node.Cards.Get(node.Player.Opponent()).Card1

	var boardRank uint8 = 255
	if len(board) > 0 {
		boardRank = board[0].Rank()
	}

	myPaired := myCard.Rank() == boardRank
	oppPaired := oppCard.Rank() == boardRank

	switch {
	case myPaired && !oppPaired:
		won := true
		return &won, nil
	case oppPaired && !myPaired:
		won := false
		return &won, nil
	case myCard.Rank() > oppCard.Rank():
		won := true
		return &won, nil
	case myCard.Rank() < oppCard.Rank():
		won := false
		return &won, nil
	default:
		return nil, nil
	}
}
