// Package holdem implements PostflopHoldem: a constrained no-limit
// hold'em subgame that starts on a fixed flop with weighted ranges on
// both sides.
package holdem

import (
	"fmt"
	"math/rand"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/notation"
)

// Holdem is a Game parametrized by a Config.
type Holdem struct {
	cfg *Config
}

// New builds a Holdem game from a validated config.
func New(cfg *Config) *Holdem { return &Holdem{cfg: cfg} }

func fullDeck() []poker.Card {
	cards := make([]poker.Card, 0, 52)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			cards = append(cards, poker.NewCard(rank, suit))
		}
	}
	return cards
}

func without(cards []poker.Card, exclude ...poker.Card) []poker.Card {
	out := make([]poker.Card, 0, len(cards))
outer:
	for _, c := range cards {
		for _, e := range exclude {
			if c == e {
				continue outer
			}
		}
		out = append(out, c)
	}
	return out
}

func clashes(h engine.HoleCards, cards []poker.Card) bool {
	for _, c := range cards {
		if h.Contains(c) {
			return true
		}
	}
	return false
}

func (h *Holdem) InitialPot() engine.Pot {
	half := h.cfg.InitialPot / 2
	return engine.NewPot(half, half)
}

func (h *Holdem) Deck() engine.Deck {
	return engine.NewDeck(without(fullDeck(), h.cfg.Board...))
}

// NumStreets is 4: a completed betting round on the River (Street.ToUint8
// == 4) is the only way to reach showdown; Flop and Turn rounds instead
// trigger a street-completing deal.
func (h *Holdem) NumStreets() uint8 { return 4 }

func (h *Holdem) startingStreet() engine.Street {
	return engine.Street{Kind: engine.StreetFlop, Board: h.cfg.Board}
}

func (h *Holdem) startingHistory() engine.History {
	return engine.NewHistory(engine.Preflop()).AppendStreet(h.startingStreet())
}

func (h *Holdem) sizesForStreet(street engine.Street) []engine.Bet {
	switch {
	case street.IsFlop():
		return h.cfg.FlopSizes
	case street.IsTurn():
		return h.cfg.TurnSizes
	case street.IsRiver():
		return h.cfg.RiverSizes
	default:
		return nil
	}
}

// LegalActions offers Check plus one Bet per configured size at the start
// of a street or after a Check; Fold/Call plus one Raise per configured
// size after a Bet; and Fold/Call only after a Raise (a single raise per
// street, the same constrained-raising shape Leduc uses).
func (h *Holdem) LegalActions(history engine.History) []engine.Action {
	sizes := h.sizesForStreet(history.CurrentStreet())

	defaultMenu := make([]engine.Action, 0, len(sizes)+1)
	defaultMenu = append(defaultMenu, engine.Check)
	for _, s := range sizes {
		defaultMenu = append(defaultMenu, engine.MakeBet(s))
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
		menu := make([]engine.Action, 0, len(sizes)+2)
		menu = append(menu, engine.Fold, engine.Call)
		for _, s := range sizes {
			menu = append(menu, engine.MakeRaise(s))
		}
		return menu
	case engine.ActionRaise:
		return []engine.Action{engine.Fold, engine.Call}
	default:
		return nil
	}
}

func (h *Holdem) LegalFirstActions() []engine.Action {
	return h.LegalActions(h.startingHistory())
}

func (h *Holdem) available(r *notation.Range, exclude []poker.Card) ([]engine.HoleCards, []float64) {
	combos := r.Combos()
	out := make([]engine.HoleCards, 0, len(combos))
	weights := make([]float64, 0, len(combos))
	for _, c := range combos {
		if clashes(c, exclude) {
			continue
		}
		out = append(out, c)
		weights = append(weights, r.Weight(c))
	}
	return out, weights
}

func weightedPick(rng *rand.Rand, combos []engine.HoleCards, weights []float64) (engine.HoleCards, float64) {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return combos[i], weights[i]
		}
	}
	return combos[len(combos)-1], weights[len(weights)-1]
}

// Deal samples one hand: an IP combo drawn proportional to its range
// weight, then an OOP combo drawn the same way from the combos that don't
// clash with the board or IP's cards, then the remaining 45 cards
// shuffled for the Turn/River draws.
func (h *Holdem) Deal(rng *rand.Rand) (engine.Deal, error) {
	ipCombos, ipWeights := h.available(h.cfg.IPRange, h.cfg.Board)
	if len(ipCombos) == 0 {
		return engine.Deal{}, fmt.Errorf("holdem: IP range has no combo compatible with the board")
	}
	ipHole, ipWeight := weightedPick(rng, ipCombos, ipWeights)

	exclude := append(append([]poker.Card{}, h.cfg.Board...), ipHole.Card1, ipHole.Card2)
	oopCombos, oopWeights := h.available(h.cfg.OOPRange, exclude)
	if len(oopCombos) == 0 {
		return engine.Deal{}, fmt.Errorf("holdem: OOP range has no combo compatible with the board and IP's hand")
	}
	oopHole, oopWeight := weightedPick(rng, oopCombos, oopWeights)

	used := append(exclude, oopHole.Card1, oopHole.Card2)
	deck := engine.NewDeck(without(fullDeck(), used...)).Shuffle(rng)

	return engine.Deal{
		Cards:     engine.NewPlayerCards(ipHole, oopHole),
		Deck:      deck,
		IPWeight:  ipWeight,
		OOPWeight: oopWeight,
		History:   h.startingHistory(),
	}, nil
}

// GenerateDeals enumerates the Cartesian product of the two ranges,
// excluding any pairing that clashes with the board or between the two
// hands.
func (h *Holdem) GenerateDeals() ([]engine.Deal, error) {
	ipCombos := h.cfg.IPRange.Combos()
	oopCombos := h.cfg.OOPRange.Combos()
	deals := make([]engine.Deal, 0, len(ipCombos)*len(oopCombos))

	for _, ipHole := range ipCombos {
		if clashes(ipHole, h.cfg.Board) {
			continue
		}
		ipWeight := h.cfg.IPRange.Weight(ipHole)

		for _, oopHole := range oopCombos {
			if clashes(oopHole, h.cfg.Board) {
				continue
			}
			if clashes(oopHole, []poker.Card{ipHole.Card1, ipHole.Card2}) {
				continue
			}
			oopWeight := h.cfg.OOPRange.Weight(oopHole)

			used := make([]poker.Card, 0, 7)
			used = append(used, h.cfg.Board...)
			used = append(used, ipHole.Card1, ipHole.Card2, oopHole.Card1, oopHole.Card2)

			deals = append(deals, engine.Deal{
				Cards:     engine.NewPlayerCards(ipHole, oopHole),
				Deck:      engine.NewDeck(without(fullDeck(), used...)),
				IPWeight:  ipWeight,
				OOPWeight: oopWeight,
				History:   h.startingHistory(),
			})
		}
	}

	if len(deals) == 0 {
		return nil, fmt.Errorf("holdem: no deals generated, ranges may fully clash with the board or each other")
	}
	return deals, nil
}

// PlayerWins evaluates the best 5-of-7 hand rank (2 hole + 5 board cards)
// through the showdown collaborator.
func (h *Holdem) PlayerWins(node *engine.Node) (*bool, error) {
	nodes := node.History.Nodes()
	if len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Kind == engine.HistoryNodeActionKind && last.Action.Kind == engine.ActionFold {
			won := true
			return &won, nil
		}
	}

	board := node.History.CurrentStreet().Board
	myCards := node.Cards.Get(node.Player)
	oppCards := node.Cards.Get(node.Player.Opponent())

	myHand := poker.NewHand(myCards.Card1, myCards.Card2)
	oppHand := poker.NewHand(oppCards.Card1, oppCards.Card2)
	for _, c := range board {
		myHand.AddCard(c)
		oppHand.AddCard(c)
	}

	myRank := poker.Evaluate7Cards(myHand)
	oppRank := poker.Evaluate7Cards(oppHand)

	switch poker.CompareHands(myRank, oppRank) {
	case 1:
		won := true
		return &won, nil
	case -1:
		won := false
		return &won, nil
	default:
		return nil, nil
	}
}
