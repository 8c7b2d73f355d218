package engine

import "fmt"

// Pot tracks each player's contribution. Total() = IP + OOP; ToCall() =
// |IP - OOP|. Bet sizes come in two flavors, fixed chip amounts and
// pot-relative percentages, both resolved against the pot here.
type Pot struct {
	contrib [2]float64 // indexed by Player
}

// NewPot builds a pot with the given starting IP/OOP contributions.
func NewPot(ip, oop float64) Pot {
	return Pot{contrib: [2]float64{ip, oop}}
}

func (p Pot) Contribution(player Player) float64 { return p.contrib[player] }

func (p Pot) Total() float64 { return p.contrib[IP] + p.contrib[OOP] }

func (p Pot) ToCall() float64 {
	d := p.contrib[IP] - p.contrib[OOP]
	if d < 0 {
		return -d
	}
	return d
}

// Update applies an action taken by player to the pot, returning the
// updated Pot (Pot is a value type; callers hold it inside Node, which
// clones on branch). Check and Fold never change the pot.
func (p Pot) Update(player Player, action Action) (Pot, error) {
	switch action.Kind {
	case ActionCheck, ActionFold:
		return p, nil
	case ActionBet:
		next := p
		next.contrib[player] += p.betAmount(p.Total(), action.Size)
		return next, nil
	case ActionRaise:
		toCall := p.ToCall()
		next := p
		next.contrib[player] += p.betAmount(p.Total()+toCall, action.Size) + toCall
		return next, nil
	case ActionCall:
		next := p
		next.contrib[player] = p.contrib[player.Opponent()]
		return next, nil
	default:
		return p, fmt.Errorf("engine: invalid action %v at Pot.Update", action)
	}
}

// betAmount converts a Bet size into a chip amount relative to the
// reference pot size.
func (p Pot) betAmount(referencePot float64, size Bet) float64 {
	if size.Kind == BetKindChips {
		return float64(size.Amount)
	}
	return referencePot * float64(size.Amount) / 100.0
}

// Payoff returns the signed chip result for player given the showdown
// outcome: opponent's contribution if player won, -player's contribution
// if player lost, player's own contribution back if the hand chopped
// (won == nil).
func (p Pot) Payoff(player Player, won *bool) float64 {
	switch {
	case won == nil:
		return p.contrib[player]
	case *won:
		return p.contrib[player.Opponent()]
	default:
		return -p.contrib[player]
	}
}
