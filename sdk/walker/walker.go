package walker

import (
	"fmt"
	"math/rand"

	"github.com/lox/cfrsolver/sdk/engine"
)

// method distinguishes the two traversal modes the recursive kernel
// supports.
type method uint8

const (
	methodFull method = iota
	methodMonteCarlo
)

// TreeWalker dispatches a Visitor over a Game's tree. It holds no state of
// its own between calls; the tree maps it indirectly mutates (via a
// CfrVisitor) belong to the caller.
type TreeWalker struct{}

// WalkTree performs a full traversal: every Deal the game enumerates is
// visited, and at every street-completing node every remaining card is
// recursed into and averaged. Deals are weighted by IPWeight*OOPWeight so
// that a range-weighted postflop game's root utility reflects the relative
// likelihood of each hole-card assignment.
func (TreeWalker) WalkTree(game engine.Game, visitor Visitor) (float64, error) {
	deals, err := game.GenerateDeals()
	if err != nil {
		return 0, err
	}
	if len(deals) == 0 {
		return 0, fmt.Errorf("walker: game.GenerateDeals returned no deals")
	}

	var weightedSum, weightTotal float64
	for _, deal := range deals {
		weight := deal.IPWeight * deal.OOPWeight
		if weight <= 0 {
			continue
		}
		root := newRootNode(game, deal)
		util, err := iterateTree(game, root, nil, methodFull, visitor)
		if err != nil {
			return 0, err
		}
		weightedSum += weight * util
		weightTotal += weight
	}
	if weightTotal == 0 {
		return 0, fmt.Errorf("walker: every deal had zero combined range weight")
	}

	rootUtil := weightedSum / weightTotal
	visitor.VisitRootNode(engine.InfoState{}, rootUtil)
	return rootUtil, nil
}

// MonteCarloIterate performs one sampled iteration: a single game.Deal(rng)
// draws the cards, and every street-completing node draws its next card
// once from the node's own (already-shuffled) deck.
func (TreeWalker) MonteCarloIterate(game engine.Game, rng *rand.Rand, visitor Visitor) (float64, error) {
	deal, err := game.Deal(rng)
	if err != nil {
		return 0, err
	}
	root := newRootNode(game, deal)
	util, err := iterateTree(game, root, rng, methodMonteCarlo, visitor)
	if err != nil {
		return 0, err
	}
	visitor.VisitRootNode(engine.InfoState{}, util)
	return util, nil
}

func newRootNode(game engine.Game, deal engine.Deal) *engine.Node {
	node := &engine.Node{
		Player:    engine.OOP,
		Cards:     deal.Cards,
		Deck:      deal.Deck,
		History:   deal.History,
		Pot:       game.InitialPot(),
		ReachProb: [2]float64{1.0, 1.0},
	}
	node.Actions = game.LegalActions(node.History)
	return node
}

// iterateTree is the shared recursive kernel. It branches on the node's
// classification: terminal leaves pay off through the showdown
// collaborator; street-completing nodes deal the next card (once for
// Monte-Carlo, averaged over every possibility for full traversal);
// decisions ask the visitor for action probabilities, recurse into every
// legal action with a zero-sum sign flip, and only then (post-order) call
// VisitActionNode with action_probs/action_utils/util already filled in —
// visitors that need the children's results (every visitor here does)
// depend on that ordering.
func iterateTree(game engine.Game, node *engine.Node, rng *rand.Rand, m method, visitor Visitor) (float64, error) {
	switch node.Classify(game) {
	case engine.NodeTerminal:
		visitor.VisitTerminalNode(node)
		won, err := game.PlayerWins(node)
		if err != nil {
			return 0, err
		}
		return node.Pot.Payoff(node.Player, won), nil

	case engine.NodeStreetCompleting:
		visitor.VisitStreetCompletingNode(node)
		sign := 1.0
		if node.Player == engine.IP {
			sign = -1.0
		}

		if m == methodMonteCarlo {
			card, nextDeck := node.Deck.DrawNext()
			nextStreet := node.History.CurrentStreet().NextStreet(card)
			child := node.NextStreetNode(game, nextStreet, nextDeck)
			childUtil, err := iterateTree(game, child, rng, m, visitor)
			if err != nil {
				return 0, err
			}
			return sign * childUtil, nil
		}

		remaining := node.Deck.Remaining()
		if len(remaining) == 0 {
			return 0, fmt.Errorf("walker: street-completing node has no remaining cards to deal")
		}
		var sum float64
		for i, card := range remaining {
			nextStreet := node.History.CurrentStreet().NextStreet(card)
			nextDeck := node.Deck.WithoutIndex(i)
			child := node.NextStreetNode(game, nextStreet, nextDeck)
			childUtil, err := iterateTree(game, child, rng, m, visitor)
			if err != nil {
				return 0, err
			}
			sum += sign * childUtil
		}
		return sum / float64(len(remaining)), nil

	default: // NodeDecision
		probs := visitor.GetActionProbs(node)
		if len(probs) != len(node.Actions) {
			return 0, fmt.Errorf("walker: GetActionProbs returned %d probabilities for %d legal actions", len(probs), len(node.Actions))
		}
		node.ActionProbs = probs
		node.ActionUtils = node.ZeroUtils()
		node.Util = 0

		for i, action := range node.Actions {
			child, err := node.NextActionNode(game, action, probs[i])
			if err != nil {
				return 0, err
			}
			childUtil, err := iterateTree(game, child, rng, m, visitor)
			if err != nil {
				return 0, err
			}
			node.ActionUtils[i] = -childUtil
			node.Util += probs[i] * node.ActionUtils[i]
		}

		visitor.VisitActionNode(node)
		return node.Util, nil
	}
}
