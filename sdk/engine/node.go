package engine

import "fmt"

// NodeKind classifies a Node for the tree walker: a terminal leaf, a node
// whose betting round just closed with streets remaining (a chance event
// follows), or an ordinary decision.
type NodeKind uint8

const (
	NodeDecision NodeKind = iota
	NodeStreetCompleting
	NodeTerminal
)

// Node is the per-visit scratch state the Game and TreeWalker exchange.
// Nodes are short-lived and own their data: every transition clones rather
// than mutating a shared Node.
type Node struct {
	Player Player
	Cards  PlayerCards
	Deck   Deck
	History
	Pot Pot

	Actions []Action

	// ReachProb[p] is player p's reach probability along the path to this
	// node under the current strategy.
	ReachProb [2]float64

	// Filled in by the active Visitor during a decision-node visit.
	ActionProbs []float64
	ActionUtils []float64
	Util        float64
}

// PlayerReachProb returns the acting player's own reach probability.
func (n *Node) PlayerReachProb() float64 { return n.ReachProb[n.Player] }

// OpponentReachProb returns the non-acting player's reach probability.
func (n *Node) OpponentReachProb() float64 { return n.ReachProb[n.Player.Opponent()] }

// InfoState returns the identity of this decision from the acting player's
// point of view.
func (n *Node) InfoState() InfoState {
	return InfoState{Player: n.Player, Cards: n.Cards.Get(n.Player), History: n.History}
}

// ZeroUtils returns a zero vector of arity len(Actions).
func (n *Node) ZeroUtils() []float64 {
	return make([]float64, len(n.Actions))
}

// Classify decides whether this node is a terminal leaf, a
// street-completing node (betting round just closed but streets remain),
// or an ordinary decision.
func (n *Node) Classify(game Game) NodeKind {
	switch n.History.Closure() {
	case ClosureFold:
		return NodeTerminal
	case ClosureRound:
		if n.History.CurrentStreet().ToUint8() >= game.NumStreets() {
			return NodeTerminal
		}
		return NodeStreetCompleting
	default:
		return NodeDecision
	}
}

// NextActionNode builds the child Node reached by the acting player taking
// action with probability pAction. The clone-on-branch invariant: the
// child's reach probability for the player now acting (the parent's
// opponent) is untouched, while the child's reach for the player who just
// acted is scaled by pAction — this asymmetry is what CFR's counterfactual
// weighting depends on.
func (n *Node) NextActionNode(game Game, action Action, pAction float64) (*Node, error) {
	actingPlayer := n.Player
	newPot, err := n.Pot.Update(actingPlayer, action)
	if err != nil {
		return nil, err
	}

	child := &Node{
		Player:  actingPlayer.Opponent(),
		Cards:   n.Cards,
		Deck:    n.Deck,
		History: n.History.AppendAction(action),
		Pot:     newPot,
	}
	child.ReachProb = n.ReachProb
	child.ReachProb[actingPlayer] = n.ReachProb[actingPlayer] * pAction

	child.Actions = game.LegalActions(child.History)
	return child, nil
}

// NextStreetNode builds the child Node reached once a betting round closes
// and the next street is dealt. By convention OOP acts first on every
// postflop street.
func (n *Node) NextStreetNode(game Game, nextStreet Street, nextDeck Deck) *Node {
	child := &Node{
		Player:    OOP,
		Cards:     n.Cards,
		Deck:      nextDeck,
		History:   n.History.AppendStreet(nextStreet),
		Pot:       n.Pot,
		ReachProb: n.ReachProb,
	}
	child.Actions = game.LegalActions(child.History)
	return child
}

func (n *Node) String() string {
	return fmt.Sprintf("Node{player=%s cards=%s history=%s pot=%.2f/%.2f}",
		n.Player, n.Cards, n.History, n.Pot.Contribution(IP), n.Pot.Contribution(OOP))
}
