package engine

import "strings"

// HistoryNodeKind distinguishes an ordinary action from a street-dealing
// event recorded in the history.
type HistoryNodeKind uint8

const (
	HistoryNodeActionKind HistoryNodeKind = iota
	HistoryNodeStreetKind
)

// HistoryNode is a sum type over {Action, StreetMarker}; a StreetMarker
// records a board-dealing (chance) event.
type HistoryNode struct {
	Kind   HistoryNodeKind
	Action Action
	Street Street
}

func actionNode(a Action) HistoryNode { return HistoryNode{Kind: HistoryNodeActionKind, Action: a} }
func streetNode(s Street) HistoryNode { return HistoryNode{Kind: HistoryNodeStreetKind, Street: s} }

func (n HistoryNode) String() string {
	if n.Kind == HistoryNodeStreetKind {
		return n.Street.String()
	}
	return n.Action.String()
}

// Closure classifies what the most recent action does to the betting
// round: nothing, a fold (always ends the hand outright), or a
// round-closing action (Call or Check-Check, which ends the round but only
// ends the hand if no further streets remain).
type Closure uint8

const (
	ClosureNone Closure = iota
	ClosureFold
	ClosureRound
)

// History is the ordered sequence of actions and street markers that make
// up one path through the game tree, plus the cached current street (the
// most recent StreetMarker, or Preflop if none has been recorded yet).
type History struct {
	nodes  []HistoryNode
	street Street
}

// NewHistory starts a history at the given street (Preflop for Kuhn/Leduc;
// for postflop games the starting history already contains a Flop
// StreetMarker — callers append it with AppendStreet before play begins).
func NewHistory(start Street) History {
	return History{street: start}
}

// AppendAction returns a new History with the action appended. History is
// treated as an immutable value: Node clones on branch rather than
// mutating a shared History.
func (h History) AppendAction(a Action) History {
	nodes := make([]HistoryNode, len(h.nodes), len(h.nodes)+1)
	copy(nodes, h.nodes)
	nodes = append(nodes, actionNode(a))
	return History{nodes: nodes, street: h.street}
}

// AppendStreet returns a new History with a street marker appended and the
// cached street updated.
func (h History) AppendStreet(s Street) History {
	nodes := make([]HistoryNode, len(h.nodes), len(h.nodes)+1)
	copy(nodes, h.nodes)
	nodes = append(nodes, streetNode(s))
	return History{nodes: nodes, street: s}
}

// CurrentStreet returns the cached current street.
func (h History) CurrentStreet() Street { return h.street }

// Nodes returns the underlying sequence (read-only use by callers).
func (h History) Nodes() []HistoryNode { return h.nodes }

// lastAction returns the last action node, or false when the history is
// empty or ends in a street marker (street markers never sit between the
// two actions that close a betting round, since a marker is only appended
// once the round has already closed).
func (h History) lastAction() (Action, bool) {
	if len(h.nodes) == 0 {
		return Action{}, false
	}
	last := h.nodes[len(h.nodes)-1]
	if last.Kind != HistoryNodeActionKind {
		return Action{}, false
	}
	return last.Action, true
}

func (h History) secondLastAction() (Action, bool) {
	if len(h.nodes) < 2 {
		return Action{}, false
	}
	prev := h.nodes[len(h.nodes)-2]
	if prev.Kind != HistoryNodeActionKind {
		return Action{}, false
	}
	return prev.Action, true
}

// Closure reports what kind of betting-round closure the most recent
// action represents: last is Fold => ClosureFold; last is Call, or last
// two are both Check => ClosureRound; otherwise ClosureNone.
func (h History) Closure() Closure {
	last, ok := h.lastAction()
	if !ok {
		return ClosureNone
	}
	switch last.Kind {
	case ActionFold:
		return ClosureFold
	case ActionCall:
		return ClosureRound
	case ActionCheck:
		if prev, ok := h.secondLastAction(); ok && prev.Kind == ActionCheck {
			return ClosureRound
		}
	}
	return ClosureNone
}

// IsTerminal reports whether the last action is Fold or Call, or the last
// two actions are both Check. This is the raw closing trigger; whether it
// also ends the *hand* (as opposed to just the betting round) additionally
// depends on whether further streets remain, which is decided at the
// Node/Game level.
func (h History) IsTerminal() bool {
	return h.Closure() != ClosureNone
}

// String concatenates the canonical renderings of every node, used for
// InfoState string keys and the diagnostic printer.
func (h History) String() string {
	var sb strings.Builder
	for _, n := range h.nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Len reports the number of history nodes (actions plus street markers),
// used to order the diagnostic strategy printer by history length.
func (h History) Len() int { return len(h.nodes) }
