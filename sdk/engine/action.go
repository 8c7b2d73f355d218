// Package engine holds the core value types the solver operates on: actions,
// betting history, pots, hole cards and the per-iteration Node/Deal state
// that a Game implementation and the tree walker exchange.
package engine

import "fmt"

// BetKind distinguishes an absolute chip amount from a percentage of the
// current pot.
type BetKind uint8

const (
	BetKindChips BetKind = iota
	BetKindPotPercent
)

// Bet is a sizing for a Bet or Raise action: either an absolute chip count
// or a percentage of the pot at the time of the action. Total ordering
// (Kind then Amount) is only used to keep action enumerations deterministic;
// it carries no pot semantics.
type Bet struct {
	Kind   BetKind
	Amount uint32
}

// Chips builds an absolute-amount bet size.
func Chips(n uint32) Bet { return Bet{Kind: BetKindChips, Amount: n} }

// PotPercent builds a percentage-of-pot bet size.
func PotPercent(p uint32) Bet { return Bet{Kind: BetKindPotPercent, Amount: p} }

func (b Bet) String() string {
	if b.Kind == BetKindChips {
		return fmt.Sprintf("%dc", b.Amount)
	}
	return fmt.Sprintf("%d", b.Amount)
}

// Less gives Bet a total order for deterministic action-list sorting.
func (b Bet) Less(other Bet) bool {
	if b.Kind != other.Kind {
		return b.Kind < other.Kind
	}
	return b.Amount < other.Amount
}

// ActionKind enumerates the closed set of actions a player may take.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionFold
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

// Action is a sum type over {Fold, Check, Call, Bet(size), Raise(size),
// None}. None is the sentinel used for history roots and for best-response
// initialization before any action has occurred.
type Action struct {
	Kind ActionKind
	Size Bet
}

var (
	Fold  = Action{Kind: ActionFold}
	Check = Action{Kind: ActionCheck}
	Call  = Action{Kind: ActionCall}
	None  = Action{Kind: ActionNone}
)

// MakeBet returns a Bet action of the given size.
func MakeBet(size Bet) Action { return Action{Kind: ActionBet, Size: size} }

// MakeRaise returns a Raise action of the given size.
func MakeRaise(size Bet) Action { return Action{Kind: ActionRaise, Size: size} }

// String renders the canonical single-character form used in InfoState
// keys and the diagnostic printer: F, C, X, B<size>, R<size>, -.
func (a Action) String() string {
	switch a.Kind {
	case ActionFold:
		return "F"
	case ActionCheck:
		return "X"
	case ActionCall:
		return "C"
	case ActionBet:
		return "B" + a.Size.String()
	case ActionRaise:
		return "R" + a.Size.String()
	default:
		return "-"
	}
}

// Less gives Action a total order (by Kind then Size) for deterministic
// legal-action enumeration.
func (a Action) Less(other Action) bool {
	if a.Kind != other.Kind {
		return a.Kind < other.Kind
	}
	return a.Size.Less(other.Size)
}
