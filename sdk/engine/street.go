package engine

import (
	"fmt"
	"strings"

	"github.com/lox/cfrsolver/poker"
)

// StreetKind enumerates the betting rounds. StreetNone is a sentinel for
// "not applicable" (it never appears inside a live History).
type StreetKind uint8

const (
	StreetNone StreetKind = iota
	StreetPreflop
	StreetFlop
	StreetTurn
	StreetRiver
)

// Street is the current betting round plus the board cards revealed so far.
// Preflop carries an empty board; Flop/Turn/River carry the board dealt at
// that point.
type Street struct {
	Kind  StreetKind
	Board []poker.Card
}

// Preflop is the starting street for Kuhn/Leduc-style games.
func Preflop() Street { return Street{Kind: StreetPreflop} }

// NextStreet advances the street, appending a newly dealt card to the
// board. Panics if called on River or None: advancing past the last
// street is a logic bug in the caller, not a recoverable runtime error.
func (s Street) NextStreet(card poker.Card) Street {
	board := make([]poker.Card, len(s.Board), len(s.Board)+1)
	copy(board, s.Board)
	board = append(board, card)

	switch s.Kind {
	case StreetPreflop:
		return Street{Kind: StreetFlop, Board: board}
	case StreetFlop:
		return Street{Kind: StreetTurn, Board: board}
	case StreetTurn:
		return Street{Kind: StreetRiver, Board: board}
	default:
		panic(fmt.Sprintf("engine: cannot advance past street %v", s.Kind))
	}
}

// ToUint8 numbers the streets 0 (None) through 4 (River), matching the
// num_streets() comparison used to tell terminal leaves from
// street-completing nodes.
func (s Street) ToUint8() uint8 {
	switch s.Kind {
	case StreetPreflop:
		return 1
	case StreetFlop:
		return 2
	case StreetTurn:
		return 3
	case StreetRiver:
		return 4
	default:
		return 0
	}
}

func (s Street) IsFlop() bool  { return s.Kind == StreetFlop }
func (s Street) IsTurn() bool  { return s.Kind == StreetTurn }
func (s Street) IsRiver() bool { return s.Kind == StreetRiver }

func (s Street) boardString() string {
	var sb strings.Builder
	for _, c := range s.Board {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// String renders the street for diagnostic keys: "P" for preflop, else a
// one-letter prefix ("f"/"t"/"r") followed by the board.
func (s Street) String() string {
	switch s.Kind {
	case StreetPreflop:
		return "P"
	case StreetFlop:
		return "f" + s.boardString()
	case StreetTurn:
		return "t" + s.boardString()
	case StreetRiver:
		return "r" + s.boardString()
	default:
		panic("engine: cannot render None street")
	}
}
