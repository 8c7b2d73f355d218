// Package notation parses the postflop range string grammar: a
// semicolon-separated list of explicit combos, pair classes, and
// suited/offsuit classes, each with an optional weight.
package notation

import (
	"fmt"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
)

// metaKind classifies a parsed hole-card notation before expansion.
type metaKind uint8

const (
	kindExplicit metaKind = iota // "AhAd" — already two concrete cards
	kindPair                     // "AA" — expand to all 6 pair combos
	kindSuited                   // "AKs" — expand to all 4 suited combos
	kindOffsuit                  // "AKo" — expand to all 12 offsuit combos
)

type parsedHoleCards struct {
	kind  metaKind
	rank1 uint8 // higher or equal rank
	rank2 uint8
	card1 poker.Card // only set when kind == kindExplicit
	card2 poker.Card
}

func parseRankChar(c byte) (uint8, error) {
	switch c {
	case '2':
		return poker.Two, nil
	case '3':
		return poker.Three, nil
	case '4':
		return poker.Four, nil
	case '5':
		return poker.Five, nil
	case '6':
		return poker.Six, nil
	case '7':
		return poker.Seven, nil
	case '8':
		return poker.Eight, nil
	case '9':
		return poker.Nine, nil
	case 'T', 't':
		return poker.Ten, nil
	case 'J', 'j':
		return poker.Jack, nil
	case 'Q', 'q':
		return poker.Queen, nil
	case 'K', 'k':
		return poker.King, nil
	case 'A', 'a':
		return poker.Ace, nil
	default:
		return 0, fmt.Errorf("notation: invalid rank character %q", c)
	}
}

// parseHoleCardsNotation parses one hole-card notation token (without its
// optional weight suffix) into its pre-expansion form. Accepts the four
// shapes hole_cards.rs supports: a 2-char pair shorthand ("AA"), a 3-char
// suited/offsuit class ("AKs"/"AKo"), or a 4-char explicit combo
// ("AhAd"/"AsKs").
func parseHoleCardsNotation(s string) (parsedHoleCards, error) {
	switch len(s) {
	case 2:
		r1, err := parseRankChar(s[0])
		if err != nil {
			return parsedHoleCards{}, err
		}
		r2, err := parseRankChar(s[1])
		if err != nil {
			return parsedHoleCards{}, err
		}
		if r1 != r2 {
			return parsedHoleCards{}, fmt.Errorf("notation: %q needs a suited/offsuit suffix (not a pair)", s)
		}
		hi, lo := orderRanks(r1, r2)
		return parsedHoleCards{kind: kindPair, rank1: hi, rank2: lo}, nil

	case 3:
		r1, err := parseRankChar(s[0])
		if err != nil {
			return parsedHoleCards{}, err
		}
		r2, err := parseRankChar(s[1])
		if err != nil {
			return parsedHoleCards{}, err
		}
		if r1 == r2 {
			return parsedHoleCards{}, fmt.Errorf("notation: pocket pairs cannot carry a suited/offsuit suffix: %q", s)
		}
		hi, lo := orderRanks(r1, r2)
		switch s[2] {
		case 's', 'S':
			return parsedHoleCards{kind: kindSuited, rank1: hi, rank2: lo}, nil
		case 'o', 'O':
			return parsedHoleCards{kind: kindOffsuit, rank1: hi, rank2: lo}, nil
		default:
			return parsedHoleCards{}, fmt.Errorf("notation: invalid suited/offsuit marker %q in %q", s[2], s)
		}

	case 4:
		c1, err := poker.ParseCard(s[0:2])
		if err != nil {
			return parsedHoleCards{}, fmt.Errorf("notation: %w", err)
		}
		c2, err := poker.ParseCard(s[2:4])
		if err != nil {
			return parsedHoleCards{}, fmt.Errorf("notation: %w", err)
		}
		if c1 == c2 {
			return parsedHoleCards{}, fmt.Errorf("notation: %q names the same card twice", s)
		}
		return parsedHoleCards{kind: kindExplicit, card1: c1, card2: c2}, nil

	default:
		return parsedHoleCards{}, fmt.Errorf("notation: invalid hole-card notation %q", s)
	}
}

func orderRanks(a, b uint8) (hi, lo uint8) {
	if a >= b {
		return a, b
	}
	return b, a
}

// expand turns a parsed notation into its set of concrete combos. A pair
// class yields all C(4,2)=6 suit pairings; a suited class yields the 4
// same-suit pairings; an offsuit class yields the 12 different-suit
// pairings; an explicit combo yields itself.
func (p parsedHoleCards) expand() []engine.HoleCards {
	switch p.kind {
	case kindExplicit:
		return []engine.HoleCards{engine.NewHoleCards(p.card1, p.card2)}

	case kindPair:
		out := make([]engine.HoleCards, 0, 6)
		for s1 := uint8(0); s1 < 4; s1++ {
			for s2 := s1 + 1; s2 < 4; s2++ {
				out = append(out, engine.NewHoleCards(
					poker.NewCard(p.rank1, s1),
					poker.NewCard(p.rank1, s2),
				))
			}
		}
		return out

	case kindSuited:
		out := make([]engine.HoleCards, 0, 4)
		for s := uint8(0); s < 4; s++ {
			out = append(out, engine.NewHoleCards(
				poker.NewCard(p.rank1, s),
				poker.NewCard(p.rank2, s),
			))
		}
		return out

	case kindOffsuit:
		out := make([]engine.HoleCards, 0, 12)
		for s1 := uint8(0); s1 < 4; s1++ {
			for s2 := uint8(0); s2 < 4; s2++ {
				if s1 == s2 {
					continue
				}
				out = append(out, engine.NewHoleCards(
					poker.NewCard(p.rank1, s1),
					poker.NewCard(p.rank2, s2),
				))
			}
		}
		return out

	default:
		return nil
	}
}

// ParseHoleCards parses a single hole-cards notation (no weight suffix,
// no semicolons) and expands it to its concrete combos.
func ParseHoleCards(s string) ([]engine.HoleCards, error) {
	parsed, err := parseHoleCardsNotation(s)
	if err != nil {
		return nil, err
	}
	return parsed.expand(), nil
}
