package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/cfrsolver/sdk/engine"
)

// Range is a weighted collection of concrete hole-card combos, the
// PostflopHoldem Game's per-player input.
type Range struct {
	weights map[engine.HoleCards]float64
}

// NewRange builds an empty range.
func NewRange() *Range {
	return &Range{weights: make(map[engine.HoleCards]float64)}
}

// ParseRange parses the semicolon-separated range grammar: each element is
// `RrRr` (explicit combo), `RR` (pair class), `RRs`/`RRo` (suited/offsuit
// class), optionally followed by `:weight`. A class's weight is applied
// identically to every combo it expands to; weight 0 excludes the entry.
func ParseRange(s string) (*Range, error) {
	r := NewRange()
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addPart(part); err != nil {
			return nil, fmt.Errorf("notation: invalid range part %q: %w", part, err)
		}
	}
	return r, nil
}

func (r *Range) addPart(part string) error {
	notation := part
	weight := 1.0

	if idx := strings.IndexByte(part, ':'); idx >= 0 {
		notation = part[:idx]
		w, err := strconv.ParseFloat(part[idx+1:], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %w", err)
		}
		weight = w
	}

	if weight == 0 {
		return nil
	}

	combos, err := ParseHoleCards(notation)
	if err != nil {
		return err
	}
	for _, c := range combos {
		r.weights[c] = weight
	}
	return nil
}

// Weight returns the weight of a specific combo (0 if absent).
func (r *Range) Weight(h engine.HoleCards) float64 {
	return r.weights[h]
}

// Combos returns every combo in the range with non-zero weight.
func (r *Range) Combos() []engine.HoleCards {
	out := make([]engine.HoleCards, 0, len(r.weights))
	for h := range r.weights {
		out = append(out, h)
	}
	return out
}

// Size reports how many combos the range holds.
func (r *Range) Size() int { return len(r.weights) }
