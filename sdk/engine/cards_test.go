package engine

import (
	"testing"

	"github.com/lox/cfrsolver/poker"
)

func TestHoleCardsNormalization(t *testing.T) {
	t.Parallel()
	a := poker.NewCard(poker.Ace, poker.Spades)
	b := poker.NewCard(poker.King, poker.Hearts)

	h1 := NewHoleCards(a, b)
	h2 := NewHoleCards(b, a)
	if h1 != h2 {
		t.Errorf("HoleCards(a,b) != HoleCards(b,a): %v vs %v", h1, h2)
	}
	if h1.Card1 != a || h1.Card2 != b {
		t.Errorf("expected higher-rank card first, got %v", h1)
	}
}

func TestHoleCardsContains(t *testing.T) {
	t.Parallel()
	a := poker.NewCard(poker.Ace, poker.Spades)
	b := poker.NewCard(poker.King, poker.Hearts)
	c := poker.NewCard(poker.Queen, poker.Diamonds)

	h := NewHoleCards(a, b)
	if !h.Contains(a) || !h.Contains(b) {
		t.Error("HoleCards should contain both its own cards")
	}
	if h.Contains(c) {
		t.Error("HoleCards should not contain an unrelated card")
	}
}
