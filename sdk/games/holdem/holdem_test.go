package holdem

import (
	"math/rand"
	"testing"

	"github.com/lox/cfrsolver/sdk/engine"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestGenerateDealsExcludesBoardClashes(t *testing.T) {
	h := New(DefaultConfig())
	deals, err := h.GenerateDeals()
	if err != nil {
		t.Fatalf("GenerateDeals error: %v", err)
	}
	if len(deals) == 0 {
		t.Fatal("GenerateDeals returned no deals")
	}
	for _, d := range deals {
		for _, c := range h.cfg.Board {
			if d.Cards.Get(engine.IP).Contains(c) || d.Cards.Get(engine.OOP).Contains(c) {
				t.Fatalf("deal %v clashes with board card %v", d, c)
			}
		}
		if d.Cards.Get(engine.IP).Card1 == d.Cards.Get(engine.OOP).Card1 ||
			d.Cards.Get(engine.IP).Card1 == d.Cards.Get(engine.OOP).Card2 ||
			d.Cards.Get(engine.IP).Card2 == d.Cards.Get(engine.OOP).Card1 ||
			d.Cards.Get(engine.IP).Card2 == d.Cards.Get(engine.OOP).Card2 {
			t.Fatalf("deal %v has IP/OOP card overlap", d)
		}
		if d.Deck.Len() != 45 {
			t.Errorf("deal deck length = %d, want 45", d.Deck.Len())
		}
	}
}

func TestDealSamplesCompatibleCombo(t *testing.T) {
	h := New(DefaultConfig())
	rng := rand.New(rand.NewSource(7))
	deal, err := h.Deal(rng)
	if err != nil {
		t.Fatalf("Deal error: %v", err)
	}
	if deal.IPWeight <= 0 || deal.OOPWeight <= 0 {
		t.Errorf("expected positive range weights, got ip=%v oop=%v", deal.IPWeight, deal.OOPWeight)
	}
	if deal.Deck.Len() != 45 {
		t.Errorf("deal deck length = %d, want 45", deal.Deck.Len())
	}
}

func TestLegalActionsAtFlopStart(t *testing.T) {
	h := New(DefaultConfig())
	actions := h.LegalFirstActions()
	// Check + one Bet size (flop_sizes has a single PotPercent(25) entry).
	if len(actions) != 2 || actions[0] != engine.Check {
		t.Fatalf("LegalFirstActions() = %v, want [Check, Bet]", actions)
	}
}

func TestLegalActionsAfterBetOffersFoldCallRaise(t *testing.T) {
	h := New(DefaultConfig())
	start := h.startingHistory()
	afterBet := h.LegalActions(start.AppendAction(engine.MakeBet(engine.PotPercent(25))))
	if len(afterBet) != 3 || afterBet[0] != engine.Fold || afterBet[1] != engine.Call {
		t.Fatalf("LegalActions after bet = %v, want [Fold, Call, Raise]", afterBet)
	}
}

func TestPlayerWinsShowdown(t *testing.T) {
	h := New(DefaultConfig())
	deals, err := h.GenerateDeals()
	if err != nil || len(deals) == 0 {
		t.Fatalf("GenerateDeals error: %v", err)
	}
	d := deals[0]
	turn := d.History.CurrentStreet().NextStreet(d.Deck.Remaining()[0])
	history := d.History.
		AppendAction(engine.Check).AppendAction(engine.Check).
		AppendStreet(turn).
		AppendAction(engine.Check).AppendAction(engine.Check).
		AppendStreet(turn.NextStreet(d.Deck.Remaining()[1]))
	node := &engine.Node{
		Player:  engine.IP,
		Cards:   d.Cards,
		History: history,
	}
	_, err = h.PlayerWins(node)
	if err != nil {
		t.Fatalf("PlayerWins error: %v", err)
	}
}
