package engine

import "testing"

func TestHistoryIsTerminal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		actions []Action
		want    bool
	}{
		{"empty", nil, false},
		{"single check", []Action{Check}, false},
		{"check check", []Action{Check, Check}, true},
		{"fold fold", []Action{Fold, Fold}, true},
		{"fold call", []Action{Fold, Call}, true},
		{"fold bet", []Action{Fold, MakeBet(PotPercent(50))}, false},
		{"fold check", []Action{Fold, Check}, false},
		{"fold raise", []Action{Fold, MakeRaise(PotPercent(50))}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewHistory(Preflop())
			for _, a := range tc.actions {
				h = h.AppendAction(a)
			}
			if got := h.IsTerminal(); got != tc.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHistoryStringRendersActions(t *testing.T) {
	t.Parallel()
	h := NewHistory(Preflop())
	h = h.AppendAction(Check)
	h = h.AppendAction(MakeBet(PotPercent(50)))
	h = h.AppendAction(Fold)

	if got, want := h.String(), "XB50F"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHistoryClosureDistinguishesFoldFromRound(t *testing.T) {
	t.Parallel()
	fold := NewHistory(Preflop()).AppendAction(Check).AppendAction(Fold)
	if fold.Closure() != ClosureFold {
		t.Errorf("expected ClosureFold, got %v", fold.Closure())
	}

	round := NewHistory(Preflop()).AppendAction(Check).AppendAction(Check)
	if round.Closure() != ClosureRound {
		t.Errorf("expected ClosureRound, got %v", round.Closure())
	}

	callRound := NewHistory(Preflop()).AppendAction(MakeBet(PotPercent(50))).AppendAction(Call)
	if callRound.Closure() != ClosureRound {
		t.Errorf("expected ClosureRound for Call, got %v", callRound.Closure())
	}
}
