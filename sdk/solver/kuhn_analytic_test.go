package solver

import (
	"math"
	"testing"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/games/kuhn"
	"github.com/lox/cfrsolver/sdk/walker"
)

// loadKuhnAnalyticEquilibrium loads the one-parameter family of Kuhn
// equilibria (parametrized by alpha in [0, 1/3]) directly into strategySum,
// bypassing training entirely.
func loadKuhnAnalyticEquilibrium(tree *GameTree, alpha float64) {
	jack := engine.NewSingleHoleCard(poker.NewCard(poker.Jack, poker.Clubs))
	queen := engine.NewSingleHoleCard(poker.NewCard(poker.Queen, poker.Clubs))
	king := engine.NewSingleHoleCard(poker.NewCard(poker.King, poker.Clubs))

	root := engine.NewHistory(engine.Preflop())
	afterCheck := root.AppendAction(engine.Check)
	afterCheckBet := afterCheck.AppendAction(engine.MakeBet(engine.PotPercent(50)))
	afterBet := root.AppendAction(engine.MakeBet(engine.PotPercent(50)))

	set := func(player engine.Player, cards engine.HoleCards, history engine.History, strategy []float64) {
		key := engine.InfoState{Player: player, Cards: cards, History: history}.Key()
		tree.SetStrategySum(key, strategy)
	}

	// OOP's opening decision {Check, Bet}.
	set(engine.OOP, jack, root, []float64{1 - alpha, alpha})
	set(engine.OOP, queen, root, []float64{1, 0})
	set(engine.OOP, king, root, []float64{1 - 3*alpha, 3 * alpha})

	// OOP facing a bet after checking: {Fold, Call}.
	set(engine.OOP, jack, afterCheckBet, []float64{1, 0})
	set(engine.OOP, queen, afterCheckBet, []float64{2.0/3.0 - alpha, alpha + 1.0/3.0})
	set(engine.OOP, king, afterCheckBet, []float64{0, 1})

	// IP facing OOP's check: {Check, Bet}.
	set(engine.IP, jack, afterCheck, []float64{2.0 / 3.0, 1.0 / 3.0})
	set(engine.IP, queen, afterCheck, []float64{1, 0})
	set(engine.IP, king, afterCheck, []float64{0, 1})

	// IP facing OOP's opening bet: {Fold, Call}.
	set(engine.IP, jack, afterBet, []float64{1, 0})
	set(engine.IP, queen, afterBet, []float64{2.0 / 3.0, 1.0 / 3.0})
	set(engine.IP, king, afterBet, []float64{0, 1})
}

// TestKuhnAnalyticEquilibrium checks that loading the alpha=1/3 analytic
// strategy directly (bypassing training) reproduces the known root EV,
// per-hand OOP utilities, and near-zero exploitability.
func TestKuhnAnalyticEquilibrium(t *testing.T) {
	const alpha = 1.0 / 3.0

	game := kuhn.New()
	tree := NewGameTree()
	loadKuhnAnalyticEquilibrium(tree, alpha)

	stats := NewStatisticsVisitor(tree)
	rootUtil, err := (walker.TreeWalker{}).WalkTree(game, stats)
	if err != nil {
		t.Fatalf("WalkTree error: %v", err)
	}
	if stats.Err != nil {
		t.Fatalf("StatisticsVisitor error: %v", stats.Err)
	}

	const wantRootEV = -1.0 / 18.0
	if math.Abs(rootUtil-wantRootEV) > 1e-6 {
		t.Errorf("root EV = %v, want within 1e-6 of %v", rootUtil, wantRootEV)
	}

	root := engine.NewHistory(engine.Preflop())
	cases := []struct {
		name string
		card poker.Card
		want float64
	}{
		{"jack", poker.NewCard(poker.Jack, poker.Clubs), -1.0},
		{"queen", poker.NewCard(poker.Queen, poker.Clubs), -1.0 / 3.0},
		{"king", poker.NewCard(poker.King, poker.Clubs), 7.0 / 6.0},
	}
	for _, c := range cases {
		key := engine.InfoState{
			Player:  engine.OOP,
			Cards:   engine.NewSingleHoleCard(c.card),
			History: root,
		}.Key()
		got := stats.NodeUtil(key)
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("OOP %s root utility = %v, want within 1e-6 of %v", c.name, got, c.want)
		}
	}

	o := &Orchestrator{Game: game, Tree: tree}
	exploit, err := o.RootExploitability()
	if err != nil {
		t.Fatalf("RootExploitability error: %v", err)
	}
	if exploit > 1e-6 {
		t.Errorf("root exploitability = %v, want < 1e-6 at the analytic equilibrium", exploit)
	}
}
