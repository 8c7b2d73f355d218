package solver

import (
	"context"
	"math"
	"testing"

	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/games/kuhn"
)

// TestTrainForItersKuhnMeanUtility checks that Kuhn trained for 12,000
// Monte-Carlo iterations with seed 0 lands within 0.0011 of the known
// equilibrium root utility -1/18.
func TestTrainForItersKuhnMeanUtility(t *testing.T) {
	o, err := NewOrchestrator(kuhn.New(), TrainingConfig{Iterations: 12000, Seed: 0})
	if err != nil {
		t.Fatalf("NewOrchestrator error: %v", err)
	}

	mean, err := o.TrainForIters(context.Background(), 12000)
	if err != nil {
		t.Fatalf("TrainForIters error: %v", err)
	}

	const want = -1.0 / 18.0
	if math.Abs(mean-want) > 0.0011 {
		t.Errorf("mean root utility = %v, want within 0.0011 of %v", mean, want)
	}
}

// TestBuildIdempotentKeySet checks that GameTree.build called twice over
// the same game yields identical key sets and vector lengths.
func TestBuildIdempotentKeySet(t *testing.T) {
	game := kuhn.New()

	tree1 := NewGameTree()
	if err := Build(game, tree1); err != nil {
		t.Fatalf("first Build error: %v", err)
	}
	tree2 := NewGameTree()
	if err := Build(game, tree2); err != nil {
		t.Fatalf("second Build error: %v", err)
	}

	keys1, keys2 := tree1.Keys(), tree2.Keys()
	if len(keys1) == 0 {
		t.Fatal("Build produced no InfoStates")
	}
	if len(keys1) != len(keys2) {
		t.Fatalf("key set sizes differ: %d vs %d", len(keys1), len(keys2))
	}
	for _, k := range keys1 {
		if tree1.ActionCount(k) != tree2.ActionCount(k) {
			t.Errorf("InfoState %q: action count differs between builds", k)
		}
	}

	// Re-running Build against the same tree must not change its key set
	// or entry arity (idempotent on re-call).
	sizeBefore := tree1.Size()
	if err := Build(game, tree1); err != nil {
		t.Fatalf("re-Build error: %v", err)
	}
	if tree1.Size() != sizeBefore {
		t.Fatalf("re-Build changed tree size: %d -> %d", sizeBefore, tree1.Size())
	}
}

// TestRootExploitabilityDecreasesWithTraining checks the monotone
// direction CFR guarantees without pinning exact numeric targets: more
// training iterations should not leave a toy game more exploitable than
// fewer.
func TestRootExploitabilityDecreasesWithTraining(t *testing.T) {
	o, err := NewOrchestrator(kuhn.New(), TrainingConfig{Iterations: 1, Seed: 0})
	if err != nil {
		t.Fatalf("NewOrchestrator error: %v", err)
	}

	if _, err := o.TrainForIters(context.Background(), 500); err != nil {
		t.Fatalf("TrainForIters error: %v", err)
	}
	early, err := o.RootExploitability()
	if err != nil {
		t.Fatalf("RootExploitability error: %v", err)
	}

	if _, err := o.TrainForIters(context.Background(), 20000); err != nil {
		t.Fatalf("TrainForIters error: %v", err)
	}
	late, err := o.RootExploitability()
	if err != nil {
		t.Fatalf("RootExploitability error: %v", err)
	}

	if late > early {
		t.Errorf("exploitability rose with more training: early=%v late=%v", early, late)
	}
}

// TestTrainForItersDeterministicForFixedSeed checks determinism at the
// Orchestrator level: two orchestrators built with the same seed and run
// over the same number of iterations must end up with byte-identical
// trees, not merely matching mean utilities.
func TestTrainForItersDeterministicForFixedSeed(t *testing.T) {
	const seed, iters = 42, 500

	run := func() (*Orchestrator, float64) {
		o, err := NewOrchestrator(kuhn.New(), TrainingConfig{Iterations: iters, Seed: seed})
		if err != nil {
			t.Fatalf("NewOrchestrator error: %v", err)
		}
		mean, err := o.TrainForIters(context.Background(), iters)
		if err != nil {
			t.Fatalf("TrainForIters error: %v", err)
		}
		return o, mean
	}

	o1, mean1 := run()
	o2, mean2 := run()

	if mean1 != mean2 {
		t.Fatalf("mean root utility diverged: %v vs %v", mean1, mean2)
	}

	keys := o1.Tree.Keys()
	if len(keys) != len(o2.Tree.Keys()) {
		t.Fatalf("key set sizes diverged: %d vs %d", len(keys), len(o2.Tree.Keys()))
	}
	for _, key := range keys {
		s1, ok := o1.Tree.AverageStrategy(key)
		if !ok {
			t.Fatalf("AverageStrategy(%q) missing on run 1", key)
		}
		s2, ok := o2.Tree.AverageStrategy(key)
		if !ok {
			t.Fatalf("AverageStrategy(%q) missing on run 2", key)
		}
		for i := range s1 {
			if s1[i] != s2[i] {
				t.Errorf("InfoState %q action %d: average strategy diverged: %v vs %v", key, i, s1[i], s2[i])
			}
		}
	}
}

// TestPerturbedStrategyIsExploitable checks that overriding one
// InfoState's strategy sum away from equilibrium makes a best response
// strictly beneficial (positive exploitability), rather than the
// near-zero exploitability a converged strategy gets.
func TestPerturbedStrategyIsExploitable(t *testing.T) {
	game := kuhn.New()
	tree := NewGameTree()
	if err := Build(game, tree); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	// Start from the alpha=1/3 analytic equilibrium, then move one
	// InfoState away from it: IP holding the Queen always bets after OOP's
	// check instead of always checking. A best response must be able to
	// profit from it.
	loadKuhnAnalyticEquilibrium(tree, 1.0/3.0)
	queen := engine.NewSingleHoleCard(poker.NewCard(poker.Queen, poker.Clubs))
	afterCheck := engine.NewHistory(engine.Preflop()).AppendAction(engine.Check)
	key := engine.InfoState{Player: engine.IP, Cards: queen, History: afterCheck}.Key()
	tree.SetStrategySum(key, []float64{0, 1})

	o := &Orchestrator{Game: game, Tree: tree}
	exploit, err := o.RootExploitability()
	if err != nil {
		t.Fatalf("RootExploitability error: %v", err)
	}
	if exploit <= 0 {
		t.Errorf("exploitability = %v, want > 0 for a perturbed strategy", exploit)
	}
}
