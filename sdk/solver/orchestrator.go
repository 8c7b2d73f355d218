// Package solver implements counterfactual regret minimization over the
// exact game trees in sdk/games, driven by sdk/walker's TreeWalker: a
// GameTree of per-InfoState regrets and strategy sums, trained by
// CfrVisitor and reported on by StatisticsVisitor/BestResponseVisitor,
// orchestrated by Orchestrator. Single-threaded: these games are small
// enough to solve exactly without sharding the tree across workers.
package solver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/cfrsolver/internal/randutil"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/walker"
)

// exploitabilityBatch is how many Monte-Carlo iterations TrainToExploitability
// runs between exploitability checks.
const exploitabilityBatch = 200

// Orchestrator owns one game's training state: the shared GameTree and the
// single deterministically-seeded RNG reused across every sampled
// iteration — one PRNG for the whole run, never re-seeded mid-training.
// The RNG is built by internal/randutil, which bridges math/rand/v2's PCG
// into the v1 rand.Source the walker and sdk/engine expect. Clock and
// Logger are only read at exploitability-batch checkpoints, never inside
// TrainForIters's per-node recursion, to keep I/O off the hot path.
type Orchestrator struct {
	Game   engine.Game
	Tree   *GameTree
	Clock  quartz.Clock
	Logger *log.Logger

	rng        *rand.Rand
	iterations int
}

// NewOrchestrator builds an Orchestrator for game, seeding its RNG once
// from cfg.Seed and building the GameTree's InfoState entries up front via
// BuilderVisitor.
func NewOrchestrator(game engine.Game, cfg TrainingConfig) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tree := NewGameTree()
	if err := Build(game, tree); err != nil {
		return nil, fmt.Errorf("solver: building game tree: %w", err)
	}
	return &Orchestrator{
		Game:   game,
		Tree:   tree,
		Clock:  quartz.NewReal(),
		Logger: log.Default(),
		rng:    randutil.New(cfg.Seed),
	}, nil
}

func (o *Orchestrator) clock() quartz.Clock {
	if o.Clock == nil {
		return quartz.NewReal()
	}
	return o.Clock
}

func (o *Orchestrator) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// TrainForIters runs n Monte-Carlo CFR iterations and returns the mean
// root utility observed across them.
func (o *Orchestrator) TrainForIters(ctx context.Context, n int) (float64, error) {
	var sum float64
	visitor := NewCfrVisitor(o.Tree)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		util, err := (walker.TreeWalker{}).MonteCarloIterate(o.Game, o.rng, visitor)
		if err != nil {
			return 0, err
		}
		if visitor.Err != nil {
			return 0, visitor.Err
		}
		sum += util
		o.iterations++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

// RootExploitability runs one full-tree statistics pass using the current
// average strategy, then one best-response pass per player, and returns
// the sum of both players' exploitability gains — a complete exploitability
// measurement sums both players' best-response gains, not just one.
func (o *Orchestrator) RootExploitability() (float64, error) {
	stats := NewStatisticsVisitor(o.Tree)
	if _, err := (walker.TreeWalker{}).WalkTree(o.Game, stats); err != nil {
		return 0, err
	}
	if stats.Err != nil {
		return 0, stats.Err
	}

	var total float64
	for _, target := range []engine.Player{engine.IP, engine.OOP} {
		br := NewBestResponseVisitor(o.Tree, stats, target)
		if _, err := (walker.TreeWalker{}).WalkTree(o.Game, br); err != nil {
			return 0, err
		}
		if br.Err != nil {
			return 0, br.Err
		}
		// Root utilities are OOP's; IP's gain is measured on IP's side.
		util, brUtil := stats.RootUtil, br.RootUtil
		if target == engine.IP {
			util, brUtil = -util, -brUtil
		}
		gain, ok := NodeExploitability(util, brUtil)
		if ok {
			total += gain
		}
	}
	return total, nil
}

// TrainToExploitability repeatedly trains fixed-size batches until the
// measured root exploitability drops below epsilon, checking ctx between
// batches for cooperative cancellation. There's no mid-batch cancellation;
// only between batches.
func (o *Orchestrator) TrainToExploitability(ctx context.Context, epsilon float64) error {
	clock := o.clock()
	logger := o.logger()
	started := clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := o.TrainForIters(ctx, exploitabilityBatch); err != nil {
			return err
		}
		exploit, err := o.RootExploitability()
		if err != nil {
			return err
		}
		logger.Info("training checkpoint",
			"iterations", o.iterations,
			"exploitability_pct", exploit,
			"elapsed", clock.Now().Sub(started))
		if exploit <= epsilon {
			return nil
		}
	}
}

// Report returns a diff-friendly snapshot of the current average
// strategy.
func (o *Orchestrator) Report() (Report, error) {
	stats := NewStatisticsVisitor(o.Tree)
	util, err := (walker.TreeWalker{}).WalkTree(o.Game, stats)
	if err != nil {
		return Report{}, err
	}
	if stats.Err != nil {
		return Report{}, stats.Err
	}
	return BuildReport(o.Tree, o.iterations, util), nil
}
