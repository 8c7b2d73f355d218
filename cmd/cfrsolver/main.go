// Command cfrsolver trains and reports on the counterfactual regret
// minimization solver in sdk/solver against one of the games in
// sdk/games. There is no blueprint file to load or save: every run
// trains from scratch against a deterministic seed and prints its own
// statistics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/cfrsolver/internal/config"
	"github.com/lox/cfrsolver/poker"
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/games/holdem"
	"github.com/lox/cfrsolver/sdk/games/kuhn"
	"github.com/lox/cfrsolver/sdk/games/leduc"
	"github.com/lox/cfrsolver/sdk/solver"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Train TrainCmd `cmd:"" help:"train a game to a fixed iteration count or exploitability target"`
	Eval  EvalCmd  `cmd:"" help:"train briefly, then print root-level statistics"`
}

type gameFlags struct {
	Game     string `help:"game to train: kuhn, leduc, or holdem" enum:"kuhn,leduc,holdem" default:"kuhn"`
	Scenario string `help:"HCL file of PostflopHoldem scenarios (holdem only)"`
	Spot     string `help:"scenario name to use from --scenario (holdem only)" default:"default"`
}

func (f gameFlags) build() (engine.Game, error) {
	switch f.Game {
	case "kuhn":
		return kuhn.New(), nil
	case "leduc":
		return leduc.New(), nil
	case "holdem":
		path := f.Scenario
		if path == "" {
			return holdem.New(holdem.DefaultConfig()), nil
		}
		scenarios, err := config.LoadScenarios(path)
		if err != nil {
			return nil, err
		}
		cfg, ok := scenarios[f.Spot]
		if !ok {
			return nil, fmt.Errorf("scenario %q not found in %s", f.Spot, path)
		}
		return holdem.New(cfg), nil
	default:
		return nil, fmt.Errorf("unknown game %q", f.Game)
	}
}

type TrainCmd struct {
	gameFlags
	Iterations    int     `help:"Monte-Carlo iterations to run; 0 trains to --exploitability instead" default:"12000"`
	Exploitability float64 `help:"stop once root exploitability drops below this percent (only used when --iterations=0)" default:"1.0"`
	Seed          int64   `help:"PRNG seed, reused for every sampled iteration" default:"0"`
}

func (cmd *TrainCmd) Run(ctx context.Context) error {
	game, err := cmd.build()
	if err != nil {
		return err
	}

	o, err := solver.NewOrchestrator(game, solver.TrainingConfig{
		Iterations: max(cmd.Iterations, 1),
		Seed:       cmd.Seed,
		Sampling:   solver.SamplingModeExternal,
	})
	if err != nil {
		return err
	}

	if cmd.Iterations > 0 {
		mean, err := o.TrainForIters(ctx, cmd.Iterations)
		if err != nil {
			return err
		}
		log.Info("training complete", "mean_root_util", mean, "iterations", cmd.Iterations)
	} else {
		if err := o.TrainToExploitability(ctx, cmd.Exploitability); err != nil {
			return err
		}
		log.Info("training complete", "exploitability_target", cmd.Exploitability)
	}

	report, err := o.Report()
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

type EvalCmd struct {
	gameFlags
	Iterations int   `help:"Monte-Carlo iterations to train before reporting" default:"12000"`
	Seed       int64 `help:"PRNG seed, reused for every sampled iteration" default:"0"`
}

func (cmd *EvalCmd) Run(ctx context.Context) error {
	game, err := cmd.build()
	if err != nil {
		return err
	}

	o, err := solver.NewOrchestrator(game, solver.TrainingConfig{
		Iterations: max(cmd.Iterations, 1),
		Seed:       cmd.Seed,
		Sampling:   solver.SamplingModeExternal,
	})
	if err != nil {
		return err
	}

	mean, err := o.TrainForIters(ctx, cmd.Iterations)
	if err != nil {
		return err
	}

	exploit, err := o.RootExploitability()
	if err != nil {
		return err
	}

	log.Info("evaluation complete", "mc_root_util", mean, "exploitability_pct", exploit)

	report, err := o.Report()
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

// holeCardCategory categorizes a two-card hand string like "AcKc" for the
// report's extra column. Kuhn/Leduc deal a single hole card (a two-character
// string), which this preflop categorization doesn't apply to, so those
// rows are left blank.
func holeCardCategory(cards string) string {
	if len(cards) != 4 {
		return ""
	}
	c1, err1 := poker.ParseCard(cards[:2])
	c2, err2 := poker.ParseCard(cards[2:])
	if err1 != nil || err2 != nil {
		return ""
	}
	return string(poker.CategorizeHoleCards(c1, c2))
}

func printReport(r solver.Report) {
	fmt.Printf("root utility: %.6f (after %d iterations)\n", r.RootUtil, r.Iterations)
	for _, e := range r.Entries {
		category := holeCardCategory(e.Info.Cards)
		fmt.Printf("%-4s %-6s %-8s %-20s %v\n", e.Info.Player, e.Info.Cards, category, e.Info.History, e.Strategy)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cfrsolver"),
		kong.Description("exact-tree counterfactual regret minimization solver"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if cli.Debug {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}
	log.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "train":
		err = cli.Train.Run(context.Background())
	case "eval":
		err = cli.Eval.Run(context.Background())
	default:
		err = fmt.Errorf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal("command failed", "error", err)
	}
}
