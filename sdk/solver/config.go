package solver

import "errors"

// SamplingMode controls how the walker traverses the tree during training:
// every CFR iteration either samples one chance outcome (external sampling,
// MonteCarloIterate) or sums over every remaining card at once
// (FullTraversal, WalkTree).
type SamplingMode uint8

const (
	SamplingModeExternal SamplingMode = iota
	SamplingModeFullTraversal
)

func (m SamplingMode) String() string {
	switch m {
	case SamplingModeExternal:
		return "external"
	case SamplingModeFullTraversal:
		return "full"
	default:
		return "unknown"
	}
}

// TrainingConfig parametrizes an Orchestrator run. There is no hand
// abstraction, blind structure, or discount schedule to configure: the
// games in sdk/games are exact trees, and CFR+/linear/DCFR discounting
// was dropped in favor of plain regret-matching (see DESIGN.md, open
// question on discount schedules).
type TrainingConfig struct {
	// Iterations is a requested iteration count, checked by Validate.
	// Orchestrator does not read it: TrainForIters runs the count it is
	// passed.
	Iterations int

	// Seed is the single PRNG seed reused for every sampled iteration.
	// There is no mid-training re-seed.
	Seed int64

	// Sampling names a traversal mode and is checked by Validate.
	// Orchestrator does not read it: training always uses
	// MonteCarloIterate.
	Sampling SamplingMode

	// ProgressEvery is a progress interval, checked by Validate to be
	// non-negative. Orchestrator does not read it and writes no
	// per-iteration progress lines.
	ProgressEvery int
}

// Validate reports whether c is safe to train with.
func (c TrainingConfig) Validate() error {
	if c.Iterations <= 0 {
		return errors.New("iterations must be > 0")
	}
	if c.ProgressEvery < 0 {
		return errors.New("progress interval cannot be negative")
	}
	if c.Sampling > SamplingModeFullTraversal {
		return errors.New("invalid sampling mode")
	}
	return nil
}

// DefaultTrainingConfig returns a minimal configuration for local
// experimentation: external sampling, seed 0, no progress logging.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Iterations:    12000,
		Seed:          0,
		Sampling:      SamplingModeExternal,
		ProgressEvery: 0,
	}
}
