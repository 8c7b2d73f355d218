package solver

import "fmt"

// entry accumulates one InfoState's cumulative regrets and strategy sum.
// Both slices are always the same length as the InfoState's legal actions;
// GameTree allocates them on first visit and never resizes them.
type entry struct {
	regrets     []float64
	strategySum []float64
}

func newEntry(actionCount int) *entry {
	return &entry{
		regrets:     make([]float64, actionCount),
		strategySum: make([]float64, actionCount),
	}
}

// strategy returns the regret-matching distribution: each action's
// positive regret normalized against the sum of positive regrets, or a
// uniform distribution when every regret is <= 0. That's expected early in
// training, not an error condition.
func (e *entry) strategy() []float64 {
	strat := make([]float64, len(e.regrets))
	var total float64
	for i, r := range e.regrets {
		if r > 0 {
			strat[i] = r
			total += r
		}
	}
	if total <= 0 {
		uniform := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = uniform
		}
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// update accumulates this visit's per-action regret against the node's
// strategy (weighted by the opponent's reach) and the reach-weighted
// strategy itself (weighted by the acting player's own reach), the two
// quantities the regret-matching step requires.
func (e *entry) update(regret []float64, strategy []float64, opponentReach, playerReach float64) {
	for i := range regret {
		e.regrets[i] += opponentReach * regret[i]
		e.strategySum[i] += playerReach * strategy[i]
	}
}

// averageStrategy returns the normalized cumulative strategy sum, or a
// uniform distribution when nothing has accumulated yet.
func (e *entry) averageStrategy() []float64 {
	avg := make([]float64, len(e.strategySum))
	var total float64
	for _, s := range e.strategySum {
		total += s
	}
	if total <= 0 {
		uniform := 1.0 / float64(len(avg))
		for i := range avg {
			avg[i] = uniform
		}
		return avg
	}
	for i := range avg {
		avg[i] = e.strategySum[i] / total
	}
	return avg
}

// GameTree is the solver's single shared state: one entry per InfoState
// key, visited and updated by CfrVisitor during training and read back by
// StatisticsVisitor and BestResponseVisitor during reporting. Kept as a
// plain unsharded map: CFR here runs one traversal at a time, so sharding
// or locking the table would only add complexity with nothing to protect
// against.
type GameTree struct {
	entries map[string]*entry
}

// NewGameTree returns an empty tree.
func NewGameTree() *GameTree {
	return &GameTree{entries: make(map[string]*entry)}
}

// get returns the entry for key, creating it with actionCount slots on
// first visit. A length mismatch on an existing entry is a logic-bug
// error: a key should never be visited with two different numbers of
// legal actions.
func (t *GameTree) get(key string, actionCount int) (*entry, error) {
	e, ok := t.entries[key]
	if !ok {
		e = newEntry(actionCount)
		t.entries[key] = e
		return e, nil
	}
	if len(e.regrets) != actionCount {
		return nil, fmt.Errorf("solver: InfoState %q visited with %d actions, previously %d", key, actionCount, len(e.regrets))
	}
	return e, nil
}

// Strategy returns the current regret-matching strategy for key, or false
// if the key has never been visited.
func (t *GameTree) Strategy(key string) ([]float64, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return e.strategy(), true
}

// AverageStrategy returns the normalized average strategy for key, or
// false if the key has never been visited.
func (t *GameTree) AverageStrategy(key string) ([]float64, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return e.averageStrategy(), true
}

// SetStrategySum overwrites an InfoState's strategy sum directly,
// bypassing training. Used to load a known equilibrium strategy for
// analysis — the value is otherwise only ever written incrementally by
// CfrVisitor's regret-matching updates.
func (t *GameTree) SetStrategySum(key string, strategySum []float64) {
	e, ok := t.entries[key]
	if !ok {
		e = newEntry(len(strategySum))
		t.entries[key] = e
	}
	copy(e.strategySum, strategySum)
}

// Size reports how many InfoStates the tree has an entry for.
func (t *GameTree) Size() int { return len(t.entries) }

// Keys returns every tracked InfoState key. Two Build calls over the same
// game must yield identical key sets.
func (t *GameTree) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// ActionCount reports how many actions the entry for key was sized to, or
// -1 if key has never been visited.
func (t *GameTree) ActionCount(key string) int {
	e, ok := t.entries[key]
	if !ok {
		return -1
	}
	return len(e.regrets)
}
