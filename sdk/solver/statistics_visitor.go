package solver

import (
	"fmt"
	"math"

	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/walker"
)

// nodeStats is one InfoState's reach-weighted accumulation across a single
// full traversal: the running sum behind NodeUtil/NodeActionUtils (spec
// §4.H), shared in shape between StatisticsVisitor and BestResponseVisitor.
type nodeStats struct {
	reachWeightedUtilSum float64
	reachSum             float64
	actionUtilSums       []float64
	visits               int
}

func (s *nodeStats) record(node *engine.Node) {
	reach := node.PlayerReachProb() * node.OpponentReachProb()
	s.reachWeightedUtilSum += node.Util * reach
	s.reachSum += reach
	for i, u := range node.ActionUtils {
		s.actionUtilSums[i] += u
	}
	if node.PlayerReachProb() > 0 && node.OpponentReachProb() > 0 {
		s.visits++
	}
}

func (s *nodeStats) nodeUtil() float64 {
	visits := s.visits
	if visits < 1 {
		visits = 1
	}
	return s.reachWeightedUtilSum / float64(visits)
}

func (s *nodeStats) nodeActionUtils() []float64 {
	visits := s.visits
	if visits < 1 {
		visits = 1
	}
	out := make([]float64, len(s.actionUtilSums))
	for i, sum := range s.actionUtilSums {
		out[i] = sum * s.reachSum / float64(visits)
	}
	return out
}

func (s *nodeStats) argMax() int {
	best := 0
	for i, u := range s.actionUtilSums {
		if u > s.actionUtilSums[best] {
			best = i
		}
	}
	return best
}

// StatisticsVisitor walks the tree once with the trained average strategy
// and records, per InfoState, the reach-weighted utility and per-action
// utility sums. BestResponseVisitor's one-hot deviation strategy is built
// from this pass's per-action sums.
type StatisticsVisitor struct {
	walker.BaseVisitor
	Tree     *GameTree
	RootUtil float64
	Err      error

	stats map[string]*nodeStats
}

// NewStatisticsVisitor builds a StatisticsVisitor reading the average
// strategy out of tree.
func NewStatisticsVisitor(tree *GameTree) *StatisticsVisitor {
	return &StatisticsVisitor{Tree: tree, stats: make(map[string]*nodeStats)}
}

func (v *StatisticsVisitor) GetActionProbs(node *engine.Node) []float64 {
	key := node.InfoState().Key()
	avg, ok := v.Tree.AverageStrategy(key)
	if !ok {
		v.Err = fmt.Errorf("solver: missing InfoState %q during statistics pass", key)
		return v.BaseVisitor.GetActionProbs(node)
	}
	return avg
}

func (v *StatisticsVisitor) statsFor(key string, actionCount int) (*nodeStats, error) {
	s, ok := v.stats[key]
	if !ok {
		s = &nodeStats{actionUtilSums: make([]float64, actionCount)}
		v.stats[key] = s
		return s, nil
	}
	if len(s.actionUtilSums) != actionCount {
		return nil, fmt.Errorf("solver: InfoState %q visited with %d actions, previously %d", key, actionCount, len(s.actionUtilSums))
	}
	return s, nil
}

func (v *StatisticsVisitor) VisitActionNode(node *engine.Node) {
	key := node.InfoState().Key()
	s, err := v.statsFor(key, len(node.Actions))
	if err != nil {
		v.Err = err
		return
	}
	s.record(node)
}

func (v *StatisticsVisitor) VisitRootNode(_ engine.InfoState, util float64) {
	v.RootUtil = util
}

// NodeUtil reports the reach-weighted average utility recorded for key, 0
// if key was never visited.
func (v *StatisticsVisitor) NodeUtil(key string) float64 {
	s, ok := v.stats[key]
	if !ok {
		return 0
	}
	return s.nodeUtil()
}

// NodeActionUtils reports the reach-scaled per-action utility recorded for
// key, nil if key was never visited.
func (v *StatisticsVisitor) NodeActionUtils(key string) []float64 {
	s, ok := v.stats[key]
	if !ok {
		return nil
	}
	return s.nodeActionUtils()
}

// BestResponseVisitor walks the tree a second time, playing TargetPlayer's
// best deviation (the argmax action from a preceding StatisticsVisitor
// pass) against the opponent's average strategy, to measure how much
// TargetPlayer gains by deviating from equilibrium.
type BestResponseVisitor struct {
	walker.BaseVisitor
	Tree         *GameTree
	Stats        *StatisticsVisitor
	TargetPlayer engine.Player
	RootUtil     float64
	Err          error

	stats map[string]*nodeStats
}

// NewBestResponseVisitor builds a BestResponseVisitor that best-responds
// as target against the average strategy in tree, using the per-action
// utility sums stats collected in its preceding pass.
func NewBestResponseVisitor(tree *GameTree, stats *StatisticsVisitor, target engine.Player) *BestResponseVisitor {
	return &BestResponseVisitor{
		Tree:         tree,
		Stats:        stats,
		TargetPlayer: target,
		stats:        make(map[string]*nodeStats),
	}
}

func (v *BestResponseVisitor) GetActionProbs(node *engine.Node) []float64 {
	key := node.InfoState().Key()
	if node.Player == v.TargetPlayer {
		s, ok := v.Stats.stats[key]
		probs := make([]float64, len(node.Actions))
		if !ok || len(s.actionUtilSums) != len(node.Actions) {
			v.Err = fmt.Errorf("solver: missing InfoState %q in statistics pass during best response", key)
			uniform := 1.0 / float64(len(probs))
			for i := range probs {
				probs[i] = uniform
			}
			return probs
		}
		probs[s.argMax()] = 1.0
		return probs
	}

	avg, ok := v.Tree.AverageStrategy(key)
	if !ok {
		v.Err = fmt.Errorf("solver: missing InfoState %q during best response", key)
		return v.BaseVisitor.GetActionProbs(node)
	}
	return avg
}

func (v *BestResponseVisitor) VisitActionNode(node *engine.Node) {
	key := node.InfoState().Key()
	s, ok := v.stats[key]
	if !ok {
		s = &nodeStats{actionUtilSums: make([]float64, len(node.Actions))}
		v.stats[key] = s
	}
	if len(s.actionUtilSums) != len(node.Actions) {
		v.Err = fmt.Errorf("solver: InfoState %q visited with %d actions, previously %d", key, len(node.Actions), len(s.actionUtilSums))
		return
	}
	s.record(node)
}

func (v *BestResponseVisitor) VisitRootNode(_ engine.InfoState, util float64) {
	v.RootUtil = util
}

// NodeUtil reports the best-responding player's reach-weighted average
// utility recorded for key, 0 if key was never visited.
func (v *BestResponseVisitor) NodeUtil(key string) float64 {
	s, ok := v.stats[key]
	if !ok {
		return 0
	}
	return s.nodeUtil()
}

// NodeExploitability reports the percentage gain a best response earns
// over the equilibrium utility: (brUtil-util)/|util|*100, with both
// utilities taken from the best-responding player's side. Returns false
// when util is 0, where the ratio is undefined, rather than an arbitrary
// sentinel.
func NodeExploitability(util, brUtil float64) (float64, bool) {
	if util == 0 {
		return 0, false
	}
	return (brUtil - util) / math.Abs(util) * 100.0, true
}
