package solver

import (
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/walker"
)

// CfrVisitor drives one counterfactual regret minimization update per
// traversal: GetActionProbs hands the walker the current regret-matching
// strategy, and VisitActionNode folds the resulting per-action utilities
// back into regret and strategy-sum, once the walker has filled in
// node.ActionUtils/node.Util post-order.
type CfrVisitor struct {
	walker.BaseVisitor
	Tree *GameTree
	Err  error
}

// NewCfrVisitor builds a CfrVisitor training against tree.
func NewCfrVisitor(tree *GameTree) *CfrVisitor {
	return &CfrVisitor{Tree: tree}
}

func (v *CfrVisitor) GetActionProbs(node *engine.Node) []float64 {
	key := node.InfoState().Key()
	e, err := v.Tree.get(key, len(node.Actions))
	if err != nil {
		v.Err = err
		return v.BaseVisitor.GetActionProbs(node)
	}
	return e.strategy()
}

// VisitActionNode accumulates regret-matching's two running sums: regret
// (action utility minus the node's overall utility, weighted by the
// opponent's reach probability) and strategy sum (this visit's action
// probabilities, weighted by the acting player's own reach probability).
func (v *CfrVisitor) VisitActionNode(node *engine.Node) {
	key := node.InfoState().Key()
	e, err := v.Tree.get(key, len(node.Actions))
	if err != nil {
		v.Err = err
		return
	}

	regret := make([]float64, len(node.ActionUtils))
	for i, u := range node.ActionUtils {
		regret[i] = u - node.Util
	}
	e.update(regret, node.ActionProbs, node.OpponentReachProb(), node.PlayerReachProb())
}
