package solver

import (
	"github.com/lox/cfrsolver/sdk/engine"
	"github.com/lox/cfrsolver/sdk/walker"
)

// BuilderVisitor walks every reachable decision once to allocate a
// GameTree entry (zero-initialized regrets and strategy sum, sized to the
// node's legal-action count) for every InfoState, using the walker's
// default uniform action probabilities so every branch gets explored.
// Idempotent on re-call: running it twice over the same tree leaves the
// entry set unchanged.
type BuilderVisitor struct {
	walker.BaseVisitor
	Tree *GameTree
	Err  error
}

// NewBuilderVisitor builds a BuilderVisitor writing into tree.
func NewBuilderVisitor(tree *GameTree) *BuilderVisitor {
	return &BuilderVisitor{Tree: tree}
}

func (v *BuilderVisitor) VisitActionNode(node *engine.Node) {
	if v.Err != nil {
		return
	}
	key := node.InfoState().Key()
	if _, err := v.Tree.get(key, len(node.Actions)); err != nil {
		v.Err = err
	}
}

// Build runs a full traversal with a BuilderVisitor, populating tree with
// an entry for every InfoState the game reaches.
func Build(game engine.Game, tree *GameTree) error {
	v := NewBuilderVisitor(tree)
	if _, err := (walker.TreeWalker{}).WalkTree(game, v); err != nil {
		return err
	}
	return v.Err
}
