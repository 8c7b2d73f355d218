// Package walker implements the polymorphic game-tree traversal: a single
// recursive kernel dispatches to a Visitor's callbacks at terminal,
// street-completing, and decision nodes, in either full-tree or
// Monte-Carlo sampling mode.
package walker

import "github.com/lox/cfrsolver/sdk/engine"

// Visitor is the callback protocol the walker drives. Implementations must
// be re-entrant against the walker: no hidden state tied to a particular
// recursion frame.
type Visitor interface {
	VisitRootNode(info engine.InfoState, util float64)
	VisitTerminalNode(node *engine.Node)
	VisitStreetCompletingNode(node *engine.Node)
	VisitActionNode(node *engine.Node)
	GetActionProbs(node *engine.Node) []float64
}

// BaseVisitor is a no-op Visitor embeddable struct (Go has no default
// interface methods); concrete visitors embed it and override what they
// need. GetActionProbs returns 1.0 for every legal action — literally 1.0
// per slot, not normalized to sum to 1. Only BuilderVisitor relies on this
// default, and it cares about allocation, not well-formed probabilities.
type BaseVisitor struct{}

func (BaseVisitor) VisitRootNode(engine.InfoState, float64)     {}
func (BaseVisitor) VisitTerminalNode(*engine.Node)              {}
func (BaseVisitor) VisitStreetCompletingNode(*engine.Node)      {}
func (BaseVisitor) VisitActionNode(*engine.Node)                {}

func (BaseVisitor) GetActionProbs(node *engine.Node) []float64 {
	probs := make([]float64, len(node.Actions))
	for i := range probs {
		probs[i] = 1.0
	}
	return probs
}
