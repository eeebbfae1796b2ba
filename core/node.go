package core

import "fmt"

// Node is a node of the search tree.
//
// Two nodes with the same State are "the same place" for frontier membership
// and explored-set checks, but they remain distinct values for path
// reconstruction: each keeps its own Parent, Action and PathCost.
type Node[S comparable, A comparable] struct {
	// State is the problem state this node wraps.
	State S

	// Parent is the node this one was generated from; nil for the root.
	Parent *Node[S, A]

	// Action produced this node from Parent. Zero value at the root.
	Action A

	// PathCost is g(n), the summed step cost from the root.
	PathCost float64

	// Depth is the number of actions from the root.
	Depth int
}

// Root returns the root node for state: zero cost, zero depth, no parent.
func Root[S comparable, A comparable](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Child builds the node reached from parent by action, checking the action
// against p.Actions(parent.State). It fails with ErrInvalidAction when the
// action is not applicable.
func Child[S comparable, A comparable](p *Problem[S, A], parent *Node[S, A], action A) (*Node[S, A], error) {
	next, err := p.Apply(parent.State, action)
	if err != nil {
		return nil, err
	}

	return link(p, parent, action, next), nil
}

// link wires next under parent without re-checking action.
func link[S comparable, A comparable](p *Problem[S, A], parent *Node[S, A], action A, next S) *Node[S, A] {
	return &Node[S, A]{
		State:    next,
		Parent:   parent,
		Action:   action,
		PathCost: parent.PathCost + p.Cost(parent.State, action, next),
		Depth:    parent.Depth + 1,
	}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Path returns the nodes from the root down to n, inclusive.
// The slice is freshly allocated on every call.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], n.Depth+1)
	for cur, i := n, n.Depth; cur != nil; cur, i = cur.Parent, i-1 {
		path[i] = cur
	}

	return path
}

// Actions returns the action sequence leading from the root to n.
// For the root itself the result is an empty, non-nil slice.
func (n *Node[S, A]) Actions() []A {
	actions := make([]A, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions[cur.Depth-1] = cur.Action
	}

	return actions
}

// String renders the node for debugging.
func (n *Node[S, A]) String() string {
	return fmt.Sprintf("[state=%v, action=%v, g=%g, depth=%d]", n.State, n.Action, n.PathCost, n.Depth)
}
