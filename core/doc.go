// Package core defines the vocabulary shared by every search algorithm in
// lvsearch: the Problem being solved, the search-tree Node, the per-run
// Metrics, the Expander that turns a node into its children, and the Result
// returned by a search.
//
// What
//
//   - Problem[S, A]: an immutable task description built from plain functions
//     (Actions, Result, Goal, StepCost) over any comparable state type S and
//     comparable action type A.
//   - Node[S, A]: a search-tree node holding State, Parent, Action, PathCost
//     and Depth. Path() and Actions() rebuild the solution from the root.
//   - Expander[S, A]: produces one child per legal action and counts exactly one
//     "nodesExpanded" per call.
//   - Metrics: a string-keyed counter map, created fresh for every run.
//   - Result[S, A]: Status (Solved, Failure, Cutoff), goal node, actions,
//     path cost and the run's Metrics.
//
// Conventions
//
//   - A problem whose initial state is already a goal is solved by an empty,
//     non-nil action slice with StatusSolved.
//   - Failure (exhausted frontier) is a Status, never an error.
//   - Errors are reserved for programmer mistakes: ErrNilProblem,
//     ErrIncompleteProblem and ErrInvalidAction.
//
// Parent links
//
//	Nodes form a tree: a child points to its parent and never the other way
//	round, so a node is reachable only while something (a frontier, a path, a
//	Result) still holds one of its descendants.
//
// Usage
//
//	p := &core.Problem[string, string]{
//	    Initial: "A",
//	    Actions: func(s string) []string { return links[s] },
//	    Result:  func(s, a string) (string, error) { return a, nil },
//	    Goal:    func(s string) bool { return s == "D" },
//	}
//	root := core.Root[string, string](p.Initial)
//	child, err := core.Child(p, root, "B")
package core
