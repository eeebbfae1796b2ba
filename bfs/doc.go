// Package bfs provides breadth-first search over any core.Problem.
//
// What
//
//   - Expands nodes in non-decreasing depth from the initial state.
//   - Returns a core.Result whose Actions are a shortest (fewest-actions)
//     solution, or core.StatusFailure when no goal is reachable.
//   - Goal-tests children when they are generated, so the deepest layer is
//     never expanded.
//
// Why
//
//   - Optimal whenever every step costs the same.
//   - Complete on finite graphs and on infinite graphs with a finite
//     branching factor and a reachable goal.
//
// Determinism
//
//	Children are queued in the order Problem.Actions returns them, so the
//	solution found is the first shortest one in that order.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d) for the frontier and explored set.
//
// Usage
//
//	res, err := bfs.Search(problem)
//	if err != nil {
//	    // core.ErrNilProblem, core.ErrIncompleteProblem,
//	    // graphsearch.ErrOptionViolation or a Result error
//	}
//	if res.Solved() {
//	    fmt.Println(res.Actions)
//	}
//
//	// with options shared by every frontier-driven search:
//	res, err = bfs.Search(problem,
//	    graphsearch.WithContext(ctx),
//	    graphsearch.WithMaxExpansions(10_000),
//	    graphsearch.WithLogger(logger),
//	)
package bfs
