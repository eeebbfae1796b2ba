// Package ucs provides uniform-cost search over any core.Problem with
// non-negative step costs.
//
// Uniform-cost search is Dijkstra's algorithm run lazily from the initial
// state towards a goal: nodes leave the frontier in order of path cost g(n),
// so the first goal popped is reached by a cheapest path.
//
// Complexity (C* = optimal cost, ε = smallest step cost, b = branching factor):
//
//   - Time:  O(b^(1 + C*/ε))
//   - Space: same as time, for the frontier and explored set.
//
// Options:
//
//   - WithMaxCost(x):     children with path cost > x are never queued.
//   - WithSearch(opts...): context, logger, hooks and limits of the generic driver.
//
// Errors (sentinel):
//
//   - ErrNegativeStepCost if a generated transition costs less than zero.
//   - ErrBadMaxCost       if MaxCost < 0.
//   - everything graphsearch.Search returns.
//
// Example usage:
//
//	res, err := ucs.Search(problem, ucs.WithMaxCost(500))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Actions, res.PathCost)
package ucs
