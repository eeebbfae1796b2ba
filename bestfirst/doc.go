// Package bestfirst provides informed search over any core.Problem.
//
// What
//
//   - Search(p, f, opts...): best-first search under an arbitrary evaluation
//     function f(node).
//   - AStar(p, h, opts...):  f(n) = g(n) + h(n), optimal with a consistent h.
//   - Greedy(p, h, opts...): f(n) = h(n), usually fast, not optimal.
//
// All three run the generic graph-search loop over a priority frontier that
// holds one node per state and keeps the cheaper path when a state is
// reached twice. Equal f values pop in insertion order, so runs are
// reproducible.
//
// Heuristics
//
//	A Heuristic[S] maps a state to a non-negative estimate of the remaining
//	cost. Admissible heuristics never overestimate; consistent ones also
//	satisfy h(s) <= cost(s, a, s') + h(s'). Zero is both, and turns A* into
//	uniform-cost search.
//
// Complexity
//
//	Exponential in the solution depth in the worst case; the better the
//	heuristic, the fewer nodes are expanded. Memory is proportional to the
//	number of generated nodes. See package rbfs for linear-memory A*.
//
// Errors
//
//   - ErrNilHeuristic, ErrNilEval for missing functions.
//   - everything graphsearch.Search returns.
package bestfirst
