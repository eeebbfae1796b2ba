// Package rbfs provides recursive best-first search (RBFS) over any
// core.Problem.
//
// RBFS mimics A* while keeping only the current path and the siblings of its
// nodes in memory. Every recursive call carries an f-limit: the best f value
// available elsewhere. When the best child exceeds it, the call returns and
// the child's f is remembered in the parent ("backed up"), so the abandoned
// subtree is regenerated only if it becomes the best choice again.
//
// Guarantees
//
//   - Optimal with an admissible heuristic.
//   - Memory O(b·d) for branching factor b and solution depth d.
//   - May re-expand nodes many times; nodesExpanded reports the total.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per recursive call.
//   - WithAvoidLoops():       skip successors already on the current path.
//   - WithMaxExpansions(n):   stop with core.StatusCutoff after n expansions.
//   - WithLogger(l):          logrus.FieldLogger for a Debug entry per run.
//   - WithOnExpand(fn):       hook called with (state, depth, fLimit).
//
// Metrics
//
//	nodesExpanded, maxRecursiveDepth and pathCost.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrIncompleteProblem, ErrNilHeuristic.
//   - ErrOptionViolation for invalid options.
//   - Errors returned by Problem.Result, and ctx.Err() on cancellation.
package rbfs
