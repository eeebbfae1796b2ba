// Package bidirectional provides bidirectional breadth-first search over any
// core.Problem whose transitions can be listed in reverse.
//
// What
//
//   - Grows one FIFO frontier forward from Problem.Initial and one backward
//     from a single goal state, following a Predecessors function.
//   - Alternates whole layers, always expanding the smaller frontier.
//   - Stops as soon as a generated state is already reached from the other
//     side, and joins the two halves into one forward path.
//
// Why
//
//   - Same fewest-actions guarantee as BFS towards that goal state.
//   - Roughly O(b^(d/2)) nodes per side instead of O(b^d).
//
// Requirements
//
//	The goal must be one concrete state passing Problem.Goal, and
//	Predecessors must be the exact reverse of Actions/Result: every Step it
//	lists for s must be applicable in Step.From and lead to s. The join
//	re-applies each Step through the forward problem and fails with
//	ErrInconsistentPredecessors otherwise.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per expansion.
//   - WithMaxExpansions(n):   stop with core.StatusCutoff after n expansions.
//   - WithLogger(l):          logrus.FieldLogger for a Debug entry per run.
//   - WithOnExpand(fn):       hook called with (state, depth) in both directions.
//
// Metrics
//
//	nodesExpanded, queueSize, maxQueueSize, exploredStates and pathCost.
//
// Usage
//
//	m := routemap.Romania()
//	p, _ := m.Problem(routemap.Arad, routemap.Bucharest)
//	res, err := bidirectional.Search(p, routemap.Bucharest, m.Predecessors)
package bidirectional
