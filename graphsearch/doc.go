// Package graphsearch is the loop behind every frontier-driven search in
// lvsearch. Breadth-first, depth-first, uniform-cost, greedy and A* search
// differ only in the frontier handed to Search.
//
// What
//
//   - Search(problem, frontier, opts...) pops nodes, goal-tests them, expands
//     them with core.Expander and queues the children.
//   - GraphSearch mode (default) keeps an explored set: popped nodes whose
//     state was already expanded are discarded, and children whose state was
//     already expanded are never queued. No state is expanded twice.
//   - TreeSearch mode keeps no explored set; repeated states are re-expanded.
//
// Options
//
//   - WithContext(ctx):        cancellation, polled once per loop iteration.
//   - WithMode / WithTreeSearch: choose GraphSearch or TreeSearch.
//   - WithGoalTestOnInsert():  goal-test children when generated (BFS).
//   - WithMaxExpansions(n):    stop with core.StatusCutoff after n expansions.
//   - WithLabel(name):         algorithm name used in log entries.
//   - WithLogger(l):           logrus.FieldLogger for Debug start/finish entries.
//   - WithOnExpand(fn):        hook called with (state, depth) per expansion.
//   - WithPrune(fn):           drop children for which fn(state, g, depth) is true.
//
// Outcomes
//
//   - core.StatusSolved:  goal found; an initial goal state yields an empty,
//     non-nil action slice and zero expansions.
//   - core.StatusFailure: frontier exhausted.
//   - core.StatusCutoff:  MaxExpansions reached.
//
// Metrics
//
//	nodesExpanded, queueSize, maxQueueSize and pathCost are always reported;
//	exploredStates only in GraphSearch mode.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrIncompleteProblem for a malformed problem.
//   - ErrNilFrontier, ErrFrontierNotEmpty for a bad frontier.
//   - ErrOptionViolation for invalid options.
//   - Errors returned by Problem.Result, and ctx.Err() on cancellation.
package graphsearch
