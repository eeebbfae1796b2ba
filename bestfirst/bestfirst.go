// Package bestfirst implements informed search: best-first search under any
// evaluation function, A* (f = g + h) and greedy best-first (f = h).
package bestfirst

import (
	"errors"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graphsearch"
)

// Labels name the algorithms in logs and metrics.
const (
	Label       = "best-first"
	LabelAStar  = "astar"
	LabelGreedy = "greedy"
)

// Sentinel errors for informed search.
var (
	// ErrNilHeuristic is returned when AStar or Greedy gets a nil heuristic.
	ErrNilHeuristic = errors.New("bestfirst: heuristic is nil")

	// ErrNilEval is returned when Search gets a nil evaluation function.
	ErrNilEval = errors.New("bestfirst: evaluation function is nil")
)

// Heuristic estimates the cost of the cheapest path from a state to a goal.
// A* returns optimal solutions when h never overestimates (admissible) and,
// in graph mode, when h(s) <= cost(s, a, s') + h(s') for every step
// (consistent).
type Heuristic[S comparable] func(state S) float64

// Eval scores a node; the frontier pops the lowest score first.
type Eval[S comparable, A comparable] func(n *core.Node[S, A]) float64

// Zero is the heuristic that always returns 0. A* with Zero is uniform-cost search.
func Zero[S comparable](S) float64 { return 0 }

// AStarEval returns f(n) = g(n) + h(n.State).
func AStarEval[S comparable, A comparable](h Heuristic[S]) Eval[S, A] {
	return func(n *core.Node[S, A]) float64 { return n.PathCost + h(n.State) }
}

// GreedyEval returns f(n) = h(n.State).
func GreedyEval[S comparable, A comparable](h Heuristic[S]) Eval[S, A] {
	return func(n *core.Node[S, A]) float64 { return h(n.State) }
}

// Search runs best-first graph search on p, always expanding the frontier
// node with the lowest f. Ties go to the node queued first. The frontier
// keeps one node per state, preferring the lower path cost, and goal testing
// happens on pop.
//
// Driver options (context, logger, tree mode, limits) pass through to
// graphsearch.Search and override the defaults set here.
func Search[S comparable, A comparable](p *core.Problem[S, A], f Eval[S, A], opts ...graphsearch.Option) (*core.Result[S, A], error) {
	if f == nil {
		return nil, ErrNilEval
	}

	return run(p, f, Label, opts)
}

// AStar runs A* search on p with heuristic h.
func AStar[S comparable, A comparable](p *core.Problem[S, A], h Heuristic[S], opts ...graphsearch.Option) (*core.Result[S, A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}

	return run(p, AStarEval[S, A](h), LabelAStar, opts)
}

// Greedy runs greedy best-first search on p with heuristic h. It is fast
// when h is informative but neither optimal nor, in tree mode, complete.
func Greedy[S comparable, A comparable](p *core.Problem[S, A], h Heuristic[S], opts ...graphsearch.Option) (*core.Result[S, A], error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}

	return run(p, GreedyEval[S, A](h), LabelGreedy, opts)
}

func run[S comparable, A comparable](p *core.Problem[S, A], f Eval[S, A], label string, opts []graphsearch.Option) (*core.Result[S, A], error) {
	fr := frontier.NewPriority(frontier.Eval[S, A](f), frontier.WithDuplicatePolicy(frontier.ReplaceIfCheaper))
	all := make([]graphsearch.Option, 0, len(opts)+1)
	all = append(all, graphsearch.WithLabel(label))
	all = append(all, opts...)

	return graphsearch.Search(p, fr, all...)
}
