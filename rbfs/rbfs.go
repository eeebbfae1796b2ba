// Package rbfs implements recursive best-first search, a linear-memory
// variant of A*.
package rbfs

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
)

// errCutoff unwinds the recursion when MaxExpansions is spent.
var errCutoff = errors.New("rbfs: expansion limit reached")

var inf = math.Inf(1)

// walker encapsulates the state of one RBFS run.
type walker[S comparable, A comparable] struct {
	p       *core.Problem[S, A]
	h       bestfirst.Heuristic[S]
	opts    Options
	exp     *core.Expander[S, A]
	metrics core.Metrics
}

// successor pairs a child with its backed-up f value.
type successor[S comparable, A comparable] struct {
	node *core.Node[S, A]
	f    float64
}

// Search runs recursive best-first search on p with heuristic h.
//
// Each call explores the best child while its f value stays within the
// limit set by the best alternative elsewhere in the tree. When the limit is
// exceeded the subtree is dropped and its best f is backed up into the
// parent, so the subtree can be regenerated later if it becomes the best
// option again. A child's f is never lower than its parent's backed-up f.
//
// With an admissible h, the solution is optimal. Metrics: nodesExpanded,
// maxRecursiveDepth and, on success, pathCost.
//
// Returns core.StatusSolved, core.StatusFailure when no goal is reachable,
// or core.StatusCutoff when WithMaxExpansions is spent. Errors are
// core.ErrNilProblem, core.ErrIncompleteProblem, ErrNilHeuristic,
// ErrOptionViolation, errors from Problem.Result and ctx.Err().
func Search[S comparable, A comparable](p *core.Problem[S, A], h bestfirst.Heuristic[S], opts ...Option) (*core.Result[S, A], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	m := core.NewMetrics()
	w := &walker[S, A]{
		p:       p,
		h:       h,
		opts:    o,
		metrics: m,
		exp:     core.NewExpander[S, A](m),
	}
	m.Set(core.MetricMaxRecursiveDepth, 0)

	root := core.Root[S, A](p.Initial)
	goal, _, err := w.search(root, h(root.State), inf)

	var res *core.Result[S, A]
	switch {
	case errors.Is(err, errCutoff):
		res = core.Cutoff[S, A](m)
	case err != nil:
		return nil, err
	case goal != nil:
		res = core.Solution(goal, m)
	default:
		res = core.Failure[S, A](m)
	}
	o.Logger.WithFields(logrus.Fields{
		"algorithm":                  Label,
		"status":                     res.Status.String(),
		core.MetricNodesExpanded:     m.Int(core.MetricNodesExpanded),
		core.MetricMaxRecursiveDepth: m.Int(core.MetricMaxRecursiveDepth),
		core.MetricPathCost:          res.PathCost,
	}).Debug("search finished")

	return res, nil
}

// search explores below n, whose backed-up f value is fn, without exceeding
// fLimit. It returns a goal node, or nil and the best f seen beyond the limit.
func (w *walker[S, A]) search(n *core.Node[S, A], fn, fLimit float64) (*core.Node[S, A], float64, error) {
	select {
	case <-w.opts.Ctx.Done():
		return nil, 0, w.opts.Ctx.Err()
	default:
	}
	w.metrics.Max(core.MetricMaxRecursiveDepth, float64(n.Depth))

	if w.p.IsGoal(n.State) {
		return n, fn, nil
	}
	if w.opts.MaxExpansions > 0 && w.exp.Expanded() >= w.opts.MaxExpansions {
		return nil, 0, errCutoff
	}

	w.opts.OnExpand(n.State, n.Depth, fLimit)
	children, err := w.exp.Expand(w.p, n)
	if err != nil {
		return nil, 0, err
	}
	succ := make([]successor[S, A], 0, len(children))
	for _, child := range children {
		if w.opts.AvoidLoops && onPath(n, child.State) {
			continue
		}
		f := math.Max(child.PathCost+w.h(child.State), fn)
		succ = append(succ, successor[S, A]{node: child, f: f})
	}
	if len(succ) == 0 {
		return nil, inf, nil
	}

	for {
		best, alt := bestTwo(succ)
		bf := succ[best].f
		if bf > fLimit || math.IsInf(bf, 1) {
			return nil, bf, nil
		}
		goal, backed, err := w.search(succ[best].node, bf, math.Min(fLimit, alt))
		if err != nil || goal != nil {
			return goal, backed, err
		}
		succ[best].f = backed
	}
}

// bestTwo returns the index of the lowest f (first on ties) and the second
// lowest f value, +Inf when there is only one successor.
func bestTwo[S comparable, A comparable](succ []successor[S, A]) (int, float64) {
	best := 0
	for i := 1; i < len(succ); i++ {
		if succ[i].f < succ[best].f {
			best = i
		}
	}
	alt := inf
	for i := range succ {
		if i != best && succ[i].f < alt {
			alt = succ[i].f
		}
	}

	return best, alt
}

// onPath reports whether state occurs on the path from the root to n.
func onPath[S comparable, A comparable](n *core.Node[S, A], state S) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State == state {
			return true
		}
	}

	return false
}
