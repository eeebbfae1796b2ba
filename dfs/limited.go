package dfs

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// walker encapsulates the state of one depth-limited descent.
type walker[S comparable, A comparable] struct {
	p     *core.Problem[S, A]
	opts  Options
	exp   *core.Expander[S, A]
	limit int
}

// DepthLimited runs recursive depth-first search on p that never expands a
// node at depth limit.
//
// The result is core.StatusSolved with the first goal found, core.StatusCutoff
// if some branch was cut at the limit, or core.StatusFailure if the whole
// space was searched without reaching the limit. A negative limit returns
// ErrOptionViolation.
//
// Metrics: nodesExpanded, depthLimit and, on success, pathCost.
func DepthLimited[S comparable, A comparable](p *core.Problem[S, A], limit int, opts ...Option) (*core.Result[S, A], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	m := core.NewMetrics()
	res, err := depthLimited(p, limit, o, m)
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"algorithm":              LabelDepthLimited,
		"status":                 res.Status.String(),
		core.MetricDepthLimit:    limit,
		core.MetricNodesExpanded: m.Int(core.MetricNodesExpanded),
	}).Debug("search finished")

	return res, nil
}

// depthLimited runs one descent recording into m.
func depthLimited[S comparable, A comparable](p *core.Problem[S, A], limit int, o Options, m core.Metrics) (*core.Result[S, A], error) {
	w := &walker[S, A]{
		p:     p,
		opts:  o,
		limit: limit,
		exp: core.NewExpander[S, A](m).OnExpand(func(n *core.Node[S, A]) {
			o.OnVisit(n.State, n.Depth)
		}),
	}
	m.Set(core.MetricDepthLimit, float64(limit))

	status, goal, err := w.descend(core.Root[S, A](p.Initial))
	switch {
	case err != nil:
		return nil, err
	case status == core.StatusSolved:
		return core.Solution(goal, m), nil
	case status == core.StatusCutoff:
		return core.Cutoff[S, A](m), nil
	default:
		return core.Failure[S, A](m), nil
	}
}

// descend searches below n and reports the outcome of that subtree.
func (w *walker[S, A]) descend(n *core.Node[S, A]) (core.Status, *core.Node[S, A], error) {
	select {
	case <-w.opts.Ctx.Done():
		return core.StatusFailure, nil, w.opts.Ctx.Err()
	default:
	}

	if w.p.IsGoal(n.State) {
		return core.StatusSolved, n, nil
	}
	if n.Depth >= w.limit {
		return core.StatusCutoff, nil, nil
	}

	children, err := w.exp.Expand(w.p, n)
	if err != nil {
		return core.StatusFailure, nil, err
	}

	cutoff := false
	for _, child := range children {
		if w.opts.AvoidLoops && onPath(n, child.State) {
			continue
		}
		status, goal, err := w.descend(child)
		if err != nil {
			return core.StatusFailure, nil, err
		}
		switch status {
		case core.StatusSolved:
			return status, goal, nil
		case core.StatusCutoff:
			cutoff = true
		}
	}
	if cutoff {
		return core.StatusCutoff, nil, nil
	}

	return core.StatusFailure, nil, nil
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
