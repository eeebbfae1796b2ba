// Package graphsearch implements the generic search loop shared by
// breadth-first, depth-first, uniform-cost, greedy and A* search. The loop is
// parameterized by the frontier: swapping its discipline swaps the algorithm.
package graphsearch

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// runner encapsulates the mutable state of one driver run.
type runner[S comparable, A comparable] struct {
	p        *core.Problem[S, A]
	f        *frontier.Frontier[S, A]
	opts     Options
	exp      *core.Expander[S, A]
	metrics  core.Metrics
	explored map[S]struct{} // nil in TreeSearch mode
}

// Search runs the tree/graph search loop on p using f as the open list.
// f must be empty; the driver seeds it with the root node.
//
// Loop:
//  1. If the initial state is a goal, return an empty solution without expanding.
//  2. Pop a node; an empty frontier means core.StatusFailure.
//  3. Graph mode: discard the node if its state was already explored.
//  4. Goal test on pop (default), then mark explored and expand.
//  5. Queue each child, skipping explored states. With WithGoalTestOnInsert
//     children are goal-tested here instead and the first hit wins.
//
// A frontier using frontier.RejectDuplicates silently skips children whose
// state is already queued. Returns core.ErrNilProblem, core.ErrIncompleteProblem,
// ErrNilFrontier, ErrFrontierNotEmpty, ErrOptionViolation, errors from
// Problem.Result, or the context error on cancellation.
func Search[S comparable, A comparable](p *core.Problem[S, A], f *frontier.Frontier[S, A], opts ...Option) (*core.Result[S, A], error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	if !f.Empty() {
		return nil, ErrFrontierNotEmpty
	}

	m := core.NewMetrics()
	r := &runner[S, A]{
		p:       p,
		f:       f,
		opts:    o,
		metrics: m,
		exp: core.NewExpander[S, A](m).OnExpand(func(n *core.Node[S, A]) {
			o.OnExpand(n.State, n.Depth)
		}),
	}
	if o.Mode == GraphSearch {
		r.explored = make(map[S]struct{})
	}

	log := o.Logger.WithFields(logrus.Fields{"algorithm": o.Label, "mode": o.Mode.String()})
	log.Debug("search started")

	res, err := r.loop()
	if err != nil {
		log.WithError(err).Debug("search aborted")
		return nil, err
	}
	r.finish()
	log.WithFields(logrus.Fields{
		"status":                  res.Status.String(),
		core.MetricNodesExpanded:  m.Int(core.MetricNodesExpanded),
		core.MetricMaxQueueSize:   m.Int(core.MetricMaxQueueSize),
		core.MetricPathCost:       res.PathCost,
		core.MetricExploredStates: m.Int(core.MetricExploredStates),
	}).Debug("search finished")

	return res, nil
}

// loop drives the frontier until a terminal state is reached.
func (r *runner[S, A]) loop() (*core.Result[S, A], error) {
	root := core.Root[S, A](r.p.Initial)
	if r.p.IsGoal(root.State) {
		return core.Solution(root, r.metrics), nil
	}
	if err := r.f.Add(root); err != nil {
		return nil, err
	}

	for {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		n, ok := r.f.Pop()
		if !ok {
			return core.Failure[S, A](r.metrics), nil
		}
		if r.explored != nil {
			if _, seen := r.explored[n.State]; seen {
				continue
			}
		}
		if !r.opts.GoalTestOnInsert && r.p.IsGoal(n.State) {
			return core.Solution(n, r.metrics), nil
		}
		if r.opts.MaxExpansions > 0 && r.exp.Expanded() >= r.opts.MaxExpansions {
			return core.Cutoff[S, A](r.metrics), nil
		}
		if r.explored != nil {
			r.explored[n.State] = struct{}{}
		}

		goal, err := r.expand(n)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return core.Solution(goal, r.metrics), nil
		}
	}
}

// expand generates n's children and queues them. It returns a goal child
// when goal testing on insert finds one.
func (r *runner[S, A]) expand(n *core.Node[S, A]) (*core.Node[S, A], error) {
	children, err := r.exp.Expand(r.p, n)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if r.explored != nil {
			if _, seen := r.explored[child.State]; seen {
				continue
			}
		}
		if r.opts.Prune != nil && r.opts.Prune(child.State, child.PathCost, child.Depth) {
			continue
		}
		if r.opts.GoalTestOnInsert && r.p.IsGoal(child.State) {
			return child, nil
		}
		if err = r.f.Add(child); err != nil {
			if errors.Is(err, frontier.ErrDuplicateState) {
				continue
			}
			return nil, err
		}
	}

	return nil, nil
}

// finish copies frontier and explored-set sizes into the metrics.
func (r *runner[S, A]) finish() {
	r.metrics.Set(core.MetricQueueSize, float64(r.f.Len()))
	r.metrics.Set(core.MetricMaxQueueSize, float64(r.f.MaxLen()))
	if r.explored != nil {
		r.metrics.Set(core.MetricExploredStates, float64(len(r.explored)))
	}
}
