// Package bidirectional implements breadth-first search run from both ends
// at once.
package bidirectional

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// errCutoff stops a layer when MaxExpansions is spent.
var errCutoff = errors.New("bidirectional: expansion limit reached")

// half is one direction of the search: its own problem, FIFO frontier and
// reached table, sharing the run's metrics through its expander.
type half[S comparable, A comparable] struct {
	p        *core.Problem[S, A]
	frontier *frontier.Frontier[S, A]
	reached  map[S]*core.Node[S, A]
	exp      *core.Expander[S, A]
}

func newHalf[S comparable, A comparable](p *core.Problem[S, A], m core.Metrics) *half[S, A] {
	root := core.Root[S, A](p.Initial)
	h := &half[S, A]{
		p:        p,
		frontier: frontier.NewFIFO[S, A](frontier.WithDuplicatePolicy(frontier.RejectDuplicates)),
		reached:  map[S]*core.Node[S, A]{root.State: root},
		exp:      core.NewExpander[S, A](m),
	}
	// cannot fail: the frontier is empty
	_ = h.frontier.Add(root)

	return h
}

// run carries what both directions share.
type run struct {
	opts    Options
	metrics core.Metrics
	queued  func() int
}

// Search runs bidirectional breadth-first search on p towards the single
// state goal, which must pass p's goal test. preds reverses the transition
// model: for every state s it lists the Steps leading into s.
//
// Each round expands one whole layer of the smaller frontier (forward on
// ties). Every newly generated state is checked against the other
// direction's reached table, and the first hit joins the two halves. The
// result therefore has the fewest actions of any path from p.Initial to goal,
// the same length bfs.Search finds when goal is the only goal state.
//
// The backward half is re-played through core.Child when the halves are
// joined, so Actions, PathCost and the Goal node are those of the forward
// problem. A Step the forward model rejects fails with
// ErrInconsistentPredecessors.
//
// Metrics: nodesExpanded (both directions), queueSize and maxQueueSize (both
// frontiers), exploredStates (both reached tables) and, on success, pathCost.
//
// Returns core.StatusSolved, core.StatusFailure when either frontier runs dry,
// or core.StatusCutoff when WithMaxExpansions is spent. Errors are
// core.ErrNilProblem, core.ErrIncompleteProblem, ErrNilPredecessors,
// ErrGoalMismatch, ErrOptionViolation, ErrInconsistentPredecessors, errors
// from Problem.Result and ctx.Err().
func Search[S comparable, A comparable](p *core.Problem[S, A], goal S, preds Predecessors[S, A], opts ...Option) (*core.Result[S, A], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if preds == nil {
		return nil, ErrNilPredecessors
	}
	if !p.IsGoal(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalMismatch, goal)
	}

	m := core.NewMetrics()
	if p.IsGoal(p.Initial) {
		return finish(o, core.Solution(core.Root[S, A](p.Initial), m)), nil
	}

	fwd := newHalf(p, m)
	bwd := newHalf(reverse(p, goal, preds), m)
	r := &run{
		opts:    o,
		metrics: m,
		queued:  func() int { return fwd.frontier.Len() + bwd.frontier.Len() },
	}
	m.Set(core.MetricMaxQueueSize, float64(r.queued()))

	res, err := meet(r, fwd, bwd)
	if err != nil {
		return nil, err
	}
	m.Set(core.MetricQueueSize, float64(r.queued()))
	m.Set(core.MetricExploredStates, float64(len(fwd.reached)+len(bwd.reached)))

	return finish(o, res), nil
}

// reverse builds the backward problem: it starts at goal, moves along preds
// and charges each Step the forward cost of the transition it undoes.
func reverse[S comparable, A comparable](p *core.Problem[S, A], goal S, preds Predecessors[S, A]) *core.Problem[S, Step[S, A]] {
	return &core.Problem[S, Step[S, A]]{
		Initial: goal,
		Actions: preds,
		Result:  func(_ S, st Step[S, A]) (S, error) { return st.From, nil },
		Goal:    func(s S) bool { return s == p.Initial },
		StepCost: func(s S, st Step[S, A], _ S) float64 {
			return p.Cost(st.From, st.Action, s)
		},
	}
}

// meet alternates layers until the halves touch or one runs dry.
func meet[S comparable, A comparable](r *run, fwd *half[S, A], bwd *half[S, Step[S, A]]) (*core.Result[S, A], error) {
	for !fwd.frontier.Empty() && !bwd.frontier.Empty() {
		var (
			f   *core.Node[S, A]
			b   *core.Node[S, Step[S, A]]
			err error
		)
		if fwd.frontier.Len() <= bwd.frontier.Len() {
			f, b, err = expandLayer(r, fwd, bwd.reached)
		} else {
			b, f, err = expandLayer(r, bwd, fwd.reached)
		}
		switch {
		case errors.Is(err, errCutoff):
			return core.Cutoff[S, A](r.metrics), nil
		case err != nil:
			return nil, err
		case f != nil:
			goal, err := join(fwd.p, f, b)
			if err != nil {
				return nil, err
			}
			return core.Solution(goal, r.metrics), nil
		}
	}

	return core.Failure[S, A](r.metrics), nil
}

// expandLayer expands every node h's frontier holds on entry. It stops at the
// first child whose state the other direction has reached and returns both
// nodes for that state.
func expandLayer[S comparable, A comparable, B comparable](r *run, h *half[S, A], other map[S]*core.Node[S, B]) (*core.Node[S, A], *core.Node[S, B], error) {
	for layer := h.frontier.Len(); layer > 0; layer-- {
		select {
		case <-r.opts.Ctx.Done():
			return nil, nil, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxExpansions > 0 && h.exp.Expanded() >= r.opts.MaxExpansions {
			return nil, nil, errCutoff
		}

		n, _ := h.frontier.Pop()
		r.opts.OnExpand(n.State, n.Depth)
		children, err := h.exp.Expand(h.p, n)
		if err != nil {
			return nil, nil, err
		}
		for _, child := range children {
			if _, seen := h.reached[child.State]; seen {
				continue
			}
			h.reached[child.State] = child
			if o, ok := other[child.State]; ok {
				return child, o, nil
			}
			if err = h.frontier.Add(child); err != nil {
				return nil, nil, err
			}
		}
		r.metrics.Max(core.MetricMaxQueueSize, float64(r.queued()))
	}

	return nil, nil, nil
}

// join extends the forward node f along the backward chain b, whose states
// lead to the goal, re-applying every Step through the forward problem.
func join[S comparable, A comparable](p *core.Problem[S, A], f *core.Node[S, A], b *core.Node[S, Step[S, A]]) (*core.Node[S, A], error) {
	cur := f
	for ; b.Parent != nil; b = b.Parent {
		next, err := core.Child(p, cur, b.Action.Action)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInconsistentPredecessors, err)
		}
		if next.State != b.Parent.State {
			return nil, fmt.Errorf("%w: %v --%v--> %v, listed as reaching %v",
				ErrInconsistentPredecessors, cur.State, b.Action.Action, next.State, b.Parent.State)
		}
		cur = next
	}

	return cur, nil
}

func finish[S comparable, A comparable](o Options, res *core.Result[S, A]) *core.Result[S, A] {
	m := res.Metrics
	o.Logger.WithFields(logrus.Fields{
		"algorithm":               Label,
		"status":                  res.Status.String(),
		core.MetricNodesExpanded:  m.Int(core.MetricNodesExpanded),
		core.MetricMaxQueueSize:   m.Int(core.MetricMaxQueueSize),
		core.MetricExploredStates: m.Int(core.MetricExploredStates),
		core.MetricPathCost:       res.PathCost,
	}).Debug("search finished")

	return res
}
