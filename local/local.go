package local

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
)

// climber encapsulates the state of one local search run.
type climber[S comparable, A comparable] struct {
	p       *core.Problem[S, A]
	h       bestfirst.Heuristic[S]
	opts    Options
	exp     *core.Expander[S, A]
	metrics core.Metrics
	label   string
}

func newClimber[S comparable, A comparable](p *core.Problem[S, A], h bestfirst.Heuristic[S], label string, opts []Option) (*climber[S, A], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	m := core.NewMetrics()

	return &climber[S, A]{p: p, h: h, opts: o, exp: core.NewExpander[S, A](m), metrics: m, label: label}, nil
}

func (c *climber[S, A]) value(n *core.Node[S, A]) float64 { return -c.h(n.State) }

// step records the current node and polls the context.
func (c *climber[S, A]) step(n *core.Node[S, A]) error {
	select {
	case <-c.opts.Ctx.Done():
		return c.opts.Ctx.Err()
	default:
	}
	v := c.value(n)
	c.metrics.Set(core.MetricNodeValue, v)
	c.opts.OnStep(n.State, v)

	return nil
}

// finish builds the outcome for the node the run stopped at.
func (c *climber[S, A]) finish(n *core.Node[S, A], cutoff bool) *Outcome[S, A] {
	var res *core.Result[S, A]
	switch {
	case c.p.IsGoal(n.State):
		res = core.Solution(n, c.metrics)
	case cutoff:
		res = core.Cutoff[S, A](c.metrics)
	default:
		res = core.Failure[S, A](c.metrics)
	}
	c.opts.Logger.WithFields(logrus.Fields{
		"algorithm":              c.label,
		"status":                 res.Status.String(),
		core.MetricNodesExpanded: c.metrics.Int(core.MetricNodesExpanded),
		core.MetricNodeValue:     c.metrics.Get(core.MetricNodeValue),
	}).Debug("search finished")

	return &Outcome[S, A]{Result: res, Final: n}
}

// HillClimbing moves to the best-valued successor for as long as it beats
// the current node, then stops. Ties between successors go to the first in
// Actions order. The outcome is Solved when the node it stops at is a goal,
// Failure at any other local maximum or plateau, and Cutoff when MaxSteps
// runs out first.
//
// Metrics: nodesExpanded and nodeValue (value of the final node).
func HillClimbing[S comparable, A comparable](p *core.Problem[S, A], h bestfirst.Heuristic[S], opts ...Option) (*Outcome[S, A], error) {
	c, err := newClimber(p, h, LabelHillClimbing, opts)
	if err != nil {
		return nil, err
	}

	current := core.Root[S, A](p.Initial)
	for steps := 0; ; steps++ {
		if err = c.step(current); err != nil {
			return nil, err
		}
		if c.opts.MaxSteps > 0 && steps >= c.opts.MaxSteps {
			return c.finish(current, true), nil
		}
		children, err := c.exp.Expand(p, current)
		if err != nil {
			return nil, err
		}

		var best *core.Node[S, A]
		bestValue := math.Inf(-1)
		for _, child := range children {
			if v := c.value(child); best == nil || v > bestValue {
				best, bestValue = child, v
			}
		}
		if best == nil || bestValue <= c.value(current) {
			return c.finish(current, false), nil
		}
		current = best
	}
}

// SimulatedAnnealing picks a random successor at every step and moves to it
// if it is better, or otherwise with probability e^(ΔE/T), where ΔE is the
// (negative) change in value and T the current temperature. It stops when
// the schedule reaches 0; the outcome is Solved when the node it stops at is
// a goal. Random choices come from Options.Rand.
//
// Metrics: nodesExpanded, temperature (last non-zero temperature) and
// nodeValue.
func SimulatedAnnealing[S comparable, A comparable](p *core.Problem[S, A], h bestfirst.Heuristic[S], schedule Schedule, opts ...Option) (*Outcome[S, A], error) {
	if schedule == nil {
		return nil, ErrNilSchedule
	}
	c, err := newClimber(p, h, LabelSimulatedAnnealing, opts)
	if err != nil {
		return nil, err
	}

	rng := c.opts.Rand
	current := core.Root[S, A](p.Initial)
	for t := 0; ; t++ {
		if err = c.step(current); err != nil {
			return nil, err
		}
		temp := schedule.Temperature(t)
		if temp <= 0 {
			return c.finish(current, false), nil
		}
		if c.opts.MaxSteps > 0 && t >= c.opts.MaxSteps {
			return c.finish(current, true), nil
		}
		c.metrics.Set(core.MetricTemperature, temp)

		children, err := c.exp.Expand(p, current)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			continue
		}
		next := children[rng.Intn(len(children))]
		if accept(rng.Float64(), temp, c.value(next)-c.value(current)) {
			current = next
		}
	}
}

// accept reports whether a move changing the value by deltaE is taken at
// temperature temp, given a uniform draw u in [0,1).
func accept(u, temp, deltaE float64) bool {
	return deltaE > 0 || u <= math.Exp(deltaE/temp)
}
