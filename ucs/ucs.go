// Package ucs implements uniform-cost search: the generic graph-search loop
// over a priority frontier ordered by path cost.
package ucs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graphsearch"
)

// PathCost is the uniform-cost evaluation function, f(n) = g(n).
func PathCost[S comparable, A comparable](n *core.Node[S, A]) float64 { return n.PathCost }

// Search returns a cheapest solution of p.
//
// Nodes are popped in non-decreasing path cost with ties broken by insertion
// order. The frontier holds at most one node per state and keeps the cheaper
// one when a state is reached again. Goal testing happens on pop, which is
// what makes the first solution optimal.
//
// Every transition is checked as it is generated; a negative or NaN step cost
// aborts the search with ErrNegativeStepCost.
func Search[S comparable, A comparable](p *core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
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

	f := frontier.NewPriority(PathCost[S, A], frontier.WithDuplicatePolicy(frontier.ReplaceIfCheaper))
	all := make([]graphsearch.Option, 0, len(o.Search)+2)
	all = append(all, graphsearch.WithLabel(Label))
	if !math.IsInf(o.MaxCost, 1) {
		limit := o.MaxCost
		all = append(all, graphsearch.WithPrune(func(_ any, g float64, _ int) bool { return g > limit }))
	}
	all = append(all, o.Search...)

	return graphsearch.Search(checkedCosts(p), f, all...)
}

// checkedCosts returns a copy of p whose Result rejects negative step costs.
func checkedCosts[S comparable, A comparable](p *core.Problem[S, A]) *core.Problem[S, A] {
	q := *p
	q.Result = func(s S, a A) (S, error) {
		next, err := p.Result(s, a)
		if err != nil {
			return next, err
		}
		if c := p.Cost(s, a, next); c < 0 || math.IsNaN(c) {
			return next, fmt.Errorf("%w: %v -%v-> %v costs %g", ErrNegativeStepCost, s, a, next, c)
		}

		return next, nil
	}

	return &q
}
