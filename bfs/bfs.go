// Package bfs provides breadth-first search over a core.Problem, returning the
// shallowest solution.
//
// BFS is the generic graph-search loop run over a FIFO frontier with goal
// testing on insert.
package bfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graphsearch"
)

// Label names breadth-first search in logs and metrics.
const Label = "bfs"

// Search runs breadth-first search on p.
//
// In graph mode (default) the frontier rejects states it already holds, so
// every state is queued at most once. In tree mode (graphsearch.WithTreeSearch)
// duplicates are kept. Children are goal-tested as they are generated, which
// finds a goal with the fewest actions without expanding the last layer.
//
// Extra options are applied after the defaults and may override them.
// Errors are those of graphsearch.Search.
func Search[S comparable, A comparable](p *core.Problem[S, A], opts ...graphsearch.Option) (*core.Result[S, A], error) {
	o, err := graphsearch.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	policy := frontier.RejectDuplicates
	if o.Mode == graphsearch.TreeSearch {
		policy = frontier.AllowDuplicates
	}
	f := frontier.NewFIFO[S, A](frontier.WithDuplicatePolicy(policy))

	all := make([]graphsearch.Option, 0, len(opts)+2)
	all = append(all, graphsearch.WithLabel(Label), graphsearch.WithGoalTestOnInsert())
	all = append(all, opts...)

	return graphsearch.Search(p, f, all...)
}
