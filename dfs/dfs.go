// Package dfs implements depth-first search over a core.Problem in three forms:
// graph search over a LIFO frontier, recursive depth-limited search and
// iterative deepening.
package dfs

import (
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graphsearch"
)

// Search runs depth-first graph search on p: the generic loop over a LIFO
// frontier with an explored set. It is complete on finite state spaces but
// not optimal. MaxDepth and AvoidLoops do not apply here.
func Search[S comparable, A comparable](p *core.Problem[S, A], opts ...Option) (*core.Result[S, A], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return graphsearch.Search(p, frontier.NewLIFO[S, A](),
		graphsearch.WithLabel(Label),
		graphsearch.WithContext(o.Ctx),
		graphsearch.WithLogger(o.Logger),
		graphsearch.WithOnExpand(o.OnVisit),
	)
}
