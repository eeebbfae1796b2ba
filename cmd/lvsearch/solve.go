package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/bidirectional"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/graphsearch"
	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/rbfs"
	"github.com/katalvlaran/lvsearch/ucs"
)

// reverse names the single goal state and the reversed transitions that
// bidirectional search walks back from it.
type reverse[S comparable, A comparable] struct {
	goal  S
	preds bidirectional.Predecessors[S, A]
}

// solve runs the configured algorithm on p. h is used by the informed
// algorithms and rev by bidirectional search; either may be nil when the
// problem cannot supply it.
func solve[S comparable, A comparable](ctx context.Context, a *app, p *core.Problem[S, A], h func(S) float64, rev *reverse[S, A]) (*core.Result[S, A], error) {
	algorithm := a.v.GetString(keyAlgorithm)
	maxExp := a.v.GetInt(keyMaxExpansions)
	depth := a.v.GetInt(keyDepth)

	gopts := []graphsearch.Option{
		graphsearch.WithContext(ctx),
		graphsearch.WithLogger(a.log),
		graphsearch.WithMaxExpansions(maxExp),
	}
	if a.v.GetBool(keyTree) {
		gopts = append(gopts, graphsearch.WithTreeSearch())
	}
	dopts := []dfs.Option{dfs.WithContext(ctx), dfs.WithLogger(a.log), dfs.WithAvoidLoops()}

	needH := func() error {
		if h == nil {
			return fmt.Errorf("%w: %s needs a heuristic for this problem", errUnknownAlgorithm, algorithm)
		}
		return nil
	}

	var run func() (*core.Result[S, A], error)
	switch algorithm {
	case bfs.Label:
		run = func() (*core.Result[S, A], error) { return bfs.Search(p, gopts...) }
	case dfs.Label:
		run = func() (*core.Result[S, A], error) { return dfs.Search(p, dopts...) }
	case dfs.LabelDepthLimited:
		if depth < 0 {
			return nil, errNeedDepth
		}
		run = func() (*core.Result[S, A], error) { return dfs.DepthLimited(p, depth, dopts...) }
	case dfs.LabelIterativeDeepening:
		if depth >= 0 {
			dopts = append(dopts, dfs.WithMaxDepth(depth))
		}
		run = func() (*core.Result[S, A], error) { return dfs.IterativeDeepening(p, dopts...) }
	case ucs.Label:
		run = func() (*core.Result[S, A], error) { return ucs.Search(p, ucs.WithSearch(gopts...)) }
	case bestfirst.LabelGreedy:
		if err := needH(); err != nil {
			return nil, err
		}
		run = func() (*core.Result[S, A], error) { return bestfirst.Greedy(p, h, gopts...) }
	case bestfirst.LabelAStar:
		if err := needH(); err != nil {
			return nil, err
		}
		run = func() (*core.Result[S, A], error) { return bestfirst.AStar(p, h, gopts...) }
	case rbfs.Label:
		if err := needH(); err != nil {
			return nil, err
		}
		run = func() (*core.Result[S, A], error) {
			return rbfs.Search(p, h,
				rbfs.WithContext(ctx),
				rbfs.WithLogger(a.log),
				rbfs.WithMaxExpansions(maxExp),
				rbfs.WithAvoidLoops(),
			)
		}
	case bidirectional.Label:
		if rev == nil {
			return nil, fmt.Errorf("%w: %s needs a single goal state for this problem", errUnknownAlgorithm, algorithm)
		}
		run = func() (*core.Result[S, A], error) {
			return bidirectional.Search(p, rev.goal, rev.preds,
				bidirectional.WithContext(ctx),
				bidirectional.WithLogger(a.log),
				bidirectional.WithMaxExpansions(maxExp),
			)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownAlgorithm, algorithm)
	}

	return instrument.Track(a.rec, algorithm, run)
}

// printResult writes the outcome of a search: status line, actions, states
// (when showStates is set) and the metrics in key order.
func printResult[S comparable, A comparable](w io.Writer, res *core.Result[S, A], showStates bool) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	if res.Solved() {
		fmt.Fprintf(w, "actions (%d): %v\n", len(res.Actions), res.Actions)
		fmt.Fprintf(w, "path cost: %g\n", res.PathCost)
		if showStates {
			for i, s := range res.States() {
				fmt.Fprintf(w, "%3d: %s\n", i, strings.ReplaceAll(fmt.Sprint(s), "\n", "\n     "))
			}
		}
	}
	printMetrics(w, res.Metrics)
}

func printMetrics(w io.Writer, m core.Metrics) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %g\n", k, m[k])
	}
}
