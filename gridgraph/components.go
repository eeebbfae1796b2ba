package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/graphsearch"
)

// ConnectedComponents finds all contiguous regions (“islands”) of passable
// cells according to gg.Conn connectivity. Components are ordered by their
// first cell in row-major order; the cells of a component are listed in
// breadth-first order from that first cell.
//
// Each component is the set of states a goal-less breadth-first search
// expands from its first cell; opts are passed to that search, so
// graphsearch.WithContext makes labelling cancellable. Any search error
// aborts labelling and is returned wrapped.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(opts ...graphsearch.Option) ([][]Cell, error) {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			start := Cell{X: x, Y: y}
			if !gg.Passable(start) || seen[gg.index(x, y)] {
				continue
			}
			comp, err := gg.reachable(start, opts)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: labelling from %s: %w", start, err)
			}
			for _, c := range comp {
				seen[gg.Index(c)] = true
			}
			comps = append(comps, comp)
		}
	}

	return comps, nil
}

// Connected reports whether a path of passable cells joins a and b.
func (gg *GridGraph) Connected(a, b Cell) bool {
	p, err := gg.Problem(a, b)
	if err != nil {
		return false
	}
	res, err := bfs.Search(p)

	return err == nil && res.Solved()
}

// reachable lists the passable cells reachable from start. The collecting
// hook is applied after opts so it cannot be replaced.
func (gg *GridGraph) reachable(start Cell, opts []graphsearch.Option) ([]Cell, error) {
	p, err := gg.Problem(start, start)
	if err != nil {
		return nil, err
	}
	p.Goal = func(Cell) bool { return false }

	var comp []Cell
	all := append(append([]graphsearch.Option(nil), opts...), graphsearch.WithOnExpand(func(state any, _ int) {
		comp = append(comp, state.(Cell))
	}))
	res, err := bfs.Search[Cell, Move](p, all...)
	if err != nil {
		return nil, err
	}
	if res.Status == core.StatusCutoff {
		return nil, fmt.Errorf("%w: component not fully explored", ErrIncompleteComponent)
	}

	return comp, nil
}

// componentOf returns the problem goal test "c belongs to comp".
func componentOf(comp []Cell) func(Cell) bool {
	set := make(map[Cell]struct{}, len(comp))
	for _, c := range comp {
		set[c] = struct{}{}
	}

	return func(c Cell) bool {
		_, ok := set[c]
		return ok
	}
}

