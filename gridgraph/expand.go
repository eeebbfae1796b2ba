package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/ucs"
)

// BridgeProblem returns the problem of joining component src to component dst
// (indices into ConnectedComponents) by converting blocked cells. It starts at
// the first cell of src, may enter any in-bounds cell, and is solved on
// reaching any cell of dst. Entering a blocked cell costs 1 and entering a
// passable cell costs 0, so the cheapest solution converts the fewest cells.
func (gg *GridGraph) BridgeProblem(src, dst int) (*core.Problem[Cell, Move], error) {
	comps, err := gg.ConnectedComponents()
	if err != nil {
		return nil, err
	}
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, fmt.Errorf("%w: %d and %d of %d", ErrComponentIndex, src, dst, len(comps))
	}

	return &core.Problem[Cell, Move]{
		Initial: comps[src][0],
		Actions: func(c Cell) []Move {
			out := make([]Move, 0, len(gg.moves))
			for _, m := range gg.moves {
				if _, ok := gg.Step(c, m); ok {
					out = append(out, m)
				}
			}
			return out
		},
		Result: func(c Cell, m Move) (Cell, error) {
			next, ok := gg.Step(c, m)
			if !ok || (m.Diagonal() && gg.Conn != Conn8) {
				return c, fmt.Errorf("%w: %s from %s", core.ErrInvalidAction, m, c)
			}
			return next, nil
		},
		Goal: componentOf(comps[dst]),
		StepCost: func(_ Cell, _ Move, next Cell) float64 {
			if gg.Passable(next) {
				return 0
			}
			return 1
		},
	}, nil
}

// ExpandIsland finds a minimum‐conversion path of blocked cells that connects
// component srcComp to component dstComp, as identified by
// ConnectedComponents(). It solves BridgeProblem with uniform-cost search and
// returns the visited cells (from the first cell of srcComp to the first cell
// reached in dstComp) and the number of cells converted.
//
// Complexity: O(W·H·log(W·H)) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int, opts ...ucs.Option) (path []Cell, cost int, err error) {
	p, err := gg.BridgeProblem(srcComp, dstComp)
	if err != nil {
		return nil, 0, err
	}
	res, err := ucs.Search(p, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Solved() {
		return nil, 0, fmt.Errorf("gridgraph: no bridge from component %d to %d (%s)", srcComp, dstComp, res.Status)
	}

	return res.States(), int(res.PathCost), nil
}
