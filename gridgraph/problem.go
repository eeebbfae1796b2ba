package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/bidirectional"
	"github.com/katalvlaran/lvsearch/core"
)

// Problem returns the route-finding problem from start to goal over passable
// cells. Actions are the moves whose target cell is passable, in Moves order.
// Orthogonal steps cost 1 and diagonal steps cost √2, so under Conn4 the path
// cost equals the number of steps. Diagonal moves may cut corners.
//
// Returns ErrOutOfBounds or ErrBlocked if either endpoint is unusable.
func (gg *GridGraph) Problem(start, goal Cell) (*core.Problem[Cell, Move], error) {
	for _, c := range []Cell{start, goal} {
		if err := gg.check(c); err != nil {
			return nil, err
		}
	}

	return &core.Problem[Cell, Move]{
		Initial: start,
		Actions: func(c Cell) []Move {
			out := make([]Move, 0, len(gg.moves))
			for _, m := range gg.moves {
				if next, ok := gg.Step(c, m); ok && gg.Passable(next) {
					out = append(out, m)
				}
			}
			return out
		},
		Result: func(c Cell, m Move) (Cell, error) {
			next, ok := gg.Step(c, m)
			if !ok || !gg.Passable(next) || (m.Diagonal() && gg.Conn != Conn8) {
				return c, fmt.Errorf("%w: %s from %s", core.ErrInvalidAction, m, c)
			}
			return next, nil
		},
		Goal:     func(c Cell) bool { return c == goal },
		StepCost: func(_ Cell, m Move, _ Cell) float64 { return moveCost(m) },
	}, nil
}

// Predecessors lists the passable cells one move away from c with the move
// that leads from each of them into c, in Moves order. It reverses the
// transitions of Problem.
func (gg *GridGraph) Predecessors(c Cell) []bidirectional.Step[Cell, Move] {
	out := make([]bidirectional.Step[Cell, Move], 0, len(gg.moves))
	for _, m := range gg.moves {
		if prev, ok := gg.Step(c, m.Opposite()); ok && gg.Passable(prev) {
			out = append(out, bidirectional.Step[Cell, Move]{From: prev, Action: m})
		}
	}

	return out
}

func moveCost(m Move) float64 {
	if m.Diagonal() {
		return math.Sqrt2
	}

	return 1
}

// Manhattan returns the |dx|+|dy| distance to goal. It is admissible for
// Conn4 grids.
func Manhattan(goal Cell) func(Cell) float64 {
	return func(c Cell) float64 {
		return float64(abs(c.X-goal.X) + abs(c.Y-goal.Y))
	}
}

// Octile returns the octile distance to goal: the cost of the best route on
// an empty Conn8 grid. It is admissible for both connectivities.
func Octile(goal Cell) func(Cell) float64 {
	return func(c Cell) float64 {
		dx, dy := abs(c.X-goal.X), abs(c.Y-goal.Y)
		lo, hi := min(dx, dy), max(dx, dy)
		return float64(hi-lo) + math.Sqrt2*float64(lo)
	}
}

// Heuristic returns the tightest admissible distance heuristic for the grid
// connectivity: Manhattan for Conn4, Octile for Conn8.
func (gg *GridGraph) Heuristic(goal Cell) func(Cell) float64 {
	if gg.Conn == Conn8 {
		return Octile(goal)
	}

	return Manhattan(goal)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
