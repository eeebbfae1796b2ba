package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	moves := []Move{North, East, South, West}
	if opts.Conn == Conn8 {
		moves = []Move{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		moves:         moves,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether c is inside the grid and its value reaches
// LandThreshold.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.LandThreshold
}

// Moves returns the moves allowed by the grid connectivity, clockwise from
// north.
func (gg *GridGraph) Moves() []Move {
	return append([]Move(nil), gg.moves...)
}

// Step returns the cell reached from c by m, and whether it is in bounds.
func (gg *GridGraph) Step(c Cell, m Move) (Cell, bool) {
	dx, dy := m.Delta()
	next := Cell{X: c.X + dx, Y: c.Y + dy}

	return next, gg.InBounds(next.X, next.Y)
}

// Neighbors returns the in-bounds cells adjacent to c under the grid
// connectivity, passable or not, in Moves order.
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(gg.moves))
	for _, m := range gg.moves {
		if next, ok := gg.Step(c, m); ok {
			out = append(out, next)
		}
	}

	return out
}

// check validates a route endpoint.
func (gg *GridGraph) check(c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, gg.Width, gg.Height)
	}
	if !gg.Passable(c) {
		return fmt.Errorf("%w: %s has value %d < %d", ErrBlocked, c, gg.CellValues[c.Y][c.X], gg.LandThreshold)
	}

	return nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to a cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}

// Index converts c to its row-major index y*Width + x.
func (gg *GridGraph) Index(c Cell) int { return gg.index(c.X, c.Y) }
