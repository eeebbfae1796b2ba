// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvsearch.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell is outside the grid")
	// ErrBlocked indicates a route endpoint on a cell below LandThreshold.
	ErrBlocked = errors.New("gridgraph: cell is not passable")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrIncompleteComponent indicates labelling stopped before a component
	// was fully explored, e.g. under graphsearch.WithMaxExpansions.
	ErrIncompleteComponent = errors.New("gridgraph: component labelling stopped early")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Cell identifies a grid position. Y grows downwards: row 0 is the top row.
type Cell struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Move is a one-cell step in a compass direction.
type Move uint8

// Compass moves, clockwise from north.
const (
	North Move = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var moveDelta = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var moveName = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the (dx, dy) offset of m.
func (m Move) Delta() (dx, dy int) {
	d := moveDelta[m]
	return d[0], d[1]
}

// Opposite returns the move in the reverse direction.
func (m Move) Opposite() Move { return (m + 4) % 8 }

// Diagonal reports whether m changes both coordinates.
func (m Move) Diagonal() bool { return m%2 == 1 }

// String implements fmt.Stringer.
func (m Move) String() string {
	if int(m) < len(moveName) {
		return moveName[m]
	}

	return fmt.Sprintf("Move(%d)", uint8(m))
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as an implicit graph of passable cells.
// It is immutable once built. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	moves         []Move
}
