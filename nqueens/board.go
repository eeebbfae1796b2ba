package nqueens

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// MaxN is the largest supported board size.
const MaxN = 16

const empty = -1

// Sentinel errors for board handling.
var (
	// ErrBadSize indicates a board size outside [1, MaxN].
	ErrBadSize = errors.New("nqueens: size must lie in [1, MaxN]")

	// ErrBadPosition indicates a column or row outside the board.
	ErrBadPosition = errors.New("nqueens: position is off the board")

	// ErrIncomplete indicates a complete-state problem started from a board
	// with empty columns.
	ErrIncomplete = errors.New("nqueens: every column needs a queen")

	// ErrNeedRandSource indicates a nil *rand.Rand was passed to Random.
	ErrNeedRandSource = errors.New("nqueens: random source is required")
)

// Board holds at most one queen per column. Boards are values and can be
// compared with == and used as map keys.
type Board struct {
	n    int8
	rows [MaxN]int8 // rows[c] is the queen's row in column c, or -1
}

// New returns an empty n×n board.
func New(n int) (Board, error) {
	if n < 1 || n > MaxN {
		return Board{}, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	b := Board{n: int8(n)}
	for c := range b.rows {
		b.rows[c] = empty
	}

	return b, nil
}

// FromRows returns a board with a queen in row rows[c] of every column c.
func FromRows(rows ...int) (Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return b, err
	}
	for c, r := range rows {
		if b, err = b.Place(c, r); err != nil {
			return b, err
		}
	}

	return b, nil
}

// Random returns an n×n board with one queen in a random row of every column.
func Random(rng *rand.Rand, n int) (Board, error) {
	if rng == nil {
		return Board{}, ErrNeedRandSource
	}
	b, err := New(n)
	if err != nil {
		return b, err
	}
	for c := 0; c < n; c++ {
		b.rows[c] = int8(rng.Intn(n))
	}

	return b, nil
}

// Size returns n.
func (b Board) Size() int { return int(b.n) }

// Queen returns the row of the queen in column c.
func (b Board) Queen(c int) (int, bool) {
	if c < 0 || c >= int(b.n) || b.rows[c] == empty {
		return 0, false
	}

	return int(b.rows[c]), true
}

// Rows returns the queen's row for every column, -1 for an empty column.
// FromRows inverts it on full boards.
func (b Board) Rows() []int {
	out := make([]int, b.n)
	for c := range out {
		out[c] = int(b.rows[c])
	}

	return out
}

// Place returns b with the queen of column c moved (or added) to row r.
func (b Board) Place(c, r int) (Board, error) {
	if c < 0 || c >= int(b.n) || r < 0 || r >= int(b.n) {
		return b, fmt.Errorf("%w: column %d row %d on %d×%d", ErrBadPosition, c, r, b.n, b.n)
	}
	b.rows[c] = int8(r)

	return b, nil
}

// Placed returns the number of queens on the board.
func (b Board) Placed() int {
	k := 0
	for c := 0; c < int(b.n); c++ {
		if b.rows[c] != empty {
			k++
		}
	}

	return k
}

// Full reports whether every column holds a queen.
func (b Board) Full() bool { return b.Placed() == int(b.n) }

// FirstEmpty returns the leftmost column without a queen, or -1.
func (b Board) FirstEmpty() int {
	for c := 0; c < int(b.n); c++ {
		if b.rows[c] == empty {
			return c
		}
	}

	return -1
}

// Attacked reports whether a queen at (c, r) would be attacked by a queen in
// any other column.
func (b Board) Attacked(c, r int) bool {
	for oc := 0; oc < int(b.n); oc++ {
		if oc == c || b.rows[oc] == empty {
			continue
		}
		or := int(b.rows[oc])
		if or == r || abs(or-r) == abs(oc-c) {
			return true
		}
	}

	return false
}

// Attacks counts pairs of queens attacking each other, directly or through
// other queens.
func (b Board) Attacks() int {
	pairs := 0
	for c1 := 0; c1 < int(b.n); c1++ {
		if b.rows[c1] == empty {
			continue
		}
		for c2 := c1 + 1; c2 < int(b.n); c2++ {
			if b.rows[c2] == empty {
				continue
			}
			r1, r2 := int(b.rows[c1]), int(b.rows[c2])
			if r1 == r2 || abs(r1-r2) == c2-c1 {
				pairs++
			}
		}
	}

	return pairs
}

// Solved reports whether every column holds a queen and no two attack.
func (b Board) Solved() bool { return b.Full() && b.Attacks() == 0 }

// String renders rows top to bottom, "Q" for a queen and "." otherwise.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < int(b.n); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < int(b.n); c++ {
			if int(b.rows[c]) == r {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
