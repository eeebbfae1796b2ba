package nqueens

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Move relocates the queen of column Col to row Row.
type Move struct {
	Col, Row int
}

// String implements fmt.Stringer.
func (m Move) String() string { return fmt.Sprintf("c%d→r%d", m.Col, m.Row) }

// Incremental returns the n-queens problem that starts from an empty board
// and places one queen per step in the leftmost empty column, on a row no
// placed queen attacks. Actions are row numbers. Every reachable state is
// attack-free, so a full board is a solution.
func Incremental(n int) (*core.Problem[Board, int], error) {
	start, err := New(n)
	if err != nil {
		return nil, err
	}

	return &core.Problem[Board, int]{
		Initial: start,
		Actions: func(b Board) []int {
			c := b.FirstEmpty()
			if c < 0 {
				return nil
			}
			rows := make([]int, 0, b.Size())
			for r := 0; r < b.Size(); r++ {
				if !b.Attacked(c, r) {
					rows = append(rows, r)
				}
			}
			return rows
		},
		Result: func(b Board, r int) (Board, error) {
			c := b.FirstEmpty()
			if c < 0 || r < 0 || r >= b.Size() || b.Attacked(c, r) {
				return b, fmt.Errorf("%w: row %d in column %d", core.ErrInvalidAction, r, c)
			}
			return b.Place(c, r)
		},
		Goal: Board.Solved,
	}, nil
}

// CompleteState returns the n-queens problem over full boards: every state
// has one queen per column, and an action moves one queen to another row of
// its column. It is meant for local search guided by Attacks.
func CompleteState(start Board) (*core.Problem[Board, Move], error) {
	if !start.Full() {
		return nil, fmt.Errorf("%w: %d of %d placed", ErrIncomplete, start.Placed(), start.Size())
	}

	return &core.Problem[Board, Move]{
		Initial: start,
		Actions: func(b Board) []Move {
			n := b.Size()
			moves := make([]Move, 0, n*(n-1))
			for c := 0; c < n; c++ {
				cur, _ := b.Queen(c)
				for r := 0; r < n; r++ {
					if r != cur {
						moves = append(moves, Move{Col: c, Row: r})
					}
				}
			}
			return moves
		},
		Result: func(b Board, m Move) (Board, error) {
			if cur, ok := b.Queen(m.Col); !ok || cur == m.Row {
				return b, fmt.Errorf("%w: %s", core.ErrInvalidAction, m)
			}
			return b.Place(m.Col, m.Row)
		},
		Goal: Board.Solved,
	}, nil
}

// AttackingPairs is the complete-state heuristic: the number of queen pairs
// that attack each other. It is 0 exactly on solutions.
func AttackingPairs(b Board) float64 { return float64(b.Attacks()) }

// NonAttackingPairs is the genetic-algorithm fitness of a board given as one
// row per column: n(n-1)/2 minus the attacking pairs, so n(n-1)/2 exactly on
// solutions. Rows that do not form a full board score 0.
func NonAttackingPairs(rows []int) float64 {
	b, err := FromRows(rows...)
	if err != nil {
		return 0
	}
	n := len(rows)

	return float64(n*(n-1)/2 - b.Attacks())
}

// SolvedRows reports whether rows, one per column, place n non-attacking queens.
func SolvedRows(rows []int) bool {
	b, err := FromRows(rows...)
	return err == nil && b.Solved()
}
