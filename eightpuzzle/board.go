package eightpuzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Side is the width and height of the board.
const Side = 3

// Sentinel errors for board handling.
var (
	// ErrBadBoard indicates a board that is not a permutation of 0..8.
	ErrBadBoard = errors.New("eightpuzzle: board must hold each of 0..8 exactly once")

	// ErrNeedRandSource indicates a nil *rand.Rand was passed to Scramble.
	ErrNeedRandSource = errors.New("eightpuzzle: random source is required")
)

// Board lists tiles row by row; 0 is the blank.
type Board [Side * Side]uint8

// Goal is the solved layout with the blank in the top-left corner.
var Goal = Board{0, 1, 2, 3, 4, 5, 6, 7, 8}

// Action moves the blank one cell in a direction.
type Action uint8

// Blank moves, in the order Actions reports them.
const (
	Up Action = iota
	Down
	Left
	Right
)

var actionNames = [...]string{"Up", "Down", "Left", "Right"}

// String implements fmt.Stringer.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}

	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// Opposite returns the move that undoes a.
func (a Action) Opposite() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Parse reads nine whitespace- or comma-separated tiles, row by row.
func Parse(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	var b Board
	if len(fields) != len(b) {
		return b, fmt.Errorf("%w: got %d tiles", ErrBadBoard, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v >= len(b) {
			return b, fmt.Errorf("%w: tile %q", ErrBadBoard, f)
		}
		b[i] = uint8(v)
	}

	return b, b.Validate()
}

// Validate checks that b is a permutation of 0..8.
func (b Board) Validate() error {
	var seen [len(b)]bool
	for _, t := range b {
		if int(t) >= len(b) || seen[t] {
			return fmt.Errorf("%w: %v", ErrBadBoard, b)
		}
		seen[t] = true
	}

	return nil
}

// Blank returns the index of the blank.
func (b Board) Blank() int {
	for i, t := range b {
		if t == 0 {
			return i
		}
	}

	return -1
}

// Can reports whether the blank can move in direction a.
func (b Board) Can(a Action) bool {
	row, col := b.Blank()/Side, b.Blank()%Side
	switch a {
	case Up:
		return row > 0
	case Down:
		return row < Side-1
	case Left:
		return col > 0
	case Right:
		return col < Side-1
	default:
		return false
	}
}

// Actions returns the legal blank moves in Up, Down, Left, Right order.
func (b Board) Actions() []Action {
	out := make([]Action, 0, 4)
	for _, a := range []Action{Up, Down, Left, Right} {
		if b.Can(a) {
			out = append(out, a)
		}
	}

	return out
}

// Move returns the board after sliding the blank in direction a.
func (b Board) Move(a Action) (Board, error) {
	if !b.Can(a) {
		return b, fmt.Errorf("%w: %s from cell %d", core.ErrInvalidAction, a, b.Blank())
	}
	i := b.Blank()
	j := i
	switch a {
	case Up:
		j -= Side
	case Down:
		j += Side
	case Left:
		j--
	case Right:
		j++
	}
	b[i], b[j] = b[j], b[i]

	return b, nil
}

// Solvable reports whether Goal can be reached from b: on a 3×3 board that
// holds exactly when the number of inversions among the tiles is even.
func (b Board) Solvable() bool {
	inv := 0
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i] != 0 && b[j] != 0 && b[i] > b[j] {
				inv++
			}
		}
	}

	return inv%2 == 0
}

// String renders the board as three rows, blank shown as "_".
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 {
			if i%Side == 0 {
				sb.WriteByte('/')
			} else {
				sb.WriteByte(' ')
			}
		}
		if t == 0 {
			sb.WriteByte('_')
		} else {
			sb.WriteByte('0' + t)
		}
	}

	return sb.String()
}

// Scramble walks the blank moves random steps away from Goal. Boards built
// this way are always solvable in at most moves steps.
func Scramble(rng *rand.Rand, moves int) (Board, error) {
	if rng == nil {
		return Goal, ErrNeedRandSource
	}
	b := Goal
	for i := 0; i < moves; i++ {
		acts := b.Actions()
		b, _ = b.Move(acts[rng.Intn(len(acts))])
	}

	return b, nil
}
