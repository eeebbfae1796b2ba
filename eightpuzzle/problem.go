package eightpuzzle

import (
	"github.com/katalvlaran/lvsearch/bidirectional"
	"github.com/katalvlaran/lvsearch/core"
)

// Problem returns the task of sliding start into Goal with unit step costs.
func Problem(start Board) *core.Problem[Board, Action] {
	return ProblemTo(start, Goal)
}

// ProblemTo returns the task of sliding start into goal with unit step costs.
func ProblemTo(start, goal Board) *core.Problem[Board, Action] {
	return &core.Problem[Board, Action]{
		Initial: start,
		Actions: Board.Actions,
		Result:  Board.Move,
		Goal:    func(b Board) bool { return b == goal },
	}
}

// Predecessors lists the boards one move away from b together with the move
// that slides each of them into b. Every move is reversible, so these are the
// neighbours of b with the opposite action.
func Predecessors(b Board) []bidirectional.Step[Board, Action] {
	acts := b.Actions()
	out := make([]bidirectional.Step[Board, Action], 0, len(acts))
	for _, a := range acts {
		// cannot fail: a is one of b.Actions()
		prev, _ := b.Move(a)
		out = append(out, bidirectional.Step[Board, Action]{From: prev, Action: a.Opposite()})
	}

	return out
}

// Manhattan sums, over every tile except the blank, the row and column
// distance to its cell in Goal. It is admissible and consistent.
func Manhattan(b Board) float64 {
	return ManhattanTo(Goal)(b)
}

// ManhattanTo returns the Manhattan heuristic for an arbitrary goal layout.
func ManhattanTo(goal Board) func(Board) float64 {
	var home [len(goal)]int
	for i, t := range goal {
		home[t] = i
	}

	return func(b Board) float64 {
		sum := 0
		for i, t := range b {
			if t == 0 {
				continue
			}
			sum += abs(i/Side-home[t]/Side) + abs(i%Side-home[t]%Side)
		}

		return float64(sum)
	}
}

// Misplaced counts tiles, blank excluded, that are not in their Goal cell.
func Misplaced(b Board) float64 {
	n := 0
	for i, t := range b {
		if t != 0 && t != Goal[i] {
			n++
		}
	}

	return float64(n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
