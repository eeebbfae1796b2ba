package eightpuzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/eightpuzzle"
	"github.com/katalvlaran/lvsearch/rbfs"
)

var (
	twoMoves   = eightpuzzle.Board{1, 4, 2, 3, 0, 5, 6, 7, 8}
	threeMoves = eightpuzzle.Board{1, 2, 5, 3, 4, 0, 6, 7, 8}
	random1    = eightpuzzle.Board{1, 4, 2, 7, 5, 8, 3, 0, 6}
)

func TestBoard_Moves(t *testing.T) {
	g := eightpuzzle.Goal
	assert.Equal(t, 0, g.Blank())
	assert.Equal(t, []eightpuzzle.Action{eightpuzzle.Down, eightpuzzle.Right}, g.Actions())
	assert.Equal(t, []eightpuzzle.Action{eightpuzzle.Up, eightpuzzle.Down, eightpuzzle.Left, eightpuzzle.Right}, twoMoves.Actions())

	_, err := g.Move(eightpuzzle.Up)
	require.ErrorIs(t, err, core.ErrInvalidAction)

	next, err := twoMoves.Move(eightpuzzle.Up)
	require.NoError(t, err)
	assert.Equal(t, eightpuzzle.Board{1, 0, 2, 3, 4, 5, 6, 7, 8}, next)
	assert.Equal(t, eightpuzzle.Board{1, 4, 2, 3, 0, 5, 6, 7, 8}, twoMoves, "Move must not mutate the receiver")

	assert.Equal(t, "_ 1 2/3 4 5/6 7 8", g.String())
	assert.Equal(t, "Left", eightpuzzle.Left.String())
	assert.Equal(t, "Action(9)", eightpuzzle.Action(9).String())
}

func TestParse(t *testing.T) {
	b, err := eightpuzzle.Parse("1,2,5, 3 4 0 6 7 8")
	require.NoError(t, err)
	assert.Equal(t, threeMoves, b)

	_, err = eightpuzzle.Parse("1 2 3")
	require.ErrorIs(t, err, eightpuzzle.ErrBadBoard)
	_, err = eightpuzzle.Parse("1 1 2 3 4 5 6 7 8")
	require.ErrorIs(t, err, eightpuzzle.ErrBadBoard)
	_, err = eightpuzzle.Parse("1 2 3 4 5 6 7 8 9")
	require.ErrorIs(t, err, eightpuzzle.ErrBadBoard)
}

func TestHeuristics(t *testing.T) {
	assert.Zero(t, eightpuzzle.Manhattan(eightpuzzle.Goal))
	assert.Zero(t, eightpuzzle.Misplaced(eightpuzzle.Goal))
	assert.Equal(t, 3.0, eightpuzzle.Manhattan(threeMoves))
	assert.Equal(t, 3.0, eightpuzzle.Misplaced(threeMoves))
	assert.Equal(t, 2.0, eightpuzzle.Manhattan(twoMoves))
	assert.Equal(t, 2.0, eightpuzzle.ManhattanTo(twoMoves)(eightpuzzle.Goal))
}

func TestSolvable(t *testing.T) {
	assert.True(t, eightpuzzle.Goal.Solvable())
	assert.True(t, random1.Solvable())
	assert.False(t, eightpuzzle.Board{0, 2, 1, 3, 4, 5, 6, 7, 8}.Solvable())

	_, err := eightpuzzle.Scramble(nil, 3)
	require.ErrorIs(t, err, eightpuzzle.ErrNeedRandSource)
}

func TestTwoMoveBoard(t *testing.T) {
	want := []eightpuzzle.Action{eightpuzzle.Up, eightpuzzle.Left}
	p := eightpuzzle.Problem(twoMoves)

	res, err := bfs.Search(p)
	require.NoError(t, err)
	assert.Equal(t, want, res.Actions)

	res, err = bestfirst.AStar(p, eightpuzzle.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, want, res.Actions)
	assert.Equal(t, 2.0, res.PathCost)

	res, err = rbfs.Search(p, eightpuzzle.Misplaced)
	require.NoError(t, err)
	assert.Equal(t, want, res.Actions)

	res, err = dfs.DepthLimited(p, 6)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.GreaterOrEqual(t, len(res.Actions), 2)

	res, err = dfs.IterativeDeepening(p)
	require.NoError(t, err)
	assert.Equal(t, want, res.Actions)
}

func TestThreeMoveBoard(t *testing.T) {
	res, err := bestfirst.AStar(eightpuzzle.Problem(threeMoves), eightpuzzle.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, []eightpuzzle.Action{eightpuzzle.Up, eightpuzzle.Left, eightpuzzle.Left}, res.Actions)
	assert.Equal(t, 3, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestRandom1_BFSMatchesAStar(t *testing.T) {
	p := eightpuzzle.Problem(random1)
	a, err := bfs.Search(p)
	require.NoError(t, err)
	b, err := bestfirst.AStar(p, eightpuzzle.Manhattan)
	require.NoError(t, err)
	require.True(t, a.Solved())
	assert.Len(t, b.Actions, len(a.Actions))
	assert.Less(t, b.Metrics.Int(core.MetricNodesExpanded), a.Metrics.Int(core.MetricNodesExpanded))
}

func TestUnsolvableFails(t *testing.T) {
	if testing.Short() {
		t.Skip("explores all 181440 reachable boards")
	}
	res, err := bestfirst.AStar(eightpuzzle.Problem(eightpuzzle.Board{0, 2, 1, 3, 4, 5, 6, 7, 8}), eightpuzzle.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Equal(t, 181440, res.Metrics.Int(core.MetricExploredStates))
}

// TestProperty_OptimalLengthsAgree scrambles the goal and checks that BFS and
// A* under both heuristics return solutions of equal length.
func TestProperty_OptimalLengthsAgree(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		moves := rapid.IntRange(0, 12).Draw(rt, "moves")
		start, err := eightpuzzle.Scramble(rand.New(rand.NewSource(seed)), moves)
		if err != nil {
			rt.Fatal(err)
		}
		p := eightpuzzle.Problem(start)

		base, err := bfs.Search(p)
		if err != nil {
			rt.Fatal(err)
		}
		if !base.Solved() || len(base.Actions) > moves {
			rt.Fatalf("bfs: %s with %d actions for a %d-move scramble", base.Status, len(base.Actions), moves)
		}
		for name, h := range map[string]func(eightpuzzle.Board) float64{
			"manhattan": eightpuzzle.Manhattan,
			"misplaced": eightpuzzle.Misplaced,
		} {
			res, err := bestfirst.AStar(p, h)
			if err != nil {
				rt.Fatal(err)
			}
			if len(res.Actions) != len(base.Actions) {
				rt.Fatalf("%s: %d actions, bfs %d", name, len(res.Actions), len(base.Actions))
			}
		}
	})
}

func TestPredecessors_ReverseMoves(t *testing.T) {
	for _, b := range []eightpuzzle.Board{eightpuzzle.Goal, twoMoves, random1} {
		preds := eightpuzzle.Predecessors(b)
		assert.Len(t, preds, len(b.Actions()))
		for _, st := range preds {
			next, err := st.From.Move(st.Action)
			require.NoError(t, err)
			assert.Equal(t, b, next)
		}
	}
	assert.Equal(t, eightpuzzle.Down, eightpuzzle.Up.Opposite())
	assert.Equal(t, eightpuzzle.Left, eightpuzzle.Right.Opposite())
}
