package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/graphsearch"
	"github.com/katalvlaran/lvsearch/routemap"
)

func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search[string, string](nil)
	require.ErrorIs(t, err, core.ErrNilProblem)

	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
	require.NoError(t, err)
	_, err = bfs.Search(p, graphsearch.WithMaxExpansions(-3))
	require.ErrorIs(t, err, graphsearch.ErrOptionViolation)
}

func TestSearch_RomaniaFewestHops(t *testing.T) {
	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
	require.NoError(t, err)

	res, err := bfs.Search(p)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []string{routemap.Sibiu, routemap.Fagaras, routemap.Bucharest}, res.Actions)
	assert.Equal(t, 450.0, res.PathCost)
	assert.Equal(t, 450.0, res.Metrics.Get(core.MetricPathCost))
}

func TestSearch_GoalAtRoot(t *testing.T) {
	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Arad)
	require.NoError(t, err)

	res, err := bfs.Search(p)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, []string{}, res.Actions)
	assert.Zero(t, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestSearch_Unreachable(t *testing.T) {
	m := routemap.Romania()
	require.NoError(t, m.AddLocation("Chisinau"))
	p, err := m.Problem(routemap.Arad, "Chisinau")
	require.NoError(t, err)

	res, err := bfs.Search(p)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Nil(t, res.Actions)
	assert.Equal(t, 20, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestSearch_TreeModeFindsSameDepth(t *testing.T) {
	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
	require.NoError(t, err)

	res, err := bfs.Search(p, graphsearch.WithTreeSearch())
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Len(t, res.Actions, 3)
}

// TestProperty_Shallowest checks BFS against brute-force hop counts.
func TestProperty_Shallowest(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		prob := rapid.Float64Range(0, 0.6).Draw(rt, "p")

		m, err := routemap.Random(rand.New(rand.NewSource(seed)), n, prob)
		if err != nil {
			rt.Fatal(err)
		}
		goal := fmt.Sprintf("v%d", rapid.IntRange(0, n-1).Draw(rt, "goal"))
		p, err := m.Problem("v0", goal)
		if err != nil {
			rt.Fatal(err)
		}

		res, err := bfs.Search(p)
		if err != nil {
			rt.Fatal(err)
		}
		hops, ok := m.ShortestHops("v0", goal)
		if res.Solved() != ok {
			rt.Fatalf("solved=%v, reachable=%v", res.Solved(), ok)
		}
		if ok && len(res.Actions) != hops {
			rt.Fatalf("len(actions)=%d, shortest=%d", len(res.Actions), hops)
		}
	})
}
