package dfs_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/routemap"
)

// chain returns states 0..n-1 linked 0→1→…→n-1 with the given goal.
func chain(n, goal int) *core.Problem[int, int] {
	return &core.Problem[int, int]{
		Initial: 0,
		Actions: func(s int) []int {
			if s+1 < n {
				return []int{1}
			}
			return nil
		},
		Result: func(s, a int) (int, error) { return s + a, nil },
		Goal:   func(s int) bool { return s == goal },
	}
}

func romania(t *testing.T) *core.Problem[string, string] {
	t.Helper()
	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
	require.NoError(t, err)

	return p
}

func TestOptionErrors(t *testing.T) {
	_, err := dfs.DepthLimited(chain(3, 2), -1)
	require.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.IterativeDeepening(chain(3, 2), dfs.WithMaxDepth(-2))
	require.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.Search(chain(3, 2), dfs.WithMaxDepth(-2))
	require.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.DepthLimited[int, int](nil, 1)
	require.ErrorIs(t, err, core.ErrNilProblem)
}

func TestSearch_Romania(t *testing.T) {
	res, err := dfs.Search(romania(t))
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []string{
		routemap.Arad, routemap.Sibiu, routemap.RimnicuVilcea,
		routemap.Craiova, routemap.Pitesti, routemap.Bucharest,
	}, res.States())
	assert.GreaterOrEqual(t, res.PathCost, 418.0)
}

func TestDepthLimited_CutoffVersusFailure(t *testing.T) {
	res, err := dfs.DepthLimited(chain(4, -1), 2)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCutoff, res.Status)
	assert.Equal(t, 2, res.Metrics.Int(core.MetricDepthLimit))

	res, err = dfs.DepthLimited(chain(4, -1), 10)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Equal(t, 4, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestDepthLimited_Romania(t *testing.T) {
	res, err := dfs.DepthLimited(romania(t), 2)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCutoff, res.Status)

	res, err = dfs.DepthLimited(romania(t), 3)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []string{routemap.Sibiu, routemap.Fagaras, routemap.Bucharest}, res.Actions)
	assert.Equal(t, 450.0, res.Metrics.Get(core.MetricPathCost))
}

func TestDepthLimited_GoalAtRoot(t *testing.T) {
	res, err := dfs.DepthLimited(chain(3, 0), 0)
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, []int{}, res.Actions)
	assert.Zero(t, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestIterativeDeepening_AccumulatesMetrics(t *testing.T) {
	var visits []int
	res, err := dfs.IterativeDeepening(chain(5, 3),
		dfs.WithOnVisit(func(state any, _ int) { visits = append(visits, state.(int)) }),
	)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []int{1, 1, 1}, res.Actions)
	// limits 0,1,2,3 expand 0+1+2+3 nodes
	assert.Equal(t, 6, res.Metrics.Int(core.MetricNodesExpanded))
	assert.Equal(t, 3, res.Metrics.Int(core.MetricDepthLimit))
	assert.Equal(t, []int{0, 0, 1, 0, 1, 2}, visits)
}

func TestIterativeDeepening_CapFails(t *testing.T) {
	res, err := dfs.IterativeDeepening(romania(t), dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Nil(t, res.Actions)
	assert.Equal(t, 2, res.Metrics.Int(core.MetricDepthLimit))
}

func TestIterativeDeepening_ExhaustedSpaceFails(t *testing.T) {
	res, err := dfs.IterativeDeepening(chain(4, -1))
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Equal(t, 4, res.Metrics.Int(core.MetricDepthLimit))
}

func TestIterativeDeepening_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := dfs.IterativeDeepening(romania(t), dfs.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 4)
	last := hook.LastEntry()
	assert.Equal(t, "iteration finished", last.Message)
	assert.Equal(t, "solved", last.Data["status"])
	assert.Equal(t, dfs.LabelIterativeDeepening, last.Data["algorithm"])
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DepthLimited(romania(t), 5, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = dfs.IterativeDeepening(romania(t), dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = dfs.Search(romania(t), dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestProperty_IterativeDeepeningShallowest compares solution depth with
// brute-force hop counts on small random maps.
func TestProperty_IterativeDeepeningShallowest(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		n := rapid.IntRange(1, 7).Draw(rt, "n")
		prob := rapid.Float64Range(0, 0.7).Draw(rt, "p")

		m, err := routemap.Random(rand.New(rand.NewSource(seed)), n, prob)
		if err != nil {
			rt.Fatal(err)
		}
		goal := fmt.Sprintf("v%d", rapid.IntRange(0, n-1).Draw(rt, "goal"))
		p, err := m.Problem("v0", goal)
		if err != nil {
			rt.Fatal(err)
		}

		res, err := dfs.IterativeDeepening(p, dfs.WithAvoidLoops())
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
