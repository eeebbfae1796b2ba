package graphsearch_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graphsearch"
	"github.com/katalvlaran/lvsearch/routemap"
)

// diamond returns A→{B,C}, B→D, C→D, D→A with goal.
func diamond(t *testing.T, goal string) *core.Problem[string, string] {
	t.Helper()
	m := routemap.New()
	require.NoError(t, m.AddOneWayLink("A", "B", 1))
	require.NoError(t, m.AddOneWayLink("A", "C", 1))
	require.NoError(t, m.AddOneWayLink("B", "D", 1))
	require.NoError(t, m.AddOneWayLink("C", "D", 1))
	require.NoError(t, m.AddOneWayLink("D", "A", 1))
	require.NoError(t, m.AddLocation("Z"))
	p, err := m.Problem("A", goal)
	require.NoError(t, err)

	return p
}

func fifo() *frontier.Frontier[string, string] { return frontier.NewFIFO[string, string]() }

func TestSearch_Errors(t *testing.T) {
	p := diamond(t, "D")

	_, err := graphsearch.Search[string, string](nil, fifo())
	require.ErrorIs(t, err, core.ErrNilProblem)

	_, err = graphsearch.Search(&core.Problem[string, string]{Initial: "A"}, fifo())
	require.ErrorIs(t, err, core.ErrIncompleteProblem)

	_, err = graphsearch.Search(p, nil)
	require.ErrorIs(t, err, graphsearch.ErrNilFrontier)

	busy := fifo()
	require.NoError(t, busy.Add(core.Root[string, string]("A")))
	_, err = graphsearch.Search(p, busy)
	require.ErrorIs(t, err, graphsearch.ErrFrontierNotEmpty)

	_, err = graphsearch.Search(p, fifo(), graphsearch.WithMaxExpansions(-1))
	require.ErrorIs(t, err, graphsearch.ErrOptionViolation)

	_, err = graphsearch.Search(p, fifo(), graphsearch.WithMode(graphsearch.Mode(9)))
	require.ErrorIs(t, err, graphsearch.ErrOptionViolation)
}

func TestSearch_GoalAtRoot(t *testing.T) {
	res, err := graphsearch.Search(diamond(t, "A"), fifo())
	require.NoError(t, err)

	assert.Equal(t, core.StatusSolved, res.Status)
	assert.NotNil(t, res.Actions)
	assert.Empty(t, res.Actions)
	assert.Zero(t, res.PathCost)
	assert.Zero(t, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestSearch_SolvedAndFailure(t *testing.T) {
	res, err := graphsearch.Search(diamond(t, "D"), fifo())
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []string{"B", "D"}, res.Actions)
	assert.Equal(t, []string{"A", "B", "D"}, res.States())
	assert.Equal(t, 2.0, res.PathCost)

	res, err = graphsearch.Search(diamond(t, "Z"), fifo())
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Nil(t, res.Actions)
	assert.Equal(t, 4, res.Metrics.Int(core.MetricNodesExpanded))
	assert.Equal(t, 4, res.Metrics.Int(core.MetricExploredStates))
	assert.Zero(t, res.Metrics.Int(core.MetricQueueSize))
	assert.GreaterOrEqual(t, res.Metrics.Int(core.MetricMaxQueueSize), 2)
}

func TestSearch_TreeModeRevisitsStates(t *testing.T) {
	// the cycle D→A never ends in tree mode; only the budget stops it
	res, err := graphsearch.Search(diamond(t, "Z"), fifo(),
		graphsearch.WithTreeSearch(),
		graphsearch.WithMaxExpansions(25),
	)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCutoff, res.Status)
	assert.Equal(t, 25, res.Metrics.Int(core.MetricNodesExpanded))
	_, tracked := res.Metrics[core.MetricExploredStates]
	assert.False(t, tracked)
}

func TestSearch_GoalTestOnInsert(t *testing.T) {
	var expanded []string
	res, err := graphsearch.Search(diamond(t, "D"), fifo(),
		graphsearch.WithGoalTestOnInsert(),
		graphsearch.WithOnExpand(func(state any, _ int) { expanded = append(expanded, state.(string)) }),
	)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, []string{"B", "D"}, res.Actions)
	// D is spotted while expanding B, so C is never expanded
	assert.Equal(t, []string{"A", "B"}, expanded)
}

func TestSearch_RejectDuplicatesSkipsQueuedStates(t *testing.T) {
	f := frontier.NewFIFO[string, string](frontier.WithDuplicatePolicy(frontier.RejectDuplicates))
	res, err := graphsearch.Search(diamond(t, "Z"), f)
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
	assert.Equal(t, 4, res.Metrics.Int(core.MetricNodesExpanded))
}

func TestSearch_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := graphsearch.Search(diamond(t, "D"), fifo(), graphsearch.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearch_PropagatesResultError(t *testing.T) {
	boom := errors.New("boom")
	p := &core.Problem[int, int]{
		Initial: 0,
		Actions: func(int) []int { return []int{1} },
		Result: func(s, a int) (int, error) {
			if s == 2 {
				return 0, boom
			}
			return s + a, nil
		},
		Goal: func(s int) bool { return s == 10 },
	}
	_, err := graphsearch.Search(p, frontier.NewFIFO[int, int]())
	require.ErrorIs(t, err, boom)
}

func TestSearch_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := graphsearch.Search(diamond(t, "D"), fifo(),
		graphsearch.WithLogger(logger),
		graphsearch.WithLabel("bfs"),
	)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "search started", entries[0].Message)
	assert.Equal(t, "bfs", entries[0].Data["algorithm"])
	assert.Equal(t, "graph", entries[0].Data["mode"])
	assert.Equal(t, "search finished", entries[1].Message)
	assert.Equal(t, "solved", entries[1].Data["status"])
}

// TestProperty_NoStateExpandedTwice checks graph mode over random maps with
// every frontier discipline.
func TestProperty_NoStateExpandedTwice(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		n := rapid.IntRange(2, 15).Draw(rt, "n")
		prob := rapid.Float64Range(0, 1).Draw(rt, "p")
		kind := rapid.IntRange(0, 2).Draw(rt, "frontier")

		m, err := routemap.Random(rand.New(rand.NewSource(seed)), n, prob)
		if err != nil {
			rt.Fatal(err)
		}
		goal := fmt.Sprintf("v%d", n-1)
		p, err := m.Problem("v0", goal)
		if err != nil {
			rt.Fatal(err)
		}

		var f *frontier.Frontier[string, string]
		switch kind {
		case 0:
			f = frontier.NewFIFO[string, string]()
		case 1:
			f = frontier.NewLIFO[string, string]()
		default:
			f = frontier.NewPriority(func(n *core.Node[string, string]) float64 { return n.PathCost })
		}

		seen := make(map[string]bool)
		res, err := graphsearch.Search(p, f, graphsearch.WithOnExpand(func(state any, _ int) {
			s := state.(string)
			if seen[s] {
				rt.Fatalf("state %s expanded twice", s)
			}
			seen[s] = true
		}))
		if err != nil {
			rt.Fatal(err)
		}

		_, reachable := m.ShortestHops("v0", goal)
		if res.Solved() != reachable {
			rt.Fatalf("solved=%v, reachable=%v", res.Solved(), reachable)
		}
		if res.Metrics.Int(core.MetricNodesExpanded) != len(seen) {
			rt.Fatalf("nodesExpanded=%d, distinct=%d", res.Metrics.Int(core.MetricNodesExpanded), len(seen))
		}
	})
}
