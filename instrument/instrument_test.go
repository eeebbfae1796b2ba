package instrument_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/routemap"
)

func TestNewRecorder_Errors(t *testing.T) {
	_, err := instrument.NewRecorder(nil)
	require.ErrorIs(t, err, instrument.ErrNilRegisterer)

	reg := prometheus.NewRegistry()
	_, err = instrument.NewRecorder(reg)
	require.NoError(t, err)
	_, err = instrument.NewRecorder(reg)
	var already prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &already)

	_, err = instrument.NewRecorder(reg, instrument.WithNamespace("other"))
	require.NoError(t, err)
}

func TestTrack_AStar(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := instrument.NewRecorder(reg)
	require.NoError(t, err)
	p, err := routemap.Romania().Problem(routemap.Arad, routemap.Bucharest)
	require.NoError(t, err)

	res, err := instrument.Track(rec, bestfirst.LabelAStar, func() (*core.Result[string, string], error) {
		return bestfirst.AStar(p, routemap.StraightLineToBucharest)
	})
	require.NoError(t, err)
	require.True(t, res.Solved())

	expected := `
# HELP lvsearch_searches_total Searches run, by algorithm and outcome.
# TYPE lvsearch_searches_total counter
lvsearch_searches_total{algorithm="astar",status="solved"} 1
# HELP lvsearch_nodes_expanded_total Nodes expanded across all searches.
# TYPE lvsearch_nodes_expanded_total counter
lvsearch_nodes_expanded_total{algorithm="astar"} 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"lvsearch_searches_total", "lvsearch_nodes_expanded_total"))

	families, err := reg.Gather()
	require.NoError(t, err)
	sums := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if h := m.GetHistogram(); h != nil {
				assert.Equal(t, uint64(1), h.GetSampleCount(), mf.GetName())
				sums[mf.GetName()] = h.GetSampleSum()
			}
		}
	}
	assert.Equal(t, 418.0, sums["lvsearch_path_cost"])
	assert.Contains(t, sums, "lvsearch_max_queue_size")
	assert.Contains(t, sums, "lvsearch_search_duration_seconds")
}

func TestTrack_ErrorsAndFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := instrument.NewRecorder(reg, instrument.WithNamespace("test"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = instrument.Track(rec, "broken", func() (*core.Result[int, int], error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	m := core.NewMetrics()
	m.Set(core.MetricNodesExpanded, 7)
	rec.Observe("dfs", core.StatusFailure, m, time.Millisecond)
	rec.Observe("dfs", core.StatusCutoff, nil, time.Millisecond)

	expected := `
# HELP test_searches_total Searches run, by algorithm and outcome.
# TYPE test_searches_total counter
test_searches_total{algorithm="broken",status="error"} 1
test_searches_total{algorithm="dfs",status="cutoff"} 1
test_searches_total{algorithm="dfs",status="failure"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_searches_total"))
	count, err := testutil.GatherAndCount(reg, "test_path_cost")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTrack_NilRecorder(t *testing.T) {
	res, err := instrument.Track[int, int](nil, "noop", func() (*core.Result[int, int], error) {
		return core.Failure[int, int](nil), nil
	})
	require.NoError(t, err)
	assert.Equal(t, core.StatusFailure, res.Status)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := instrument.NewRecorder(reg, instrument.WithConstLabels(prometheus.Labels{"run": "t"}))
	require.NoError(t, err)
	rec.Observe("bfs", core.StatusSolved, core.Metrics{core.MetricPathCost: 3}, time.Second)

	var buf bytes.Buffer
	require.NoError(t, instrument.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "# TYPE lvsearch_searches_total counter")
	assert.Contains(t, out, `lvsearch_searches_total{algorithm="bfs",run="t",status="solved"} 1`)
	assert.Contains(t, out, `lvsearch_path_cost_sum{algorithm="bfs",run="t"} 3`)
}
