package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"astar", []string{"route"}, []string{"status: solved", "path cost: 418", "Rimnicu Vilcea", "nodesExpanded: 5"}},
		{"bfs", []string{"route", "-a", "bfs"}, []string{"actions (3): [Sibiu Fagaras Bucharest]", "path cost: 450"}},
		{"ucs", []string{"route", "--algorithm", "ucs"}, []string{"path cost: 418"}},
		{"rbfs", []string{"route", "-a", "rbfs"}, []string{"path cost: 418"}},
		{"ids", []string{"route", "-a", "iterative-deepening"}, []string{"status: solved", "actions (3):"}},
		{"cutoff", []string{"route", "-a", "depth-limited", "--depth", "2"}, []string{"status: cutoff"}},
		{"bidirectional", []string{"route", "-a", "bidirectional"}, []string{"actions (3): [Sibiu Fagaras Bucharest]", "path cost: 450", "nodesExpanded: 5"}},
		{"bidirectional other destination", []string{"route", "-a", "bidirectional", "--to", "Craiova"}, []string{"status: solved", "Craiova"}},
		{"other destination", []string{"route", "--to", "Craiova", "-a", "astar"}, []string{"status: solved", "Craiova"}},
		{"random map", []string{"route", "--locations", "12", "--density", "0.5", "-a", "ucs"}, []string{"status:"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := run(t, "route", "-a", "quantum")
	require.ErrorIs(t, err, errUnknownAlgorithm)

	out, _, err := run(t, "route", "-a", "depth-limited")
	require.ErrorIs(t, err, errNeedDepth)
	assert.Empty(t, out)

	_, _, err = run(t, "route", "--from", "Atlantis")
	require.Error(t, err)

	_, _, err = run(t, "route", "--log-format", "xml")
	require.Error(t, err)

	_, _, err = run(t, "route", "--log-level", "loud")
	require.Error(t, err)
}

func TestRoute_EnvAndConfig(t *testing.T) {
	t.Setenv("LVSEARCH_ALGORITHM", "bfs")
	out, _, err := run(t, "route")
	require.NoError(t, err)
	assert.Contains(t, out, "path cost: 450")

	// An explicit flag wins over the environment.
	out, _, err = run(t, "route", "-a", "astar")
	require.NoError(t, err)
	assert.Contains(t, out, "path cost: 418")

	require.NoError(t, os.Unsetenv("LVSEARCH_ALGORITHM"))
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: bfs\nto: Bucharest\n"), 0o600))
	out, _, err = run(t, "route", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "path cost: 450")

	_, _, err = run(t, "route", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestProm(t *testing.T) {
	out, _, err := run(t, "route", "--prom")
	require.NoError(t, err)
	assert.Contains(t, out, `lvsearch_searches_total{algorithm="astar",status="solved"} 1`)
	assert.Contains(t, out, `lvsearch_nodes_expanded_total{algorithm="astar"} 5`)
	assert.Contains(t, out, `lvsearch_path_cost_sum{algorithm="astar"} 418`)
}

func TestLogging(t *testing.T) {
	_, errOut, err := run(t, "route", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "search finished")
	assert.Contains(t, errOut, "command=route")

	_, errOut, err = run(t, "route", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"command":"route"`)
	assert.NotContains(t, errOut, "search finished")
}

func TestPuzzle(t *testing.T) {
	out, _, err := run(t, "puzzle", "--board", "1 2 5 3 4 0 6 7 8")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (3): [Up Left Left]")
	assert.Contains(t, out, "path cost: 3")

	out, _, err = run(t, "puzzle", "--board", "1 2 5 3 4 0 6 7 8", "-a", "rbfs", "--heuristic", "misplaced")
	require.NoError(t, err)
	assert.Contains(t, out, "path cost: 3")

	out, _, err = run(t, "puzzle", "--board", "1 2 5 3 4 0 6 7 8", "-a", "bidirectional")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (3): [Up Left Left]")

	out, _, err = run(t, "puzzle", "--scramble", "12", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "status: solved")

	_, _, err = run(t, "puzzle", "--board", "0 2 1 3 4 5 6 7 8")
	require.ErrorContains(t, err, "cannot reach the goal")

	_, _, err = run(t, "puzzle", "--board", "1 2 3")
	require.Error(t, err)

	_, _, err = run(t, "puzzle", "--heuristic", "psychic")
	require.Error(t, err)
}

func TestQueens(t *testing.T) {
	out, _, err := run(t, "queens", "--n", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "status: solved")
	assert.Contains(t, out, "actions (6):")

	out, _, err = run(t, "queens", "-a", "hill-climbing", "--restarts", "300", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "attempts:")
	assert.Contains(t, out, "attacking pairs: 0")

	out, _, err = run(t, "queens", "-a", "annealing", "--n", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "attacking pairs:")

	out, _, err = run(t, "queens", "-a", "genetic", "--n", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "status: solved")
	assert.Contains(t, out, "attacking pairs: 0")
	assert.Contains(t, out, "populationSize: 50")

	_, _, err = run(t, "queens", "-a", "genetic", "--population", "0")
	require.Error(t, err)

	_, _, err = run(t, "queens", "-a", "genetic", "--mutation-rate", "2")
	require.Error(t, err)

	_, _, err = run(t, "queens", "-a", "bidirectional")
	require.ErrorIs(t, err, errUnknownAlgorithm)

	_, _, err = run(t, "queens", "--n", "0")
	require.Error(t, err)
}

func TestGrid(t *testing.T) {
	out, _, err := run(t, "grid", "--cells", "101/101/111", "--to", "2,0", "-a", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (6): [S S E E N N]")
	assert.Contains(t, out, "path cost: 6")

	out, _, err = run(t, "grid", "--cells", "101/101/111", "--to", "2,0", "-a", "bidirectional")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (6): [S S E E N N]")

	out, _, err = run(t, "grid", "--cells", "111/111/111")
	require.NoError(t, err)
	assert.Contains(t, out, "path cost: 4")

	out, _, err = run(t, "grid", "--cells", "111/111/111", "--conn", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "actions (2): [SE SE]")

	_, _, err = run(t, "grid", "--cells", "1x1")
	require.Error(t, err)

	_, _, err = run(t, "grid", "--cells", "11/11", "--conn", "6")
	require.Error(t, err)

	_, _, err = run(t, "grid", "--cells", "11/11", "--from", "nowhere")
	require.Error(t, err)
}

func TestOnline(t *testing.T) {
	out, _, err := run(t, "online")
	require.NoError(t, err)
	assert.Contains(t, out, "reached goal: true")
	assert.Contains(t, out, "steps: 32")

	out, _, err = run(t, "online", "--agent", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "reached goal: true")

	out, _, err = run(t, "online", "--max-steps", "3")
	require.Error(t, err)
	assert.Contains(t, out, "reached goal: false")
	assert.Contains(t, out, "steps: 3")

	_, _, err = run(t, "online", "--agent", "random")
	require.Error(t, err)
}
