package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

const (
	keyCells     = "cells"
	keyConn      = "conn"
	keyThreshold = "threshold"
)

func newGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find a route across a grid of cells",
		Long: `Find a route across a grid given with --cells as rows of digits separated
by "/", e.g. "111/101/111". Cells with a value of at least --threshold are
passable. --from and --to take x,y coordinates with y growing downwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.elapsed("grid", time.Now())
			gg, err := a.grid()
			if err != nil {
				return err
			}
			from, err := parseCell(a.v.GetString(keyFrom))
			if err != nil {
				return err
			}
			to, err := parseCell(a.v.GetString(keyTo))
			if err != nil {
				return err
			}
			p, err := gg.Problem(from, to)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			res, err := solve(ctx, a, p, gg.Heuristic(to), &reverse[gridgraph.Cell, gridgraph.Move]{goal: to, preds: gg.Predecessors})
			if err != nil {
				return err
			}
			printResult(a.out, res, false)
			if res.Solved() {
				fmt.Fprintln(a.out, res.States())
			}
			return nil
		},
	}
	fs := cmd.Flags()
	addSearchFlags(fs, "astar")
	fs.String(keyCells, "", `grid rows of digits separated by "/"`)
	fs.String(keyFrom, "0,0", "start cell x,y")
	fs.String(keyTo, "", "goal cell x,y (default: bottom-right corner)")
	fs.Int(keyConn, 4, "connectivity: 4 or 8")
	fs.Int(keyThreshold, 1, "minimum value of a passable cell")

	return cmd
}

func (a *app) grid() (*gridgraph.GridGraph, error) {
	var rows [][]int
	for _, line := range strings.Split(a.v.GetString(keyCells), "/") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, r := range line {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("lvsearch: grid cell %q is not a digit", r)
			}
			row = append(row, int(r-'0'))
		}
		rows = append(rows, row)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = a.v.GetInt(keyThreshold)
	switch c := a.v.GetInt(keyConn); c {
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("lvsearch: connectivity must be 4 or 8, got %d", c)
	}
	gg, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, err
	}
	if a.v.GetString(keyTo) == "" {
		a.v.Set(keyTo, fmt.Sprintf("%d,%d", gg.Width-1, gg.Height-1))
	}

	return gg, nil
}

func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("lvsearch: cell %q is not x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return gridgraph.Cell{}, fmt.Errorf("lvsearch: cell %q is not x,y", s)
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}
