package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/routemap"
)

const (
	keyFrom      = "from"
	keyTo        = "to"
	keyLocations = "locations"
	keyDensity   = "density"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a route on the Romania road map or a random map",
		Long: `Find a route between two locations.

Without --locations the classic Romania road map is used and the informed
algorithms get the straight-line distance to the destination. With
--locations N a random map of N locations v0..vN-1 is generated from --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.elapsed("route", time.Now())
			m, h, err := a.routeMap()
			if err != nil {
				return err
			}
			p, err := m.Problem(a.v.GetString(keyFrom), a.v.GetString(keyTo))
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			res, err := solve(ctx, a, p, h, &reverse[string, string]{goal: a.v.GetString(keyTo), preds: m.Predecessors})
			if err != nil {
				return err
			}
			printResult(a.out, res, true)
			return nil
		},
	}
	fs := cmd.Flags()
	addSearchFlags(fs, "astar")
	fs.String(keyFrom, routemap.Arad, "start location")
	fs.String(keyTo, routemap.Bucharest, "destination")
	fs.Int(keyLocations, 0, "generate a random map with this many locations instead of Romania")
	fs.Float64(keyDensity, 0.2, "link probability between two random locations")

	return cmd
}

// routeMap returns the configured map and the straight-line heuristic towards
// the configured destination.
func (a *app) routeMap() (*routemap.Map, func(string) float64, error) {
	to := a.v.GetString(keyTo)
	n := a.v.GetInt(keyLocations)
	if n == 0 {
		if to == routemap.Bucharest {
			return routemap.Romania(), routemap.StraightLineToBucharest, nil
		}
		m := routemap.Romania()
		return m, m.StraightLine(to), nil
	}

	m, err := routemap.Random(rand.New(rand.NewSource(a.v.GetInt64(keySeed))), n, a.v.GetFloat64(keyDensity))
	if err != nil {
		return nil, nil, fmt.Errorf("lvsearch: random map: %w", err)
	}
	if a.v.GetString(keyFrom) == routemap.Arad && to == routemap.Bucharest {
		// Defaults name Romanian cities; pick the map's first and last locations.
		a.v.Set(keyFrom, "v0")
		a.v.Set(keyTo, fmt.Sprintf("v%d", n-1))
		to = a.v.GetString(keyTo)
	}

	return m, m.StraightLine(to), nil
}
