package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/online"
	"github.com/katalvlaran/lvsearch/routemap"
)

const keyAgent = "agent"

func newOnlineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "online",
		Short: "Let an online agent explore the Romania road map",
		Long: `Let an agent that only sees the roads leaving its current city travel
from --from to --to. lrta uses learning real-time A* with the straight-line
distance; dfs explores depth-first and backtracks along known roads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.elapsed("online", time.Now())
			m := routemap.Romania()
			to := a.v.GetString(keyTo)
			p, err := m.Problem(a.v.GetString(keyFrom), to)
			if err != nil {
				return err
			}
			env, err := online.Simulate(p)
			if err != nil {
				return err
			}
			known, err := online.FromProblem(p)
			if err != nil {
				return err
			}

			var agent online.Agent[string, string]
			switch name := a.v.GetString(keyAgent); name {
			case "lrta":
				h := m.StraightLine(to)
				if to == routemap.Bucharest {
					h = routemap.StraightLineToBucharest
				}
				agent, err = online.NewLRTAStar(known, h)
			case "dfs":
				agent, err = online.NewDFSAgent(known)
			default:
				return fmt.Errorf("lvsearch: unknown agent %q", name)
			}
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			ep, err := online.Run[string, string](env, agent, a.v.GetInt(keyMaxSteps),
				online.WithContext(ctx), online.WithLogger(a.log))
			if err != nil && !errors.Is(err, online.ErrStepLimit) {
				return err
			}

			cost := 0.0
			for i, next := range ep.States[1:] {
				d, _ := m.Distance(ep.States[i], next)
				cost += d
			}
			fmt.Fprintf(a.out, "reached goal: %v\n", env.State() == to)
			fmt.Fprintf(a.out, "steps: %d\n", len(ep.Actions))
			fmt.Fprintf(a.out, "distance travelled: %g\n", cost)
			fmt.Fprintf(a.out, "route: %v\n", ep.States)
			return err
		},
	}
	fs := cmd.Flags()
	fs.String(keyAgent, "lrta", "lrta or dfs")
	fs.String(keyFrom, routemap.Arad, "start city")
	fs.String(keyTo, routemap.Bucharest, "destination city")
	fs.Int(keyMaxSteps, 1000, "give up after this many moves")

	return cmd
}
