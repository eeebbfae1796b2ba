package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/local"
	"github.com/katalvlaran/lvsearch/nqueens"
)

const (
	keyN        = "n"
	keyRestarts = "restarts"
	keyMaxSteps     = "max-steps"
	keyPopulation   = "population"
	keyMutationRate = "mutation-rate"

	algHillClimbing = "hill-climbing"
	algAnnealing    = "annealing"
	algGenetic      = local.LabelGenetic
)

func newQueensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place n non-attacking queens",
		Long: `Place n queens on an n×n board so that none attacks another.

The offline algorithms work on the incremental formulation (one queen per
column, left to right). hill-climbing and annealing work on complete boards
drawn from --seed and minimise the number of attacking pairs; hill climbing
restarts from a fresh random board up to --restarts times. genetic breeds
--population random boards, one gene per column, until a board has no
attacking pairs or --max-steps generations have passed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.elapsed("queens", time.Now())
			ctx, cancel := a.context(cmd)
			defer cancel()

			n := a.v.GetInt(keyN)
			switch algorithm := a.v.GetString(keyAlgorithm); algorithm {
			case algHillClimbing, algAnnealing:
				return a.queensLocal(ctx, algorithm, n)
			case algGenetic:
				return a.queensGenetic(ctx, n)
			default:
				p, err := nqueens.Incremental(n)
				if err != nil {
					return err
				}
				// Each remaining queen costs exactly one step.
				h := func(b nqueens.Board) float64 { return float64(b.Size() - b.Placed()) }
				res, err := solve[nqueens.Board, int](ctx, a, p, h, nil)
				if err != nil {
					return err
				}
				printResult(a.out, res, false)
				if res.Solved() {
					fmt.Fprintln(a.out, res.Goal.State)
				}
				return nil
			}
		},
	}
	fs := cmd.Flags()
	addSearchFlags(fs, "dfs")
	fs.Int(keyN, 8, "board size")
	fs.Int(keyRestarts, 50, "hill-climbing restarts")
	fs.Int(keyMaxSteps, 0, "step limit for local search (0 = none; genetic stops after 1000 generations)")
	fs.Int(keyPopulation, 50, "genetic population size")
	fs.Float64(keyMutationRate, local.DefaultMutationRate, "genetic per-child mutation probability")

	return cmd
}

func (a *app) queensLocal(ctx context.Context, algorithm string, n int) error {
	rng := rand.New(rand.NewSource(a.v.GetInt64(keySeed)))
	opts := []local.Option{
		local.WithContext(ctx),
		local.WithLogger(a.log),
		local.WithRand(rng),
		local.WithMaxSteps(a.v.GetInt(keyMaxSteps)),
	}

	attempts := 1
	if algorithm == algHillClimbing {
		attempts += a.v.GetInt(keyRestarts)
	}
	var out *local.Outcome[nqueens.Board, nqueens.Move]
	for i := 0; i < attempts; i++ {
		start, err := nqueens.Random(rng, n)
		if err != nil {
			return err
		}
		p, err := nqueens.CompleteState(start)
		if err != nil {
			return err
		}
		_, err = instrument.Track(a.rec, algorithm, func() (*core.Result[nqueens.Board, nqueens.Move], error) {
			o, runErr := runLocal(algorithm, p, opts)
			if runErr != nil {
				return nil, runErr
			}
			out = o
			return o.Result, nil
		})
		if err != nil {
			return err
		}
		if out.Solved() {
			fmt.Fprintf(a.out, "attempts: %d\n", i+1)
			break
		}
	}

	printResult(a.out, out.Result, false)
	fmt.Fprintf(a.out, "attacking pairs: %d\n%s\n", out.Final.State.Attacks(), out.Final.State)

	return nil
}

func runLocal(algorithm string, p *core.Problem[nqueens.Board, nqueens.Move], opts []local.Option) (*local.Outcome[nqueens.Board, nqueens.Move], error) {
	if algorithm == algHillClimbing {
		return local.HillClimbing(p, nqueens.AttackingPairs, opts...)
	}

	return local.SimulatedAnnealing(p, nqueens.AttackingPairs, local.DefaultSchedule(), opts...)
}

func (a *app) queensGenetic(ctx context.Context, n int) error {
	rng := rand.New(rand.NewSource(a.v.GetInt64(keySeed)))
	pop := make([][]int, a.v.GetInt(keyPopulation))
	for i := range pop {
		b, err := nqueens.Random(rng, n)
		if err != nil {
			return err
		}
		pop[i] = b.Rows()
	}
	alphabet := make([]int, n)
	for r := range alphabet {
		alphabet[r] = r
	}

	var evo *local.Evolution[int]
	_, err := instrument.Track(a.rec, algGenetic, func() (*core.Result[nqueens.Board, nqueens.Move], error) {
		e, runErr := local.Genetic(pop, alphabet, nqueens.NonAttackingPairs, nqueens.SolvedRows,
			local.WithContext(ctx),
			local.WithLogger(a.log),
			local.WithRand(rng),
			local.WithMaxSteps(a.v.GetInt(keyMaxSteps)),
			local.WithMutationRate(a.v.GetFloat64(keyMutationRate)),
		)
		if runErr != nil {
			return nil, runErr
		}
		evo = e
		return &core.Result[nqueens.Board, nqueens.Move]{Status: e.Status, Metrics: e.Metrics}, nil
	})
	if err != nil {
		return err
	}
	b, err := nqueens.FromRows(evo.Best...)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "status: %s\n", evo.Status)
	printMetrics(a.out, evo.Metrics)
	fmt.Fprintf(a.out, "attacking pairs: %d\n%s\n", b.Attacks(), b)

	return nil
}
