package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/eightpuzzle"
)

const (
	keyBoard     = "board"
	keyScramble  = "scramble"
	keyHeuristic = "heuristic"
)

func newPuzzleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Solve an 8-puzzle",
		Long: `Solve an 8-puzzle given with --board as nine tiles row by row (0 is the
blank), or scrambled from the goal with --scramble N random moves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.elapsed("puzzle", time.Now())
			start, err := a.puzzleBoard()
			if err != nil {
				return err
			}
			if !start.Solvable() {
				return fmt.Errorf("lvsearch: board %s cannot reach the goal", start)
			}
			h, err := puzzleHeuristic(a.v.GetString(keyHeuristic))
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()
			res, err := solve(ctx, a, eightpuzzle.Problem(start), h,
				&reverse[eightpuzzle.Board, eightpuzzle.Action]{goal: eightpuzzle.Goal, preds: eightpuzzle.Predecessors})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "start: %s\n", start)
			printResult(a.out, res, false)
			return nil
		},
	}
	fs := cmd.Flags()
	addSearchFlags(fs, "astar")
	fs.String(keyBoard, "", `tiles row by row, e.g. "1 4 2 3 0 5 6 7 8"`)
	fs.Int(keyScramble, 20, "random moves away from the goal when --board is empty")
	fs.String(keyHeuristic, "manhattan", "manhattan or misplaced")

	return cmd
}

func (a *app) puzzleBoard() (eightpuzzle.Board, error) {
	if s := a.v.GetString(keyBoard); s != "" {
		return eightpuzzle.Parse(s)
	}

	return eightpuzzle.Scramble(rand.New(rand.NewSource(a.v.GetInt64(keySeed))), a.v.GetInt(keyScramble))
}

func puzzleHeuristic(name string) (func(eightpuzzle.Board) float64, error) {
	switch name {
	case "manhattan":
		return eightpuzzle.Manhattan, nil
	case "misplaced":
		return eightpuzzle.Misplaced, nil
	default:
		return nil, fmt.Errorf("lvsearch: unknown heuristic %q", name)
	}
}
