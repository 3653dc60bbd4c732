// Command planner solves a PushWorld puzzle and prints the plan.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pushworld/internal/app/solve"
	"pushworld/internal/domain/pushworld"
)

func main() {
	root := &cobra.Command{
		Use:   "run_planner <mode> <puzzle.pwp>",
		Short: "Solve a PushWorld puzzle with best-first search",
		Long: `Prints a plan of (L)eft, (R)ight, (U)p, (D)own actions that solves the
given PushWorld puzzle, or prints "NO SOLUTION" if no solution exists.

Modes:
    RGD     The recursive graph distance heuristic.
    N+RGD   A lexicographic combination of the novelty heuristic with the
            RGD heuristic.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, mode, puzzlePath string) error {
	puzzle, err := pushworld.LoadPuzzle(puzzlePath)
	if err != nil {
		return err
	}

	plan, solved, err := solve.Solve(puzzle, mode)
	if err != nil {
		return err
	}

	if !solved {
		fmt.Fprintln(cmd.OutOrStdout(), "NO SOLUTION")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), plan.String())
	return nil
}
