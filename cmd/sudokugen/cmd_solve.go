package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	solveLimit      int
	solveDeduceOnly bool
)

var commandSolve = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a puzzle loaded from a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args[0]); err != nil {
			logger.Fatal().Err(err).Msg("solve")
		}
	},
}

func init() {
	rootCommand.AddCommand(commandSolve)
	commandSolve.Flags().IntVarP(&solveLimit, "limit", "n", 1, "maximum number of solutions to print")
	commandSolve.Flags().BoolVar(&solveDeduceOnly, "deduce-only", false, "propagate constraints without searching and show the candidate view")
}

func runSolve(path string) error {
	ctx := context.Background()
	svc := newService()
	r := newRenderer()

	b, err := svc.Load(ctx, path)
	if err != nil {
		return err
	}

	if solveDeduceOnly {
		outcome := b.Deduce()
		fmt.Println(r.Candidates(&b))
		logger.Info().Stringer("outcome", outcome).Msg("deduced")
		return nil
	}

	sols, st, err := svc.Search(ctx, &b, solveLimit)
	if err != nil {
		return err
	}
	if verbose {
		logger.Info().Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("search finished")
	}
	if len(sols) == 0 {
		return fmt.Errorf("puzzle unsatisfiable")
	}
	for i := range sols {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(r.Grid(&sols[i]))
	}
	if len(sols) == solveLimit && solveLimit > 1 {
		// The cutoff stopped the search; more solutions may exist.
		fmt.Fprintf(os.Stderr, "printed %d solutions (limit reached, may have more)\n", len(sols))
	}
	return nil
}
