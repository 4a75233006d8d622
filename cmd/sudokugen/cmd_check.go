package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var commandCheck = &cobra.Command{
	Use:   "check <puzzle-file>",
	Short: "Check a puzzle for conflicts and solution uniqueness",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args[0]); err != nil {
			logger.Fatal().Err(err).Msg("check")
		}
	},
}

func init() {
	rootCommand.AddCommand(commandCheck)
}

func runCheck(path string) error {
	ctx := context.Background()
	svc := newService()

	b, err := svc.Load(ctx, path)
	if err != nil {
		return err
	}

	ok, conflicts, err := svc.Validate(ctx, &b)
	if err != nil {
		return err
	}
	if !ok {
		for _, c := range conflicts {
			fmt.Printf("conflict at row %d, col %d\n", c.Row+1, c.Col+1)
		}
		return fmt.Errorf("puzzle has %d conflicting cells", len(conflicts))
	}

	sols, st, err := svc.Search(ctx, &b, 2)
	if err != nil {
		return err
	}
	if verbose {
		logger.Info().Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("uniqueness probe")
	}
	switch len(sols) {
	case 0:
		fmt.Println("no solution")
	case 1:
		fmt.Println("exactly one solution")
	default:
		fmt.Println("multiple solutions")
	}
	return nil
}
