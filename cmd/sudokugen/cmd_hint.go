package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var commandHint = &cobra.Command{
	Use:   "hint <puzzle-file>",
	Short: "Suggest the next naked single",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHint(args[0]); err != nil {
			logger.Fatal().Err(err).Msg("hint")
		}
	},
}

func init() {
	rootCommand.AddCommand(commandHint)
}

func runHint(path string) error {
	ctx := context.Background()
	svc := newService()

	b, err := svc.Load(ctx, path)
	if err != nil {
		return err
	}
	h, found, err := svc.Hint(ctx, &b)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no naked single visible")
		return nil
	}
	fmt.Printf("row %d, col %d: %s\n", h.Cell.Row+1, h.Cell.Col+1, h.Message)
	return nil
}
