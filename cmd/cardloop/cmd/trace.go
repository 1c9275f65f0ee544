package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardloop/internal/deck"
	"cardloop/internal/shuffle"
)

func (c *cli) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace N",
		Short: "Print the deck after every round until it is back in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parseCount(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sim := c.simulator(shuffle.WithObserver(func(round uint64, hand *deck.Seq) {
				_, _ = fmt.Fprintf(out, "round %d: %s\n", round, hand)
			}))
			rounds, err := sim.RoundsToLoop(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d cards takes %d rounds to get back in order.\n", n, rounds)
			return err
		},
	}
}
