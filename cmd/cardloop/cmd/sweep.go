package cmd

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"cardloop/internal/types"
)

const flagOutput = "output"

type sweepRow struct {
	Cards    uint64 `json:"cards"`
	Rounds   uint64 `json:"rounds"`
	Counting string `json:"counting"`
}

func (c *cli) newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep FROM TO",
		Short: "Report the rounds for every deck size from FROM to TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := c.parseCount(args[0])
			if err != nil {
				return err
			}
			to, err := c.parseCount(args[1])
			if err != nil {
				return err
			}
			if from > to {
				return errorsmod.Wrapf(types.ErrInputRange, "empty range %d..%d", from, to)
			}

			output, _ := cmd.Flags().GetString(flagOutput)
			if output != "text" && output != "json" {
				return errorsmod.Wrapf(types.ErrInvalidConfig, "unknown output %q (want text or json)", output)
			}

			sim := c.simulator()
			enc := json.NewEncoder(cmd.OutOrStdout())
			for n := from; ; n++ {
				rounds, err := sim.RoundsToLoop(n)
				if err != nil {
					return errorsmod.Wrapf(err, "%d cards", n)
				}
				if output == "json" {
					err = enc.Encode(sweepRow{Cards: n, Rounds: rounds, Counting: sim.Counting().String()})
				} else {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d cards takes %d rounds to get back in order.\n", n, rounds)
				}
				if err != nil {
					return err
				}
				if n == to {
					return nil
				}
			}
		},
	}
	cmd.Flags().StringP(flagOutput, "o", "text", "output format (text|json)")
	return cmd
}
