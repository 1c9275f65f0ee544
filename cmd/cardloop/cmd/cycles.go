package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) newCyclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycles N",
		Short: "Decompose one round into cycles and derive the period without simulating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parseCount(args[0])
			if err != nil {
				return err
			}

			r, err := c.simulator().Cycles(n)
			if err != nil {
				return err
			}

			lengths := make([]string, len(r.Cycles))
			for i, l := range r.Cycles {
				lengths[i] = strconv.FormatUint(l, 10)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cards:  %d\ncycles: %s\nperiod: %s executed rounds (%s redeals)\n",
				r.Cards, strings.Join(lengths, " "), r.Period, r.Redeals())
			return err
		},
	}
}
