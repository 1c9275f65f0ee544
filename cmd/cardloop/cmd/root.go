package cmd

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"cardloop/app/params"
	"cardloop/internal/cards"
	"cardloop/internal/config"
	"cardloop/internal/shuffle"
	"cardloop/internal/types"
)

// Exit statuses for failed runs. A successful run exits with its round count,
// capped at params.ExitRoundsCap, or 0 when --rounds-exit is off; every failure
// status lies above that cap.
const (
	ExitFailure      = 252
	ExitAllocation   = 253
	ExitInputRange   = 254
	ExitMissingInput = 255
)

// negativeCount matches the flag error pflag reports for a dash-prefixed number
// such as "-5".
var negativeCount = regexp.MustCompile(` in (-[0-9]+)$`)

type cli struct {
	cfg    config.Config
	logger log.Logger

	// rounds is the count the root command reported, if it got that far.
	rounds   uint64
	reported bool
}

// Execute runs the CLI with args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{logger: log.NewNopLogger()}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %s\n", err.Error())
		return ExitCode(err)
	}
	if !c.reported || !c.cfg.RoundsExit {
		return 0
	}
	if c.rounds > params.ExitRoundsCap {
		return params.ExitRoundsCap
	}
	return int(c.rounds)
}

// ExitCode maps a failed run to its exit status.
func ExitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrMissingInput):
		return ExitMissingInput
	case errors.Is(err, types.ErrInputRange):
		return ExitInputRange
	case errors.Is(err, types.ErrAllocation):
		return ExitAllocation
	default:
		return ExitFailure
	}
}

func (c *cli) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   params.BinaryName + " N",
		Short: "Count the rounds a deck of N cards needs to return to its original order",
		Long: `Deal a deck of N cards by repeatedly putting the top card on the table and the
next one under the deck, until every card is on the table. Pick the table up and
repeat until the deck is back in its original order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			if c.cfg, err = config.Load(v); err != nil {
				return err
			}
			c.logger = newLogger(cmd.ErrOrStderr(), c.cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errorsmod.Wrapf(types.ErrMissingInput, "usage: %s", cmd.UseLine())
			}
			n, err := c.parseCount(args[0])
			if err != nil {
				return err
			}

			rounds, err := c.simulator().RoundsToLoop(n)
			if err != nil {
				return err
			}
			c.rounds, c.reported = rounds, true
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d cards takes %d rounds to get back in order.\n", n, rounds)
			return err
		},
	}

	// A negative deck size reaches pflag as a shorthand flag; report it as a
	// card count out of range instead.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if m := negativeCount.FindStringSubmatch(err.Error()); m != nil {
			return errorsmod.Wrapf(types.ErrInputRange, "%q is not a card count", m[1])
		}
		return err
	})

	config.AddFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		c.newSweepCmd(),
		c.newTraceCmd(),
		c.newCyclesCmd(),
	)
	return rootCmd
}

func (c *cli) simulator(extra ...shuffle.Option) *shuffle.Simulator {
	return shuffle.New(c.cfg.SimulatorOptions(c.logger, extra...)...)
}

// parseCount parses a positional deck size against the configured width.
func (c *cli) parseCount(arg string) (uint64, error) {
	return cards.ParseCount(arg, c.cfg.Width)
}
