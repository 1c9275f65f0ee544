package shuffle

import (
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"cardloop/internal/cards"
	"cardloop/internal/deck"
	"cardloop/internal/types"
)

// Counting selects how RoundsToLoop reports a finished simulation.
type Counting uint8

const (
	// CountRedeals reports the rounds that follow the opening deal: a 3-card deck
	// is back in order after 2 redeals.
	CountRedeals Counting = iota
	// CountExecuted reports every round run, the opening deal included.
	CountExecuted
)

// ParseCounting accepts "redeals" (also the empty string) or "executed".
func ParseCounting(s string) (Counting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "redeals":
		return CountRedeals, nil
	case "executed":
		return CountExecuted, nil
	default:
		return 0, errorsmod.Wrapf(types.ErrInvalidConfig, "unknown counting convention %q (want redeals or executed)", s)
	}
}

func (c Counting) String() string {
	switch c {
	case CountRedeals:
		return "redeals"
	case CountExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

func (c Counting) report(executed uint64) uint64 {
	if c == CountRedeals {
		return executed - 1
	}
	return executed
}

// Observer sees the hand after every round; round counts executed rounds from 1.
// The hand must not be modified.
type Observer func(round uint64, hand *deck.Seq)

// Option configures a Simulator.
type Option func(*Simulator)

// WithWidth sets the card value width; it bounds the deck size. Defaults to 8 bits.
func WithWidth(w cards.Width) Option {
	return func(s *Simulator) { s.width = w }
}

// WithBudget caps the bytes a deck may claim for its cards.
func WithBudget(b deck.Budget) Option {
	return func(s *Simulator) { s.budget = b }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithCounting selects the reporting convention. Defaults to CountRedeals.
func WithCounting(c Counting) Option {
	return func(s *Simulator) { s.counting = c }
}

// WithMaxRounds aborts a simulation that has not looped after n executed rounds.
// Zero means no limit.
func WithMaxRounds(n uint64) Option {
	return func(s *Simulator) { s.maxRounds = n }
}

// WithObserver registers fn to see the hand after every round.
func WithObserver(fn Observer) Option {
	return func(s *Simulator) { s.observer = fn }
}

// WithInvariantChecks toggles the permutation check run between rounds. On by default.
func WithInvariantChecks(on bool) Option {
	return func(s *Simulator) { s.checkInvariants = on }
}

// Simulator counts how many rounds a deck needs to return to its original order.
// A Simulator holds configuration only; every call builds and releases its own deck.
type Simulator struct {
	width           cards.Width
	budget          deck.Budget
	counting        Counting
	maxRounds       uint64
	checkInvariants bool
	observer        Observer
	logger          log.Logger
}

// New returns a Simulator with an 8-bit width, no budget, no round limit and
// invariant checks enabled, then applies opts.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		width:           cards.Width8,
		checkInvariants: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewNopLogger()
	}
	return s
}

// Width is the configured card value width.
func (s *Simulator) Width() cards.Width {
	return s.width
}

// Counting is the configured reporting convention.
func (s *Simulator) Counting() Counting {
	return s.counting
}

// RoundsToLoop deals n cards valued 0..n-1 and runs rounds until the hand is back
// in order. n above the width's maximum is rejected before anything is allocated.
// A deck of 0 cards takes 0 rounds and a single card takes 1; neither is simulated.
func (s *Simulator) RoundsToLoop(n uint64) (uint64, error) {
	if err := s.width.CheckCount(n); err != nil {
		return 0, err
	}
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}

	executed, err := s.run(n)
	if err != nil {
		return 0, err
	}
	return s.counting.report(executed), nil
}

func (s *Simulator) run(n uint64) (uint64, error) {
	start := time.Now()

	arena, err := deck.New(n, s.budget)
	if err != nil {
		s.logger.Error("card allocation failed", "cards", n, "err", err)
		return 0, err
	}
	hand, table := arena.Deal(), arena.NewSeq()
	s.logger.Debug("dealt deck", "cards", n, "width", s.width.String())

	var executed uint64
	for {
		if err := Round(hand, table); err != nil {
			return 0, err
		}
		executed, err = addUint64Checked(executed, 1, "round counter")
		if err != nil {
			return 0, err
		}
		if s.observer != nil {
			s.observer(executed, hand)
		}
		if s.checkInvariants {
			if err := checkInvariants(hand, table, n); err != nil {
				return 0, errorsmod.Wrapf(err, "after round %d", executed)
			}
		}
		if hand.InOrder() {
			break
		}
		if s.maxRounds > 0 && executed >= s.maxRounds {
			s.logger.Warn("round limit reached", "cards", n, "rounds", executed)
			return 0, errorsmod.Wrapf(types.ErrRoundLimit, "%d cards still out of order after %d rounds", n, executed)
		}
	}

	s.logger.Debug("deck back in order", "cards", n, "rounds", executed, "elapsed", time.Since(start).String())
	return executed, nil
}
