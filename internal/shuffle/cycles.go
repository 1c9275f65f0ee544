package shuffle

import (
	"math/big"
	"sort"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/bits-and-blooms/bitset"

	"cardloop/internal/deck"
	"cardloop/internal/types"
)

// CycleReport describes the permutation one round applies to a deck.
type CycleReport struct {
	Cards uint64
	// Cycles holds the cycle lengths, longest first. Fixed cards are 1-cycles.
	Cycles []uint64
	// Period is the number of executed rounds after which the deck is back in
	// order: the least common multiple of the cycle lengths.
	Period sdkmath.Uint
}

// Redeals is the period expressed in the CountRedeals convention.
func (r CycleReport) Redeals() sdkmath.Uint {
	switch r.Cards {
	case 0:
		return sdkmath.ZeroUint()
	case 1:
		return sdkmath.OneUint()
	}
	return r.Period.Sub(sdkmath.OneUint())
}

// Cycles runs a single round on a fresh n-card deck and decomposes the resulting
// permutation into cycles.
func (s *Simulator) Cycles(n uint64) (CycleReport, error) {
	if err := s.width.CheckCount(n); err != nil {
		return CycleReport{}, err
	}
	if n == 0 {
		return CycleReport{Period: sdkmath.ZeroUint()}, nil
	}

	arena, err := deck.New(n, s.budget)
	if err != nil {
		return CycleReport{}, err
	}
	hand, table := arena.Deal(), arena.NewSeq()
	if err := Round(hand, table); err != nil {
		return CycleReport{}, err
	}
	// Position i now holds the card that sat at position perm[i] before the round.
	perm := hand.Values()

	visited := bitset.New(uint(n))
	period := big.NewInt(1)
	var lengths []uint64
	for i := uint64(0); i < n; i++ {
		if visited.Test(uint(i)) {
			continue
		}
		var length uint64
		for j := i; !visited.Test(uint(j)); j = uint64(perm[j]) {
			visited.Set(uint(j))
			length++
		}
		lengths = append(lengths, length)

		l := new(big.Int).SetUint64(length)
		g := new(big.Int).GCD(nil, nil, period, l)
		period.Mul(period, l.Quo(l, g))
	}
	if period.BitLen() > sdkmath.MaxBitLen {
		return CycleReport{}, errorsmod.Wrapf(types.ErrRoundOverflow, "period of %d cards needs %d bits", n, period.BitLen())
	}

	sort.Slice(lengths, func(i, j int) bool { return lengths[i] > lengths[j] })
	s.logger.Debug("decomposed round permutation", "cards", n, "cycles", len(lengths), "period", period.String())
	return CycleReport{Cards: n, Cycles: lengths, Period: sdkmath.NewUintFromBigInt(period)}, nil
}
