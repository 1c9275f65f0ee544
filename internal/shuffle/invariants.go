package shuffle

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/bits-and-blooms/bitset"

	"cardloop/internal/cards"
	"cardloop/internal/deck"
	"cardloop/internal/types"
)

// checkInvariants verifies the state between two rounds: the table is empty and the
// hand holds every value of [0, n) exactly once.
func checkInvariants(hand, table *deck.Seq, n uint64) error {
	if !table.Empty() {
		return errorsmod.Wrapf(types.ErrInvariant, "table holds %d cards between rounds", table.Len())
	}
	if uint64(hand.Len()) != n {
		return errorsmod.Wrapf(types.ErrInvariant, "hand holds %d cards, want %d", hand.Len(), n)
	}

	seen := bitset.New(uint(n))
	var err error
	pos := 0
	hand.Each(func(v cards.Value) bool {
		switch {
		case uint64(v) >= n:
			err = errorsmod.Wrapf(types.ErrInvariant, "card %d at position %d out of range", v, pos)
		case seen.Test(uint(v)):
			err = errorsmod.Wrapf(types.ErrInvariant, "duplicate card %d at position %d", v, pos)
		default:
			seen.Set(uint(v))
		}
		pos++
		return err == nil
	})
	return err
}
