package shuffle

import (
	errorsmod "cosmossdk.io/errors"

	"cardloop/internal/deck"
	"cardloop/internal/types"
)

// Round deals the whole hand onto the table once: the front card goes face down on
// the table, the next one moves to the bottom of the hand, and so on until the hand
// is empty. The final card always lands on the table. The table pile then becomes
// the hand. The table must be empty on entry and is empty on return.
func Round(hand, table *deck.Seq) error {
	if !table.Empty() {
		return errorsmod.Wrapf(types.ErrTableNotEmpty, "%d cards on the table before the deal", table.Len())
	}

	for !hand.Empty() {
		c, _ := hand.PopFront()
		table.PushFront(c)
		if hand.Empty() {
			break
		}

		c, _ = hand.PopFront()
		if hand.Empty() {
			table.PushFront(c)
		} else {
			hand.PushBack(c)
		}
	}

	hand.Swap(table)
	return nil
}
