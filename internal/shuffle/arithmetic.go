package shuffle

import (
	errorsmod "cosmossdk.io/errors"

	"cardloop/internal/types"
)

func addUint64Checked(a uint64, b uint64, field string) (uint64, error) {
	if a > ^uint64(0)-b {
		return 0, errorsmod.Wrapf(types.ErrRoundOverflow, "%s overflows uint64", field)
	}
	return a + b, nil
}
