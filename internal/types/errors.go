package types

import errorsmod "cosmossdk.io/errors"

// cardloop sentinel errors.
var (
	ErrMissingInput  = errorsmod.Register(ModuleName, 1, "missing card count")
	ErrInputRange    = errorsmod.Register(ModuleName, 2, "card count out of range")
	ErrAllocation    = errorsmod.Register(ModuleName, 3, "card storage allocation failed")
	ErrInvalidWidth  = errorsmod.Register(ModuleName, 4, "unsupported card value width")
	ErrTableNotEmpty = errorsmod.Register(ModuleName, 5, "table not empty")
	ErrInvariant     = errorsmod.Register(ModuleName, 6, "deck invariant violated")
	ErrRoundLimit    = errorsmod.Register(ModuleName, 7, "round limit reached")
	ErrRoundOverflow = errorsmod.Register(ModuleName, 8, "round count overflow")
	ErrInvalidConfig = errorsmod.Register(ModuleName, 9, "invalid configuration")
)
