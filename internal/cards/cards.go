package cards

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"cardloop/internal/types"
)

// Value is a card's face value. A deck of n cards holds the values 0..n-1 exactly once.
type Value uint32

// Width is the number of bits a card value may occupy. It bounds the deck size:
// an 8-bit deck holds at most 255 cards, a 16-bit deck 65535.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// ParseWidth accepts "8", "16" or "32", with an optional "bit" suffix.
func ParseWidth(s string) (Width, error) {
	s = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(s)), "bit")
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errorsmod.Wrapf(types.ErrInvalidWidth, "%q", s)
	}
	w := Width(n)
	if !w.Valid() {
		return 0, errorsmod.Wrapf(types.ErrInvalidWidth, "%d bits (want 8, 16 or 32)", n)
	}
	return w, nil
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32:
		return true
	default:
		return false
	}
}

// MaxCount is the largest deck size the width can describe.
func (w Width) MaxCount() uint64 {
	return 1<<uint(w) - 1
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", uint8(w))
}

// CheckCount rejects deck sizes the width cannot represent. Oversized counts are
// never truncated into range.
func (w Width) CheckCount(n uint64) error {
	if !w.Valid() {
		return errorsmod.Wrapf(types.ErrInvalidWidth, "%d bits", uint8(w))
	}
	if n > w.MaxCount() {
		return errorsmod.Wrapf(types.ErrInputRange, "%d cards exceeds max %d for %s values", n, w.MaxCount(), w)
	}
	return nil
}

// ParseCount parses a decimal deck size and checks it against w.
func ParseCount(s string, w Width) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, types.ErrMissingInput
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(types.ErrInputRange, "%q is not a card count", s)
	}
	if err := w.CheckCount(n); err != nil {
		return 0, err
	}
	return n, nil
}
