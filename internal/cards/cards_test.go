package cards

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardloop/internal/types"
)

func TestParseWidth(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Width
	}{
		{"8", Width8},
		{"16", Width16},
		{" 32 ", Width32},
		{"16bit", Width16},
	} {
		got, err := ParseWidth(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "7", "64", "wide", "300"} {
		_, err := ParseWidth(bad)
		require.ErrorIs(t, err, types.ErrInvalidWidth, bad)
	}
}

func TestWidthMaxCount(t *testing.T) {
	require.Equal(t, uint64(255), Width8.MaxCount())
	require.Equal(t, uint64(65535), Width16.MaxCount())
	require.Equal(t, uint64(4294967295), Width32.MaxCount())
}

func TestCheckCount_RejectsWithoutTruncation(t *testing.T) {
	require.NoError(t, Width8.CheckCount(0))
	require.NoError(t, Width8.CheckCount(255))

	// 256 would truncate to 0 in an 8-bit value.
	err := Width8.CheckCount(256)
	require.ErrorIs(t, err, types.ErrInputRange)
	require.ErrorContains(t, err, "256 cards exceeds max 255")

	require.NoError(t, Width16.CheckCount(256))

	require.ErrorIs(t, Width(12).CheckCount(1), types.ErrInvalidWidth)
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("52", Width8)
	require.NoError(t, err)
	require.Equal(t, uint64(52), n)

	_, err = ParseCount("", Width8)
	require.ErrorIs(t, err, types.ErrMissingInput)

	for _, bad := range []string{"-1", "abc", "3.5", "256", "18446744073709551616"} {
		_, err := ParseCount(bad, Width8)
		require.ErrorIs(t, err, types.ErrInputRange, bad)
	}

	n, err = ParseCount("1000", Width16)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), n)
}
