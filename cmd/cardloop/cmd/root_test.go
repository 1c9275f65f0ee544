package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cardloop/app/params"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRoot_ReportsRounds(t *testing.T) {
	code, out, _ := run(t, "3")
	require.Equal(t, 2, code)
	require.Equal(t, "3 cards takes 2 rounds to get back in order.\n", out)

	code, out, _ = run(t, "0")
	require.Equal(t, 0, code)
	require.Equal(t, "0 cards takes 0 rounds to get back in order.\n", out)

	code, out, _ = run(t, "1")
	require.Equal(t, 1, code)
	require.Equal(t, "1 cards takes 1 rounds to get back in order.\n", out)
}

func TestRoot_ExecutedCountingAndExitCap(t *testing.T) {
	code, out, _ := run(t, "--count", "executed", "52")
	require.Equal(t, 250, code)
	require.Equal(t, "52 cards takes 510 rounds to get back in order.\n", out)

	code, _, _ = run(t, "--rounds-exit=false", "3")
	require.Equal(t, 0, code)
}

func TestRoot_EnvironmentConfiguresCounting(t *testing.T) {
	t.Setenv("CARDLOOP_COUNT", "executed")
	code, out, _ := run(t, "3")
	require.Equal(t, 3, code)
	require.Equal(t, "3 cards takes 3 rounds to get back in order.\n", out)
}

func TestRoot_Errors(t *testing.T) {
	code, out, errOut := run(t)
	require.Equal(t, ExitMissingInput, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "missing card count")

	code, _, errOut = run(t, "256")
	require.Equal(t, ExitInputRange, code)
	require.Contains(t, errOut, "256 cards exceeds max 255")

	code, _, _ = run(t, "--width", "16", "256", "--max-rounds", "1")
	require.Equal(t, ExitFailure, code)

	code, _, errOut = run(t, "--max-arena-bytes", "16", "52")
	require.Equal(t, ExitAllocation, code)
	require.Contains(t, errOut, "card storage allocation failed")

	code, _, _ = run(t, "--count", "sometimes", "3")
	require.Equal(t, ExitFailure, code)

	code, _, _ = run(t, "1", "2")
	require.Equal(t, ExitFailure, code)
}

func TestRoot_FailureStatusIsNotARoundCount(t *testing.T) {
	okCode, out, _ := run(t, "2")
	require.Equal(t, 1, okCode)
	require.Equal(t, "2 cards takes 1 rounds to get back in order.\n", out)

	failCode, out, errOut := run(t, "--max-rounds", "1", "52")
	require.Equal(t, ExitFailure, failCode)
	require.Empty(t, out)
	require.Contains(t, errOut, "round limit reached")
	require.NotEqual(t, okCode, failCode)

	for _, code := range []int{ExitFailure, ExitAllocation, ExitInputRange, ExitMissingInput} {
		require.Greater(t, code, params.ExitRoundsCap)
	}

	code, _, _ := run(t, "--count", "bogus", "3")
	require.Equal(t, ExitFailure, code)
}

func TestRoot_ErrorMessageHasNoSourceLocation(t *testing.T) {
	_, _, errOut := run(t, "--max-rounds", "1", "52")
	require.True(t, strings.HasPrefix(errOut, "error: "), errOut)
	require.Contains(t, errOut, "52 cards still out of order after 1 rounds")
	require.NotContains(t, errOut, ".go:")
}

func TestRoot_WidthFlagAcceptsEveryWidthSpelling(t *testing.T) {
	code, out, errOut := run(t, "--width", "16bit", "256")
	require.Empty(t, errOut)
	require.Equal(t, 23, code)
	require.Equal(t, "256 cards takes 23 rounds to get back in order.\n", out)

	code, _, errOut = run(t, "--width", "300", "3")
	require.Equal(t, ExitFailure, code)
	require.Contains(t, errOut, "unsupported card value width")
}

func TestRoot_NegativeCountIsOutOfRange(t *testing.T) {
	code, _, errOut := run(t, "-5")
	require.Equal(t, ExitInputRange, code)
	require.Contains(t, errOut, `"-5" is not a card count`)

	code, _, _ = run(t, "--", "-5")
	require.Equal(t, ExitInputRange, code)

	code, _, _ = run(t, "sweep", "-2", "3")
	require.Equal(t, ExitInputRange, code)

	// Genuine unknown flags stay generic failures.
	code, _, _ = run(t, "-z", "3")
	require.Equal(t, ExitFailure, code)
}

func TestSweep_Text(t *testing.T) {
	code, out, _ := run(t, "sweep", "2", "4")
	require.Equal(t, 0, code)
	require.Equal(t, strings.Join([]string{
		"2 cards takes 1 rounds to get back in order.",
		"3 cards takes 2 rounds to get back in order.",
		"4 cards takes 1 rounds to get back in order.",
		"",
	}, "\n"), out)
}

func TestSweep_JSON(t *testing.T) {
	code, out, _ := run(t, "sweep", "0", "5", "-o", "json", "--count", "executed")
	require.Equal(t, 0, code)

	var rows []sweepRow
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var row sweepRow
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		rows = append(rows, row)
	}
	require.NoError(t, sc.Err())
	require.Len(t, rows, 6)
	for i, want := range []uint64{0, 1, 2, 3, 2, 5} {
		require.Equal(t, uint64(i), rows[i].Cards)
		require.Equal(t, want, rows[i].Rounds)
		require.Equal(t, "executed", rows[i].Counting)
	}
}

func TestSweep_Rejects(t *testing.T) {
	code, _, _ := run(t, "sweep", "5", "2")
	require.Equal(t, ExitInputRange, code)

	code, _, _ = run(t, "sweep", "2", "300")
	require.Equal(t, ExitInputRange, code)

	code, _, _ = run(t, "sweep", "2", "3", "-o", "xml")
	require.Equal(t, ExitFailure, code)
}

func TestTrace(t *testing.T) {
	code, out, _ := run(t, "trace", "3")
	require.Equal(t, 0, code)
	require.Equal(t, strings.Join([]string{
		"round 1: 1 2 0",
		"round 2: 2 0 1",
		"round 3: 0 1 2",
		"3 cards takes 2 rounds to get back in order.",
		"",
	}, "\n"), out)
}

func TestCycles(t *testing.T) {
	code, out, _ := run(t, "cycles", "52")
	require.Equal(t, 0, code)
	require.Equal(t, "cards:  52\ncycles: 34 10 6 1 1\nperiod: 510 executed rounds (509 redeals)\n", out)
}

func TestLogger_JSONToStderr(t *testing.T) {
	code, out, errOut := run(t, "--log-level", "debug", "--log-format", "json", "4")
	require.Equal(t, 1, code)
	require.Equal(t, "4 cards takes 1 rounds to get back in order.\n", out)
	require.Contains(t, errOut, `"module":"cardloop"`)
	require.Contains(t, errOut, "deck back in order")
}
