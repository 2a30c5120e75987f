package doorcode_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/doorcode"
	"github.com/katalvlaran/keypadchain/transition"
)

var (
	table   = transition.MustBuild()
	example = []doorcode.Code{"029A", "980A", "179A", "456A", "379A"}
)

// TestSolve_Example reproduces the worked example total at chain length 2.
func TestSolve_Example(t *testing.T) {
	rep, err := doorcode.Solve(context.Background(), table, example, 2)
	require.NoError(t, err)

	require.Len(t, rep.Results, 5)
	assert.Equal(t, 2, rep.MaxDepth)
	assert.Equal(t, int64(126384), rep.Total)

	want := []int64{68, 60, 68, 64, 64}
	for i, r := range rep.Results {
		assert.Equal(t, example[i], r.Code)
		assert.Equal(t, want[i], r.Presses, string(r.Code))
		assert.Equal(t, r.Presses*r.Code.Value(), r.Score)
	}
	assert.Positive(t, rep.Stats.Misses)
}

// TestSolve_Errors covers empty input, cancellation and untypeable codes.
func TestSolve_Errors(t *testing.T) {
	_, err := doorcode.Solve(context.Background(), table, nil, 2)
	assert.ErrorIs(t, err, doorcode.ErrNoCodes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = doorcode.Solve(ctx, table, example, 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = doorcode.Solve(context.Background(), table, []doorcode.Code{"02B"}, 2)
	assert.ErrorIs(t, err, transition.ErrNoTransition)
	assert.Contains(t, err.Error(), "02B")
}

// TestSolve_Overflow fails loudly when a score or the running total leaves
// int64, instead of wrapping.
func TestSolve_Overflow(t *testing.T) {
	// 73 presses × 1e17 fits on its own.
	big := doorcode.Code("100000000000000000A")
	rep, err := doorcode.Solve(context.Background(), table, []doorcode.Code{big}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(73), rep.Results[0].Presses)
	assert.Equal(t, int64(7300000000000000000), rep.Total)

	// Twice that does not.
	_, err = doorcode.Solve(context.Background(), table, []doorcode.Code{big, big}, 2)
	assert.ErrorIs(t, err, doorcode.ErrOverflow)

	// Nor does a single score of 49 × 999999999999999999.
	_, err = doorcode.Solve(context.Background(), table, []doorcode.Code{"999999999999999999A"}, 2)
	assert.ErrorIs(t, err, doorcode.ErrOverflow)
	assert.Contains(t, err.Error(), "999999999999999999A")
}

// TestSolve_ChainTooLong rejects chains past cost.MaxChainDepth.
func TestSolve_ChainTooLong(t *testing.T) {
	_, err := doorcode.Solve(context.Background(), table, example, cost.MaxChainDepth+1)
	assert.ErrorIs(t, err, cost.ErrOptionViolation)
}

// TestRunVariants runs both puzzle variants concurrently and keeps order.
func TestRunVariants(t *testing.T) {
	variants := []doorcode.Variant{
		{Name: "part1", MaxDepth: 2},
		{Name: "part2", MaxDepth: 25},
		{Name: "direct", MaxDepth: 0},
	}
	reg := prometheus.NewRegistry()
	reps, err := doorcode.RunVariants(context.Background(), table, example, variants,
		doorcode.WithRegisterer(reg))
	require.NoError(t, err)
	require.Len(t, reps, 3)

	assert.Equal(t, "part1", reps[0].Variant)
	assert.Equal(t, int64(126384), reps[0].Total)
	assert.Equal(t, "part2", reps[1].Variant)
	assert.Equal(t, int64(154115708116294), reps[1].Total)
	assert.Equal(t, "direct", reps[2].Variant)
	assert.Equal(t, int64(25392), reps[2].Total)
}

// TestRunVariants_FirstErrorWins surfaces a failing variant by name.
func TestRunVariants_FirstErrorWins(t *testing.T) {
	variants := []doorcode.Variant{{Name: "ok", MaxDepth: 2}, {Name: "bad", MaxDepth: -1}}
	_, err := doorcode.RunVariants(context.Background(), table, example, variants)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `variant "bad"`)

	_, err = doorcode.RunVariants(context.Background(), table, nil, variants)
	assert.ErrorIs(t, err, doorcode.ErrNoCodes)
}
