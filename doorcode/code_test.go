package doorcode_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/doorcode"
)

// TestParse accepts digits followed by A and rejects everything else.
func TestParse(t *testing.T) {
	valid := map[string]int64{"029A": 29, "980A": 980, "0A": 0, "000A": 0, "1234567A": 1234567}
	for s, want := range valid {
		c, err := doorcode.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c.Value(), s)
	}

	invalid := []string{"", "A", "029", "029a", "02-9A", "A029", " 029A", "99999999999999999999A"}
	for _, s := range invalid {
		_, err := doorcode.Parse(s)
		if !errors.Is(err, doorcode.ErrMalformedCode) {
			t.Errorf("Parse(%q) error = %v; want ErrMalformedCode", s, err)
		}
	}
}

// TestParseAll trims and stops at the first bad code.
func TestParseAll(t *testing.T) {
	got, err := doorcode.ParseAll([]string{" 029A", "980A "})
	require.NoError(t, err)
	assert.Equal(t, []doorcode.Code{"029A", "980A"}, got)

	_, err = doorcode.ParseAll([]string{"029A", "oops"})
	assert.ErrorIs(t, err, doorcode.ErrMalformedCode)
}

// TestReadCodes skips blank lines and reports the failing line number.
func TestReadCodes(t *testing.T) {
	got, err := doorcode.ReadCodes(strings.NewReader("029A\n\n  980A  \n179A\n"))
	require.NoError(t, err)
	assert.Equal(t, []doorcode.Code{"029A", "980A", "179A"}, got)

	_, err = doorcode.ReadCodes(strings.NewReader("029A\n\n12B\n"))
	require.ErrorIs(t, err, doorcode.ErrMalformedCode)
	assert.Contains(t, err.Error(), "line 3")

	got, err = doorcode.ReadCodes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestScore multiplies by the numeric part, leading zeros dropped.
func TestScore(t *testing.T) {
	cases := []struct {
		code    doorcode.Code
		presses int64
		want    int64
	}{
		{"029A", 68, 1972},
		{"980A", 60, 58800},
		{"179A", 68, 12172},
		{"456A", 64, 29184},
		{"379A", 64, 24256},
	}
	for _, tc := range cases {
		got, err := doorcode.Score(tc.presses, tc.code)
		require.NoError(t, err, string(tc.code))
		assert.Equal(t, tc.want, got, string(tc.code))
	}
}

// TestScore_Overflow pins the int64 boundary of presses × value.
func TestScore_Overflow(t *testing.T) {
	// 980A at the deepest accepted chain still fits.
	got, err := doorcode.Score(4057047463451450, "980A")
	require.NoError(t, err)
	assert.Equal(t, int64(3975906514182421000), got)

	// One keypad more does not.
	_, err = doorcode.Score(10092415064661968, "980A")
	assert.ErrorIs(t, err, doorcode.ErrOverflow)

	_, err = doorcode.Score(49, "999999999999999999A")
	assert.ErrorIs(t, err, doorcode.ErrOverflow)

	got, err = doorcode.Score(math.MaxInt64, "000A")
	require.NoError(t, err)
	assert.Zero(t, got)
}
