package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/doorcode"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSolve_Args(t *testing.T) {
	out, _, err := execute(t, "solve", "029A", "980A", "179A", "456A", "379A")
	require.NoError(t, err)
	assert.Contains(t, out, "029A")
	assert.Contains(t, out, "1972")
	assert.Contains(t, out, "total: 126384")
}

func TestSolve_InputFileAndDepth(t *testing.T) {
	in := writeTemp(t, "codes.txt", "029A\n980A\n179A\n456A\n379A\n")
	out, _, err := execute(t, "solve", "--input", in, "--depth", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 154115708116294")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", "02x9A")
	assert.ErrorIs(t, err, doorcode.ErrMalformedCode)

	_, _, err = execute(t, "solve")
	assert.ErrorIs(t, err, doorcode.ErrNoCodes)

	_, _, err = execute(t, "solve", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = execute(t, "solve", "--log-level", "loud", "029A")
	assert.Error(t, err)
}

func TestDepthBound(t *testing.T) {
	for _, args := range [][]string{
		{"solve", "--depth", "38", "980A"},
		{"solve", "--depth=-1", "980A"},
		{"sequence", "--depth", "46", "980A"},
	} {
		_, _, err := execute(t, args...)
		assert.ErrorIs(t, err, cost.ErrOptionViolation, strings.Join(args, " "))
	}

	out, _, err := execute(t, "solve", "--depth", "37", "980A")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 3975906514182421000")
}

func TestRun_ConfigVariants(t *testing.T) {
	cfg := writeTemp(t, "keypadchain.yaml", `
codes: ["029A", "980A", "179A", "456A", "379A"]
variants:
  - name: part1
    max_depth: 2
  - name: part2
    max_depth: 25
log:
  level: error
  format: text
`)
	out, _, err := execute(t, "run", "--config", cfg)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "part1 (depth 2): 126384", lines[0])
	assert.Equal(t, "part2 (depth 25): 154115708116294", lines[1])
}

func TestSequence(t *testing.T) {
	out, _, err := execute(t, "sequence", "029A", "--depth", "0")
	require.NoError(t, err)
	assert.Equal(t, "<a^a>^^avvva\npresses: 12\n", out)

	out, _, err = execute(t, "sequence", "029A")
	require.NoError(t, err)
	assert.Contains(t, out, "presses: 68")

	_, _, err = execute(t, "sequence", "029A", "--depth", "25")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, _, err := execute(t, "table", "--kind", "directional")
	require.NoError(t, err)
	assert.Contains(t, out, "directional keypad:")
	assert.Contains(t, out, "a -> <: <v<a v<<a")
	assert.NotContains(t, out, "A -> 0")

	_, _, err = execute(t, "table", "--kind", "qwerty")
	assert.Error(t, err)
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := execute(t, "--metrics", "solve", "029A")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 1972")
	assert.Contains(t, out, "keypadchain_cost_memo_misses_total")
	assert.Contains(t, out, `max_depth="2"`)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug", "--log-format", "json", "solve", "029A")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"code solved"`)
	assert.Contains(t, errOut, `"msg":"cost evaluated"`)
}
