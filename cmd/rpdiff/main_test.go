package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	outbound = `routeId: "1001"
direction: "1"
links:
  - {startNode: {id: A}, endNode: {id: B}, orderNumber: 1}
  - {startNode: {id: B}, endNode: {id: C}, orderNumber: 2}
  - {startNode: {id: C}, endNode: {id: D}, orderNumber: 3}
`
	shortcut = `{"routeId": "1001", "direction": "2", "links": [
  {"startNode": {"id": "A"}, "endNode": {"id": "B"}, "orderNumber": 1},
  {"startNode": {"id": "B"}, "endNode": {"id": "D"}, "orderNumber": 2}
]}`
	gap = `routeId: "9"
direction: "1"
links:
  - {startNode: {id: A}, endNode: {id: B}, orderNumber: 1}
  - {startNode: {id: X}, endNode: {id: Y}, orderNumber: 2}
`
)

// fixture writes name=body into a temp dir and returns its path.
func fixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCompare_Text(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	b := fixture(t, dir, "b.json", shortcut)

	out, _, err := execute(t, "compare", a, b, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "#  1001/1  1001/2")
	assert.Contains(t, out, "B→C")
	assert.Contains(t, out, "4 rows, 2 equal, 1 only in 1001/1, 0 only in 1001/2, 1 mismatched")
}

func TestCompare_JSONAndFailOnDiff(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	b := fixture(t, dir, "b.json", shortcut)

	out, _, err := execute(t, "compare", a, b, "--format", "json", "--fail-on-diff")
	assert.ErrorIs(t, err, errDifferences)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "1001/1", doc["first"])

	_, _, err = execute(t, "compare", a, a, "--fail-on-diff", "--no-color")
	assert.NoError(t, err, "identical route-paths do not fail")
}

func TestCompare_Errors(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	bad := fixture(t, dir, "gap.yaml", gap)

	_, stderr, err := execute(t, "compare", a, bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "load failed")

	_, _, err = execute(t, "compare", a, a, "--tie-break", "coin")
	assert.Error(t, err)

	_, _, err = execute(t, "compare", a, a, "--max-links", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot compare")

	_, _, err = execute(t, "compare", a)
	assert.Error(t, err, "two arguments required")
}

func TestCompare_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	cfg := fixture(t, dir, "rpdiff.yaml", "output: {format: json}\nlog: {level: debug, format: json}\n")

	out, stderr, err := execute(t, "--config", cfg, "compare", a, a)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, stderr, `"msg":"aligned"`)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	bad := fixture(t, dir, "gap.yaml", gap)

	out, _, err := execute(t, "validate", a)
	require.NoError(t, err)
	assert.Contains(t, out, "OK   "+a+" (1001/1, 3 links)")

	out, _, err = execute(t, "validate", a, bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL "+bad)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.yaml", outbound)
	b := fixture(t, dir, "b.json", shortcut)

	assert.Equal(t, 0, run([]string{"validate", a}))
	assert.Equal(t, 1, run([]string{"validate", filepath.Join(dir, "none.yaml")}))
	assert.Equal(t, 2, run([]string{"compare", "--format", "json", "--fail-on-diff", a, b}))
}
