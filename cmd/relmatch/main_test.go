// File: cmd/relmatch/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/relmatch/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args against a private database directory.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", db, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func file(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAlphabetTranslateChecksum(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	base := file(t, dir, "base.yaml", `
glyphs: ABC
patterns:
  - tag: a
    cells: [[1, 1], [1, 1]]
`)

	out, err := run(t, db, "alphabet", base)
	require.NoError(t, err)
	assert.Contains(t, out, "alphabet: ABCA")
	assert.Contains(t, out, "distinct: 3")
	assert.Contains(t, out, "cover:    [0 1 2]")

	out, err = run(t, db, "translate", base, "cab")
	require.NoError(t, err)
	assert.Equal(t, "2 3 1\n", out, "last A wins")

	_, err = run(t, db, "translate", base, "cat")
	assert.Error(t, err)

	out, err = run(t, db, "checksum", base)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], "3\ta\t0x"))
}

// TestAlphabet_WideCoverBounded returns once the tuple limit is spent.
func TestAlphabet_WideCoverBounded(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	wide := file(t, dir, "wide.yaml", "glyphs: ABCDEFGHIJKL\n")

	out, err := run(t, db, "alphabet", "--cover-limit", "5000", wide)
	require.NoError(t, err)
	assert.Contains(t, out, "alphabet: ABCDEFGHIJKL")
	assert.Contains(t, out, "cover:    none within 5000 tuples")
}

func TestGlyphsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")

	out, err := run(t, db, "glyphs", "xy")
	require.NoError(t, err)
	path := file(t, dir, "xy.yaml", out)

	out, err = run(t, db, "alphabet", path)
	require.NoError(t, err)
	assert.Contains(t, out, "alphabet: XY")

	out, err = run(t, db, "glyphs", "--render", "i")
	require.NoError(t, err)
	assert.Contains(t, out, ".###.")

	_, err = run(t, db, "glyphs", "?")
	assert.Error(t, err)
}

// TestFederationFlow: two learned units split L and R over the O shape.
func TestFederationFlow(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	base := file(t, dir, "base.yaml", "glyphs: LR\n")
	reqL := file(t, dir, "l.yaml", "queries:\n  - text: l\n    glyph: O\n")
	reqR := file(t, dir, "r.yaml", "queries:\n  - text: r\n    glyph: O\n")
	bad := file(t, dir, "bad.yaml", "queries:\n  - text: z\n    glyph: O\n")
	query := file(t, dir, "q.yaml", "glyphs: OL\n")

	_, err := run(t, db, "learn", "letters", reqL)
	assert.ErrorIs(t, err, store.ErrNotFound)

	out, err := run(t, db, "init", "letters", base)
	require.NoError(t, err)
	assert.Equal(t, "letters: baseline LR\n", out)

	_, err = run(t, db, "verify", "letters", query)
	assert.Error(t, err, "no units yet")

	out, err = run(t, db, "learn", "letters", reqL)
	require.NoError(t, err)
	assert.Equal(t, "letters: unit 0 LRL\n", out)

	out, err = run(t, db, "verify", "letters", query)
	require.NoError(t, err)
	assert.Equal(t, "O\trejected\tL\nL\trejected\tL\n", out)

	out, err = run(t, db, "learn", "letters", reqR)
	require.NoError(t, err)
	assert.Equal(t, "letters: unit 1 LRR\n", out)

	_, err = run(t, db, "learn", "letters", bad)
	assert.Error(t, err)

	out, err = run(t, db, "verify", "letters", query)
	require.NoError(t, err)
	assert.Equal(t, "O\taccepted\tLR\nL\trejected\tL\n", out)
}

// TestFederationFlow_ConfiguredName omits the name argument.
func TestFederationFlow_ConfiguredName(t *testing.T) {
	t.Setenv("RELMATCH_FEDERATION_NAME", "shapes")
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	base := file(t, dir, "base.yaml", "glyphs: LR\n")
	req := file(t, dir, "lr.yaml", "queries:\n  - text: lr\n    glyph: O\n")
	query := file(t, dir, "q.yaml", "glyphs: O\n")

	out, err := run(t, db, "init", base)
	require.NoError(t, err)
	assert.Equal(t, "shapes: baseline LR\n", out)

	out, err = run(t, db, "learn", req)
	require.NoError(t, err)
	assert.Equal(t, "shapes: unit 0 LRLR\n", out)

	out, err = run(t, db, "verify", query)
	require.NoError(t, err)
	assert.Equal(t, "O\taccepted\tLR\n", out)

	out, err = run(t, db, "verify", "shapes", query)
	require.NoError(t, err)
	assert.Equal(t, "O\taccepted\tLR\n", out)

	_, err = run(t, db, "verify", "other", query)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSets(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	base := file(t, dir, "base.yaml", "glyphs: AB\n")

	_, err := run(t, db, "sets", "put", "ab", base)
	require.NoError(t, err)
	_, err = run(t, db, "sets", "put", "abc", base)
	require.NoError(t, err)

	out, err := run(t, db, "sets", "list", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab\nabc\n", out)

	out, err = run(t, db, "sets", "get", "ab")
	require.NoError(t, err)
	assert.Contains(t, out, "tag: A")
	assert.Contains(t, out, "crc:")

	_, err = run(t, db, "sets", "rm", "ab")
	require.NoError(t, err)
	_, err = run(t, db, "sets", "get", "ab")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
