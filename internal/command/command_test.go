package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdparikh/tstoken"
	"github.com/vdparikh/tstoken/tinktoken"
)

// run executes the CLI with args and returns trimmed stdout and raw stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	app := App()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"tstoken"}, args...))
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "decode", "10v", "", "!")
	require.NoError(t, err)
	assert.Equal(t, []string{"6272000", "0", "62000"}, strings.Split(out, "\n"))
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := run(t, "decode", "ok", "€")
	assert.ErrorIs(t, err, tstoken.ErrInvalidCharacter)

	_, _, err = run(t, "decode")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	out, _, err := run(t, "encode", "--ms", "62000")
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.True(t, strings.HasPrefix(out, "10"), "token %q", out)

	out, _, err = run(t, "encode", "--ms", "340282366920938463463374607431768211456000")
	require.NoError(t, err)
	assert.True(t, tstoken.IsToken(out))

	out, _, err = run(t, "encode")
	require.NoError(t, err)
	assert.True(t, tstoken.IsToken(out), "synthesized token %q", out)
}

func TestEncode_InvalidTimestamp(t *testing.T) {
	for _, ms := range []string{"-1", "abc", "1.5", ""} {
		_, _, err := run(t, "encode", "--ms", ms)
		assert.Error(t, err, "--ms %q", ms)
	}
}

func TestNow(t *testing.T) {
	out, _, err := run(t, "now")
	require.NoError(t, err)
	assert.Len(t, out, 7)
	assert.True(t, tstoken.IsToken(out))
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "1R31EQv")
	require.NoError(t, err)
	assert.Contains(t, out, "positional: 1R31EQ")
	assert.Contains(t, out, "salt:       v")
	assert.Contains(t, out, "decoded:    406289041729000")

	_, _, err = run(t, "inspect", "ab!")
	assert.ErrorIs(t, err, tstoken.ErrInvalidCharacter)

	_, _, err = run(t, "inspect")
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	out, _, err := run(t, "random", "--length", "9")
	require.NoError(t, err)
	assert.Len(t, out, 9)

	out, _, err = run(t, "random")
	require.NoError(t, err)
	assert.Len(t, out, 16)

	_, _, err = run(t, "random", "-n", "-2")
	assert.Error(t, err)
}

func TestRandom_LengthFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tstoken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("random:\n  length: 5\n"), 0o644))

	out, _, err := run(t, "--config", path, "random")
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestKeyset_ReproducibleSalts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyset.json")

	_, _, err := run(t, "keyset", "new", "--out", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	first, _, err := run(t, "--keyset", path, "encode", "--ms", "1700000000000")
	require.NoError(t, err)
	second, _, err := run(t, "--keyset", path, "encode", "--ms", "1700000000000")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "1R31EQ"))

	a, _, err := run(t, "--keyset", path, "random", "-n", "20")
	require.NoError(t, err)
	b, _, err := run(t, "--keyset", path, "random", "-n", "20")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// refuses to overwrite
	_, _, err = run(t, "keyset", "new", "--out", path)
	assert.Error(t, err)
}

func TestKeyset_Stdout(t *testing.T) {
	out, _, err := run(t, "keyset", "new")
	require.NoError(t, err)

	handle, err := tinktoken.ReadCleartextJSON(strings.NewReader(out))
	require.NoError(t, err)
	_, err = tinktoken.New(handle)
	assert.NoError(t, err)
}

func TestKeyset_MissingFile(t *testing.T) {
	_, _, err := run(t, "--keyset", filepath.Join(t.TempDir(), "nope.json"), "now")
	assert.ErrorContains(t, err, "open keyset")
}

func TestLogLevel(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "encode", "--ms", "1000")
	require.NoError(t, err)
	assert.Contains(t, stderr, "encoded")

	_, stderr, err = run(t, "encode", "--ms", "1000")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "--log-level", "chatty", "now")
	assert.Error(t, err)
}
