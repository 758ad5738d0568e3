package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExecuteMatchesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempFile(t, dir, "a.txt", "no match here\nabc is here\n")
	f2 := writeTempFile(t, dir, "b.txt", "ababc more\n")

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"(ab)*c", f1, f2}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	out := stdout.String()
	assert.Equal(t, 2, strings.Count(out, "\n"), "one matching line per file, got:\n%s", out)
	assert.Contains(t, out, ":2:1: abc\n")
	assert.Contains(t, out, ":1:1: ababc\n")
}

func TestExecutePatternError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"*abc"}, strings.NewReader(""), &stdout, &stderr)

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "bad syntax")
	assert.Empty(t, stdout.String())
}

func TestExecuteMissingFileStillReportsOthers(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempFile(t, dir, "ok.txt", "xabcx\n")

	var stdout, stderr bytes.Buffer
	code := Execute([]string{".*abc", filepath.Join(dir, "missing.txt"), f1}, strings.NewReader(""), &stdout, &stderr)

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stdout.String(), "abc")
	assert.NotEmpty(t, stderr.String())
}

func TestExecuteStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{".*abc"}, strings.NewReader("xxabcxx\n"), &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "<stdin>")
	assert.Contains(t, stdout.String(), "abc")
}

func TestExecuteDumpAndTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--dump", "--trace", "a*bc"}, strings.NewReader("aabc\n"), &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stderr.String(), "DUMP:")
	assert.Contains(t, stderr.String(), "TRACE:")
	assert.Contains(t, stdout.String(), "aabc")
}

func TestExecuteAnchorEnd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--anchor-end", ".*end"}, strings.NewReader("does it ever end\n"), &stdout, &stderr)
	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "does it ever end")
}

func TestExecuteTeeFansOutToFile(t *testing.T) {
	dir := t.TempDir()
	teePath := filepath.Join(dir, "tee.txt")

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--tee", teePath, ".*abc"}, strings.NewReader("xxabcxx\n"), &stdout, &stderr)

	assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	teed, err := os.ReadFile(teePath)
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(teed))
	assert.Contains(t, stdout.String(), "abc")
}
