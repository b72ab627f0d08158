package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumStdinKnownDigest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-D", "MD5"}, strings.NewReader("abc"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72 -\n", stdout.String())
}

func TestSumDefaultsToSHA256(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), " -\n")
}

func TestSumUnknownDigestFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-D", "NOPE"}, strings.NewReader(""), &stdout, &stderr)
	require.NotEqual(t, 0, code)
}

func TestSumMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte(""), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-D", "MD5", pathA, pathB}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72 "+pathA, lines[0])
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e "+pathB, lines[1])
}

func TestSumMissingFileFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.txt")}, strings.NewReader(""), &stdout, &stderr)
	require.NotEqual(t, 0, code)
}
