package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ScansTree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	confPath := filepath.Join(tempDir, "inputs.conf")
	err := os.WriteFile(confPath, []byte("[monitor:///var/log/app.log]\nindex = main\n"), 0o600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, errOut, []string{"--run-id", "t1", tempDir})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Contains(t, out.String(), `"kind":"inputs"`)
	require.Contains(t, out.String(), `"run_id":"t1"`)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text on the diagnostic stream")
	require.Empty(t, out.String(), "the record stream must stay clean")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_FatalParseFailureSetsError(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, "inputs.conf"), []byte("[broken\n"), 0o600)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	runErr := run(out, errOut, []string{tempDir})

	require.Error(t, runErr)
	require.True(t, strings.Contains(runErr.Error(), "failed to parse"), "error should summarize the failed files: %v", runErr)
}
