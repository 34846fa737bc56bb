package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"./etc/apps"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"./etc/apps"}, cfg.Roots)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.WorkerCount)
	assert.Empty(t, cfg.RunID)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{
		"--profile", "scan.hcl",
		"--run-id", "audit-42",
		"--format", "YAML",
		"--log-format", "text",
		"--log-level", "DEBUG",
		"--workers", "4",
		"--healthcheck-port", "8080",
		"./etc/system", "./etc/apps",
	}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, []string{"./etc/system", "./etc/apps"}, cfg.Roots)
	assert.Equal(t, "scan.hcl", cfg.ProfilePath)
	assert.Equal(t, "audit-42", cfg.RunID)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 8080, cfg.HealthcheckPort)
}

func TestParse_ProfileAloneIsEnough(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"--profile", "scan.hcl"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Empty(t, cfg.Roots)
	assert.Equal(t, "scan.hcl", cfg.ProfilePath)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad format", args: []string{"--format", "xml", "."}, want: "invalid format"},
		{name: "bad log format", args: []string{"--log-format", "pretty", "."}, want: "invalid log-format"},
		{name: "bad log level", args: []string{"--log-level", "verbose", "."}, want: "invalid log-level"},
		{name: "unknown flag", args: []string{"--nope", "."}, want: "flag provided but not defined"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
