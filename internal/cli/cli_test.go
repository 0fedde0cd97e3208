package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		expectExit bool
		expectCode int
	}{
		{name: "no arguments prints usage", args: nil, expectExit: true},
		{name: "help flag", args: []string{"-h"}, expectExit: true},
		{name: "bad start", args: []string{"--start", "soon", "--end", "2024-01-01"}, expectCode: 2},
		{name: "bad log level", args: []string{"--start", "2024-01-01", "--end", "2024-01-02", "--log-level", "loud"}, expectCode: 2},
		{name: "bad log format", args: []string{"--start", "2024-01-01", "--end", "2024-01-02", "--log-format", "xml"}, expectCode: 2},
		{name: "bad report format", args: []string{"--start", "2024-01-01", "--end", "2024-01-02", "--format", "csv"}, expectCode: 2},
		{name: "end before start", args: []string{"--start", "2024-01-02", "--end", "2024-01-01"}, expectCode: 2},
		{name: "unknown flag", args: []string{"--nope"}, expectCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out)
			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, exit)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseValid(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-c", "settings.hcl",
		"--start", "2024-01-01T05",
		"--end", "2024-01-02T00:00:00Z",
		"--format", "YAML",
		"--workers", "3",
		"--log-level", "DEBUG",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "settings.hcl", cfg.SettingsPath)
	assert.Equal(t, time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC), cfg.Start)
	assert.True(t, cfg.End.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseTime(t *testing.T) {
	for _, s := range []string{"2024-03-01", "2024-03-01T00", "2024-03-01T00:00Z", "2024-03-01T00:00:00Z"} {
		got, err := ParseTime(s)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), s)
	}
	_, err := ParseTime("03/01/2024")
	require.Error(t, err)
}
