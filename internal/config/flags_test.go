package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := ParseFlags(NewFlagSet("test"), nil)
	require.NoError(t, err)

	assert.Nil(t, opts.User)
	assert.Nil(t, opts.Password)
	assert.Nil(t, opts.URL)
	assert.Equal(t, DefaultConfigFile, opts.ConfigPath)
	assert.Equal(t, DefaultPrerequisitesFile, opts.PrerequisitesPath)
	assert.Zero(t, opts.Settings.RequestTimeout)
	assert.Empty(t, opts.Settings.LogLevel)
}

func TestParseFlags_AllFlags(t *testing.T) {
	argv := []string{
		"--to-user=admin",
		"--to-password", "secret",
		"--to-url=https://to.example.test/api/4.1",
		"--config=/etc/to/to_data.json",
		"--prerequisites", "/etc/to/prerequisite_data.json",
		"--request-timeout=45s",
		"--log-level=debug",
	}

	opts, err := ParseFlags(NewFlagSet("test"), argv)
	require.NoError(t, err)

	require.NotNil(t, opts.User)
	assert.Equal(t, "admin", *opts.User)
	require.NotNil(t, opts.Password)
	assert.Equal(t, "secret", *opts.Password)
	require.NotNil(t, opts.URL)
	assert.Equal(t, "https://to.example.test/api/4.1", *opts.URL)
	assert.Equal(t, "/etc/to/to_data.json", opts.ConfigPath)
	assert.Equal(t, "/etc/to/prerequisite_data.json", opts.PrerequisitesPath)
	assert.Equal(t, 45*time.Second, opts.Settings.RequestTimeout)
	assert.Equal(t, "debug", opts.Settings.LogLevel)
}

// TestParseFlags_EmptyValueIsGiven verifies that "--to-user=" is reported as
// given-but-empty rather than not given.
func TestParseFlags_EmptyValueIsGiven(t *testing.T) {
	opts, err := ParseFlags(NewFlagSet("test"), []string{"--to-user="})
	require.NoError(t, err)

	require.NotNil(t, opts.User)
	assert.Empty(t, *opts.User)
	assert.Nil(t, opts.Password)
}

func TestParseFlags_DisableConfigFile(t *testing.T) {
	opts, err := ParseFlags(NewFlagSet("test"), []string{"--config="})
	require.NoError(t, err)
	assert.Empty(t, opts.ConfigPath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{name: "unknown flag", argv: []string{"--to-host=x"}},
		{name: "bad duration", argv: []string{"--request-timeout=soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFlagSet("test")
			fs.SetOutput(nopWriter{})

			_, err := ParseFlags(fs, tt.argv)
			require.Error(t, err)
		})
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
