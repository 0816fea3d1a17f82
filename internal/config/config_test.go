package config

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddFlags(cmd)
	cmd.SetArgs(args)
	return cmd
}

func resolveWith(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	cmd := newCmd(args...)
	require.NoError(t, cmd.Execute())
	return Resolve(cmd)
}

func TestResolve_Defaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvScheme, "")
	t.Setenv(EnvVerbose, "")

	cfg, err := resolveWith(t)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolve_EnvOverridesDefault(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvScheme, "pink")
	t.Setenv(EnvVerbose, "true")

	cfg, err := resolveWith(t)
	require.NoError(t, err)
	assert.Equal(t, Config{Seed: 42, Scheme: "pink", Verbose: true}, cfg)
}

func TestResolve_FlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvScheme, "pink")
	t.Setenv(EnvVerbose, "true")

	cfg, err := resolveWith(t, "--seed", "7", "--scheme", "blue", "--verbose=false")
	require.NoError(t, err)
	assert.Equal(t, Config{Seed: 7, Scheme: "blue", Verbose: false}, cfg)
}

func TestResolve_Invalid(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvScheme, "")

	_, err := resolveWith(t, "--scheme", "green")
	assert.ErrorContains(t, err, `unknown colour scheme: "green"`)

	t.Setenv(EnvSeed, "abc")
	_, err = resolveWith(t)
	assert.ErrorContains(t, err, EnvSeed)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=1")
}
