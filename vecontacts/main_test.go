package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VECONTACTS_CONFIG", "")

	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd, opts := parse(t)

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Panel.SeedCount)
	assert.True(t, cfg.Animation.Enabled)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cmd, opts := parse(t, "--no-animations", "--seed-count", "2", "--log-file", "/tmp/vecontacts.log")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.False(t, cfg.Animation.Enabled)
	assert.Equal(t, 2, cfg.Panel.SeedCount)
	assert.Equal(t, "/tmp/vecontacts.log", cfg.Log.File)
}

func TestLoadConfigZeroSeedCountFlag(t *testing.T) {
	cmd, opts := parse(t, "--seed-count=0")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Panel.SeedCount)
}

func TestLoadConfigRejectsNegativeSeedCount(t *testing.T) {
	cmd, opts := parse(t, "--seed-count=-1")

	_, err := loadConfig(cmd, opts)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cmd, opts := parse(t, "--config", "/nonexistent/vecontacts.toml")

	_, err := loadConfig(cmd, opts)
	assert.ErrorContains(t, err, "failed to load config")
}
