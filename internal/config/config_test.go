package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/metcalfc/rsvp/internal/state"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load(flags(t), "", nil)
	require.NoError(t, err)

	assert.Equal(t, 350, c.WPM)
	assert.True(t, c.SmartPauses)
	assert.True(t, c.PairShortWords)
	assert.Equal(t, 600*time.Millisecond, c.HoldGrace)
	assert.False(t, c.Debug)
	assert.Empty(t, c.LogFile)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rsvp"), 0755))
	require.NoError(t, os.WriteFile(DefaultFile(), []byte("wpm = 500\nsmart_pauses = false\nhold_grace = \"400ms\"\n"), 0644))

	prefs := &state.Preferences{WPM: 420, SmartPauses: true, PairShortWords: false}

	c, err := Load(flags(t), "", prefs)
	require.NoError(t, err)
	assert.Equal(t, 500, c.WPM, "config file beats saved preferences")
	assert.False(t, c.SmartPauses)
	assert.False(t, c.PairShortWords, "saved preference beats built-in default")
	assert.Equal(t, 400*time.Millisecond, c.HoldGrace)

	t.Setenv("RSVP_WPM", "610")
	c, err = Load(flags(t), "", prefs)
	require.NoError(t, err)
	assert.Equal(t, 610, c.WPM, "environment beats config file")

	c, err = Load(flags(t, "-w", "700", "--pair-short-words", "--debug"), "", prefs)
	require.NoError(t, err)
	assert.Equal(t, 700, c.WPM, "flag beats environment")
	assert.True(t, c.PairShortWords)
	assert.True(t, c.Debug)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	isolate(t)
	_, err := Load(flags(t), filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.Error(t, err)
}

func TestPacingNormalizes(t *testing.T) {
	c := Config{WPM: 5000, SmartPauses: true}
	assert.Equal(t, 900, c.Pacing().WPM)
	assert.Equal(t, state.Preferences{WPM: 900, SmartPauses: true}, c.Preferences())
}
