package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmpDir)
	assert.Equal(t, filepath.Join(tmpDir, "rsvp"), Dir())
	assert.Equal(t, filepath.Join(tmpDir, "rsvp", "rsvp.log"), LogPath())
}

func TestStateStore(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	store, err := NewStateStore()
	require.NoError(t, err)

	_, ok := store.Preferences()
	assert.False(t, ok, "fresh store has no preferences")

	want := Preferences{WPM: 420, SmartPauses: true}
	require.NoError(t, store.Save(want))

	got, ok := store.Preferences()
	require.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear())
	_, ok = store.Preferences()
	assert.False(t, ok)
	require.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestStateStorePersistence(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	store1, err := NewStateStore()
	require.NoError(t, err)
	require.NoError(t, store1.Save(Preferences{WPM: 510, PairShortWords: true}))

	data, err := os.ReadFile(store1.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "wpm = 510")

	store2, err := NewStateStore()
	require.NoError(t, err)
	got, ok := store2.Preferences()
	require.True(t, ok)
	assert.Equal(t, Preferences{WPM: 510, PairShortWords: true}, got)
}

func TestStateStoreCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmpDir)
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "rsvp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "rsvp", "preferences.toml"), []byte("wpm = = ="), 0644))

	store, err := NewStateStore()
	require.NoError(t, err)
	_, ok := store.Preferences()
	assert.False(t, ok)
}
