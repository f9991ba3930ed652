package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	manifest := `[
		{"file": "sherlock.epub", "title": "  The Adventures of Sherlock Holmes "},
		{"file": "untitled.epub"},
		{"title": "missing file"},
		{"file": 42},
		"junk",
		null
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0644))

	entries, err := LoadLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Title: "The Adventures of Sherlock Holmes", Path: filepath.Join(dir, "sherlock.epub")},
		{Title: "untitled.epub", Path: filepath.Join(dir, "untitled.epub")},
	}, entries)
}

func TestLoadLibraryErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadLibrary(dir)
	assert.Error(t, err, "missing index")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(`[]`), 0644))
	_, err = LoadLibrary(dir)
	assert.ErrorIs(t, err, ErrEmptyManifest)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(`{"file": "x"}`), 0644))
	_, err = LoadLibrary(dir)
	assert.Error(t, err, "manifest must be an array")
}
