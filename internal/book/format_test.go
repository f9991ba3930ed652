package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("plain text", func(t *testing.T) {
		content := "Hello world this is a test."
		path := filepath.Join(tmpDir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		b, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, "notes", b.Title)
		require.Len(t, b.Chapters, 1)
		assert.Equal(t, content, b.Chapters[0].Text)
	})

	t.Run("markdown by extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "guide.MD")
		require.NoError(t, os.WriteFile(path, []byte("# One\nfirst\n# Two\nsecond\n"), 0644))

		b, err := Open(path)
		require.NoError(t, err)
		assert.Len(t, b.Chapters, 2)
	})

	t.Run("blank file rejected", func(t *testing.T) {
		path := filepath.Join(tmpDir, "blank.txt")
		require.NoError(t, os.WriteFile(path, []byte(" \n\t"), 0644))

		_, err := Open(path)
		assert.ErrorIs(t, err, ErrNoChapters)
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := Open(filepath.Join(tmpDir, "nonexistent.txt"))
		assert.Error(t, err)
	})
}

func TestFromText(t *testing.T) {
	b, err := FromText("stdin", "some words")
	require.NoError(t, err)
	assert.Equal(t, "stdin", b.Title)
	assert.Equal(t, "stdin", b.Chapters[0].Title)

	_, err = FromText("stdin", "   ")
	assert.ErrorIs(t, err, ErrNoChapters)
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Contains(t, formats, "EPUB (.epub)")
	assert.Contains(t, formats, "Markdown (.md, .markdown)")
}
