package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook() Book {
	return Book{
		Title:  "Sample",
		Author: "Anon",
		Chapters: []Chapter{
			{Title: "One", Text: "First chapter text."},
			{Title: "Two", Text: "Second chapter here."},
			{Title: "Three", Text: "Third and last."},
		},
	}
}

func TestChapterCursor(t *testing.T) {
	s := NewSession()
	i, n := s.ChapterPosition()
	assert.Equal(t, -1, i)
	assert.Equal(t, 0, n)
	assert.False(t, s.HasPrevChapter())
	assert.False(t, s.HasNextChapter())
	assert.False(t, s.NextChapter())

	s.LoadBook(testBook())
	i, n = s.ChapterPosition()
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, n)
	assert.Equal(t, "One", s.ChapterTitle())
	assert.False(t, s.HasPrevChapter())
	assert.True(t, s.HasNextChapter())
	assert.Equal(t, "First", s.Frame().Text())

	s.JumpTo(2)
	require.True(t, s.NextChapter())
	assert.Equal(t, 0, s.Index(), "loading a chapter resets the index")
	assert.Equal(t, "Second", s.Frame().Text())

	require.True(t, s.NextChapter())
	assert.False(t, s.HasNextChapter())
	assert.False(t, s.NextChapter())
	assert.Equal(t, "Three", s.ChapterTitle())

	require.True(t, s.PrevChapter())
	assert.Equal(t, "Two", s.ChapterTitle())
	assert.False(t, s.LoadChapter(7))
	assert.False(t, s.LoadChapter(-1))
}

func TestLoadChapterStopsPlayback(t *testing.T) {
	clock := NewManualClock()
	s := NewSession(WithClock(clock))
	s.LoadBook(testBook())
	s.Engage()
	require.True(t, s.Held())

	s.NextChapter()
	assert.False(t, s.Held())
	assert.Equal(t, 0, clock.Pending())
}

func TestLoadEmptyBook(t *testing.T) {
	s := NewSession()
	s.LoadText("leftover text", 0)
	s.LoadBook(Book{Title: "Empty"})
	assert.Empty(t, s.Tokens())
	i, n := s.ChapterPosition()
	assert.Equal(t, -1, i)
	assert.Equal(t, 0, n)
}

func TestReloadBookKeepsChapterAndCursor(t *testing.T) {
	clock := NewManualClock()
	s := NewSession(WithClock(clock))
	s.LoadBook(testBook())
	require.True(t, s.NextChapter())
	s.Engage()

	b := testBook()
	b.Chapters[1].Text = "Second chapter was edited here."
	s.ReloadBook(b, 15)

	assert.False(t, s.Held())
	assert.Zero(t, clock.Pending())
	assert.Equal(t, "Two", s.ChapterTitle())
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, "was", s.Tokens()[s.Index()].Value)

	s.ReloadBook(Book{Title: "Short", Chapters: []Chapter{{Title: "Only", Text: "Just one."}}}, 0)
	i, n := s.ChapterPosition()
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, n)

	s.ReloadBook(Book{}, 0)
	i, _ = s.ChapterPosition()
	assert.Equal(t, -1, i)
	assert.Empty(t, s.Tokens())
}
