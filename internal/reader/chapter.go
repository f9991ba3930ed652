package reader

// Chapter is one readable section of a book.
type Chapter struct {
	Title string
	Text  string
}

// Book is an ordered list of chapters handed over by an ingestion collaborator.
type Book struct {
	Title    string
	Author   string
	Chapters []Chapter
}

// LoadBook replaces the document with the first chapter of b.
func (s *Session) LoadBook(b Book) {
	s.book = &b
	s.chapter = -1
	if !s.LoadChapter(0) {
		s.LoadText("", 0)
	}
}

// ReloadBook replaces the book after its source changed, keeping the current
// chapter when it still exists and positioning at the token under cursor.
func (s *Session) ReloadBook(b Book, cursor int) {
	s.halt()
	s.book = &b
	if len(b.Chapters) == 0 {
		s.chapter = -1
		s.LoadText("", 0)
		return
	}
	s.chapter = clamp(s.chapter, 0, len(b.Chapters)-1)
	s.log.Debug().Int("chapter", s.chapter).Int("cursor", cursor).Msg("reload book")
	s.LoadText(b.Chapters[s.chapter].Text+"\n", cursor)
}

// Book returns the loaded book, or nil when the session reads plain text.
func (s *Session) Book() *Book {
	return s.book
}

// LoadChapter stops playback and replaces the text buffer with chapter i,
// positioning at its first token. It reports false if i is out of range.
func (s *Session) LoadChapter(i int) bool {
	if s.book == nil || i < 0 || i >= len(s.book.Chapters) {
		return false
	}
	s.halt()
	s.chapter = i
	s.log.Debug().Int("chapter", i).Str("title", s.book.Chapters[i].Title).Msg("load chapter")
	s.LoadText(s.book.Chapters[i].Text+"\n", 0)
	return true
}

// HasPrevChapter reports whether a chapter precedes the current one.
func (s *Session) HasPrevChapter() bool {
	return s.book != nil && s.chapter > 0
}

// HasNextChapter reports whether a chapter follows the current one.
func (s *Session) HasNextChapter() bool {
	return s.book != nil && s.chapter >= 0 && s.chapter < len(s.book.Chapters)-1
}

// PrevChapter loads the previous chapter if there is one.
func (s *Session) PrevChapter() bool {
	if !s.HasPrevChapter() {
		return false
	}
	return s.LoadChapter(s.chapter - 1)
}

// NextChapter loads the next chapter if there is one.
func (s *Session) NextChapter() bool {
	if !s.HasNextChapter() {
		return false
	}
	return s.LoadChapter(s.chapter + 1)
}

// ChapterPosition returns the zero-based chapter index and chapter count, or
// (-1, 0) when no book is loaded.
func (s *Session) ChapterPosition() (index, count int) {
	if s.book == nil {
		return -1, 0
	}
	return s.chapter, len(s.book.Chapters)
}

// ChapterTitle returns the title of the current chapter.
func (s *Session) ChapterTitle() string {
	if s.book == nil || s.chapter < 0 || s.chapter >= len(s.book.Chapters) {
		return ""
	}
	return s.book.Chapters[s.chapter].Title
}
