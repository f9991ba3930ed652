package book

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/taylorskalyo/goreader/epub"
)

// ErrNoRootfile is returned for EPUB containers without a package document.
var ErrNoRootfile = errors.New("no rootfiles found in epub")

// EPUBFormat implements Format for EPUB files.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

// Open reads the spine of an EPUB in order, producing one chapter per
// readable (X)HTML item.
func (f *EPUBFormat) Open(filename string) (reader.Book, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return reader.Book{}, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return reader.Book{}, ErrNoRootfile
	}
	rf := rc.Rootfiles[0]

	b := reader.Book{
		Title:  strings.TrimSpace(rf.Metadata.Title),
		Author: strings.TrimSpace(rf.Metadata.Creator),
	}
	if b.Title == "" {
		b.Title = titleFromPath(filename)
	}

	tocByHref := buildTOCHrefMap(filename, rf)

	for _, ref := range rf.Spine.Itemrefs {
		if ref.Item == nil || !isHTMLItem(ref.Item.MediaType, ref.Item.HREF) {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}

		doc := parseXHTML(string(data))
		if doc.text == "" {
			continue
		}
		b.Chapters = append(b.Chapters, reader.Chapter{
			Title: chapterTitle(tocByHref, ref.Item.HREF, doc.title, len(b.Chapters)+1),
			Text:  doc.text,
		})
	}

	if len(b.Chapters) == 0 {
		return reader.Book{}, ErrNoChapters
	}
	return b, nil
}

func isHTMLItem(mediaType, href string) bool {
	if strings.Contains(mediaType, "application/xhtml+xml") || strings.Contains(mediaType, "text/html") {
		return true
	}
	switch strings.ToLower(path.Ext(href)) {
	case ".xhtml", ".html", ".htm":
		return true
	}
	return false
}

// chapterTitle prefers the NCX label, then the document's own title.
func chapterTitle(tocByHref map[string]string, href, docTitle string, n int) string {
	if href != "" {
		if t, ok := tocByHref[href]; ok && t != "" {
			return t
		}
		if t, ok := tocByHref[path.Base(href)]; ok && t != "" {
			return t
		}
	}
	if docTitle != "" {
		return docTitle
	}
	return fmt.Sprintf("Chapter %d", n)
}
