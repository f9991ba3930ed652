package book

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/metcalfc/rsvp/internal/reader"
)

// MarkdownFormat implements Format for Markdown files. Every header starts a
// new chapter.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

func (f *MarkdownFormat) Open(filename string) (reader.Book, error) {
	file, err := os.Open(filename)
	if err != nil {
		return reader.Book{}, err
	}
	defer file.Close()
	return ParseMarkdown(file, titleFromPath(filename))
}

// headerRegex matches markdown headers (# to ######)
var headerRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ParseMarkdown splits r into chapters at each header. Text before the first
// header becomes a chapter named after the document.
func ParseMarkdown(r io.Reader, title string) (reader.Book, error) {
	b := reader.Book{Title: title}
	current := reader.Chapter{Title: title}
	var text strings.Builder

	flush := func() {
		current.Text = strings.TrimSpace(text.String())
		if current.Text != "" {
			b.Chapters = append(b.Chapters, current)
		}
		text.Reset()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if match := headerRegex.FindStringSubmatch(line); match != nil {
			flush()
			heading := strings.TrimSpace(match[2])
			current = reader.Chapter{Title: heading}
			line = heading
		}
		text.WriteString(line)
		text.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return reader.Book{}, err
	}
	flush()

	if len(b.Chapters) == 0 {
		return reader.Book{}, ErrNoChapters
	}
	return b, nil
}
