// Package book turns files on disk into reader.Book values: a title, an
// author and an ordered list of plain-text chapters.
package book

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/metcalfc/rsvp/internal/reader"
)

// ErrNoChapters is returned when a source contains no readable text.
var ErrNoChapters = errors.New("no readable chapters")

// Format defines a file format that can be opened as a book.
type Format interface {
	Name() string
	Extensions() []string
	Open(filename string) (reader.Book, error)
}

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Open loads filename using a registered format, falling back to plain text.
func Open(filename string) (reader.Book, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f.Open(filename)
			}
		}
	}
	return openPlain(filename)
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

// FromText wraps text as a single-chapter book. Blank text is rejected.
func FromText(title, text string) (reader.Book, error) {
	if strings.TrimSpace(text) == "" {
		return reader.Book{}, ErrNoChapters
	}
	return reader.Book{
		Title:    title,
		Chapters: []reader.Chapter{{Title: title, Text: text}},
	}, nil
}

func openPlain(filename string) (reader.Book, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return reader.Book{}, err
	}
	return FromText(titleFromPath(filename), string(data))
}

func titleFromPath(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
