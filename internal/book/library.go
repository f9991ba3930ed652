package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the library index file looked up inside a books directory.
const ManifestName = "index.json"

// ErrEmptyManifest is returned when a library index lists no books.
var ErrEmptyManifest = errors.New("no books in library index")

// Entry is one book listed in a library index.
type Entry struct {
	Title string
	Path  string
}

type manifestItem struct {
	File  any `json:"file"`
	Title any `json:"title"`
}

// LoadLibrary reads dir/index.json, a JSON array of {"file", "title"}
// objects. Items without a string file are skipped and a blank title falls
// back to the file name. Paths are resolved against dir.
func LoadLibrary(dir string) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("read library index: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse library index: %w", err)
	}

	var entries []Entry
	for _, r := range raw {
		var item manifestItem
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		file, ok := item.File.(string)
		if !ok || file == "" {
			continue
		}
		title, _ := item.Title.(string)
		title = strings.TrimSpace(title)
		if title == "" {
			title = file
		}
		entries = append(entries, Entry{Title: title, Path: filepath.Join(dir, file)})
	}
	if len(entries) == 0 {
		return nil, ErrEmptyManifest
	}
	return entries, nil
}
