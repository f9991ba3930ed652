package reader

import (
	"strings"
	"unicode/utf8"
)

// ORPOffset returns the fixation offset inside a bare word of the given
// length.
func ORPOffset(length int) int {
	switch {
	case length <= 1:
		return 0
	case length <= 5:
		return 1
	case length <= 9:
		return 2
	case length <= 13:
		return 3
	}
	return 4
}

// AnchorIndex returns the rune index of the highlighted character in text.
// Bundled units are measured as a whole, joining space included.
func AnchorIndex(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	bare := Bare(text)
	bareStart := utf8.RuneCountInString(text[:strings.Index(text, bare)])
	return clamp(bareStart+ORPOffset(utf8.RuneCountInString(bare)), 0, n-1)
}

// SplitAtAnchor splits text around its anchor rune. The three parts always
// concatenate back to text; anchor is empty only when text is.
func SplitAtAnchor(text string) (prefix, anchor, suffix string) {
	if text == "" {
		return "", "", ""
	}
	runes := []rune(text)
	i := AnchorIndex(text)
	return string(runes[:i]), string(runes[i]), string(runes[i+1:])
}
