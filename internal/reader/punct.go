package reader

import (
	"strings"
	"unicode/utf8"
)

// Character classes recognised by the pacing model.
const (
	openers      = `("'[`
	trailers     = `)"'].,;:!?`
	closers      = `"')]`
	sentenceEnds = `.?!`
	clauseMarks  = `,;:`
	emDash       = '—'
)

// Bare strips leading opening brackets and quotes and trailing closing
// brackets, quotes and punctuation from s.
func Bare(s string) string {
	return strings.TrimRight(strings.TrimLeft(s, openers), trailers)
}

// lastTwo returns the final rune of s and the rune before it. Missing runes
// are reported as utf8.RuneError.
func lastTwo(s string) (prev, last rune) {
	last, n := utf8.DecodeLastRuneInString(s)
	if n == 0 {
		return utf8.RuneError, utf8.RuneError
	}
	prev, _ = utf8.DecodeLastRuneInString(s[:len(s)-n])
	return prev, last
}

func isOneOf(r rune, set string) bool {
	return r != utf8.RuneError && strings.ContainsRune(set, r)
}

// endsWithClass reports whether s ends in a rune from set, optionally
// followed by one closing quote or bracket.
func endsWithClass(s, set string) bool {
	prev, last := lastTwo(s)
	if isOneOf(last, set) {
		return true
	}
	return isOneOf(last, closers) && isOneOf(prev, set)
}

// EndsSentence reports whether s ends in . ? or ! with at most one closing
// quote or bracket after it.
func EndsSentence(s string) bool {
	return endsWithClass(s, sentenceEnds)
}

// EndsClause reports whether s ends in , ; or : with at most one closing
// quote or bracket after it.
func EndsClause(s string) bool {
	return endsWithClass(s, clauseMarks)
}

// EndsWithEmDash reports whether the last rune of s is an em-dash.
func EndsWithEmDash(s string) bool {
	_, last := lastTwo(s)
	return last == emDash
}

// EndsWithPause reports whether s ends at a clause or sentence boundary.
func EndsWithPause(s string) bool {
	return EndsSentence(s) || EndsClause(s)
}
