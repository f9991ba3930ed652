package reader

import "unicode/utf8"

// ShortWordMax is the longest bare word that may be paired with its
// neighbour.
const ShortWordMax = 2

// DisplayUnit is the text shown for one pacing tick and the number of tokens
// the index moves past once it has been shown.
type DisplayUnit struct {
	Text      string
	AdvanceBy int
}

// IsShortWord reports whether the bare form of s has between 1 and
// ShortWordMax characters.
func IsShortWord(s string) bool {
	n := utf8.RuneCountInString(Bare(s))
	return n > 0 && n <= ShortWordMax
}

// UnitAt resolves the display unit at index i. When pair is set, two short
// tokens are joined unless the first one closes a clause or sentence. It never
// looks more than one token ahead.
func UnitAt(tokens []Token, i int, pair bool) DisplayUnit {
	if len(tokens) == 0 {
		return DisplayUnit{AdvanceBy: 1}
	}
	i = clamp(i, 0, len(tokens)-1)
	cur := tokens[i].Value
	if !pair || i == len(tokens)-1 {
		return DisplayUnit{Text: cur, AdvanceBy: 1}
	}
	next := tokens[i+1].Value
	if IsShortWord(cur) && IsShortWord(next) && !EndsWithPause(cur) {
		return DisplayUnit{Text: cur + " " + next, AdvanceBy: 2}
	}
	return DisplayUnit{Text: cur, AdvanceBy: 1}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
