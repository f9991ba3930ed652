package reader

import "unicode"

// Token is a maximal run of non-whitespace characters. Start and End are
// half-open rune offsets into the source text.
type Token struct {
	Value string
	Start int
	End   int
}

// Tokenize splits text into whitespace-delimited tokens, recording the rune
// offsets of each one. It never produces an empty token.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	byteStart := 0
	pos := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Value: text[byteStart:i], Start: start, End: pos})
				start = -1
			}
		} else if start < 0 {
			start = pos
			byteStart = i
		}
		pos++
	}
	if start >= 0 {
		tokens = append(tokens, Token{Value: text[byteStart:], Start: start, End: pos})
	}
	return tokens
}

// IndexAtOffset returns the index of the token containing offset, the next
// token when offset falls in a whitespace gap, or the last token when offset
// lies beyond every token. It returns 0 for an empty token list.
func IndexAtOffset(tokens []Token, offset int) int {
	for i, t := range tokens {
		if offset < t.End {
			return i
		}
	}
	if len(tokens) == 0 {
		return 0
	}
	return len(tokens) - 1
}
