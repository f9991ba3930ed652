package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokensOf(words ...string) []Token {
	var toks []Token
	pos := 0
	for _, w := range words {
		n := len([]rune(w))
		toks = append(toks, Token{Value: w, Start: pos, End: pos + n})
		pos += n + 1
	}
	return toks
}

func TestUnitAt(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		index int
		pair  bool
		want  DisplayUnit
	}{
		{"pairs two short words", []string{"of", "a", "great"}, 0, true, DisplayUnit{"of a", 2}},
		{"long word stands alone", []string{"of", "a", "great"}, 2, true, DisplayUnit{"great", 1}},
		{"short then long", []string{"a", "great"}, 0, true, DisplayUnit{"a", 1}},
		{"pairing disabled", []string{"of", "a", "great"}, 0, false, DisplayUnit{"of", 1}},
		{"pause punctuation blocks pairing", []string{"yes.", "ok"}, 0, true, DisplayUnit{"yes.", 1}},
		{"comma blocks pairing", []string{"so,", "we"}, 0, true, DisplayUnit{"so,", 1}},
		{"quoted comma blocks pairing", []string{`no,"`, "he"}, 0, true, DisplayUnit{`no,"`, 1}},
		{"quotes are stripped before measuring", []string{`"I`, "am"}, 0, true, DisplayUnit{`"I am`, 2}},
		{"punctuation only is not short", []string{`"'`, "a"}, 0, true, DisplayUnit{`"'`, 1}},
		{"last token never pairs", []string{"to", "be"}, 1, true, DisplayUnit{"be", 1}},
		{"index clamped", []string{"to", "be"}, 9, true, DisplayUnit{"be", 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnitAt(tokensOf(tt.words...), tt.index, tt.pair))
		})
	}
}

func TestUnitAtEmpty(t *testing.T) {
	assert.Equal(t, DisplayUnit{AdvanceBy: 1}, UnitAt(nil, 0, true))
}

func TestIsShortWord(t *testing.T) {
	assert.True(t, IsShortWord("a"))
	assert.True(t, IsShortWord("(it)"))
	assert.False(t, IsShortWord("the"))
	assert.False(t, IsShortWord("..."))
}
