package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBare(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"hello,", "hello"},
		{`"Hello!"`, "Hello"},
		{"(see)", "see"},
		{"['quoted']", "quoted"},
		{"...", ""},
		{`"`, ""},
		{"don't", "don't"},
		{"end.)", "end"},
		{"—", "—"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Bare(tt.in))
		})
	}
}

func TestPunctuationClasses(t *testing.T) {
	tests := []struct {
		in       string
		sentence bool
		clause   bool
		dash     bool
	}{
		{"stop.", true, false, false},
		{"what?", true, false, false},
		{`wow!"`, true, false, false},
		{"(done.)", true, false, false},
		{`odd."'`, false, false, false},
		{"wait,", false, true, false},
		{"list:", false, true, false},
		{"semi;)", false, true, false},
		{"and—", false, false, true},
		{"plain", false, false, false},
		{"", false, false, false},
		{".", true, false, false},
		{")", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.sentence, EndsSentence(tt.in), "EndsSentence")
			assert.Equal(t, tt.clause, EndsClause(tt.in), "EndsClause")
			assert.Equal(t, tt.dash, EndsWithEmDash(tt.in), "EndsWithEmDash")
			assert.Equal(t, tt.sentence || tt.clause, EndsWithPause(tt.in), "EndsWithPause")
		})
	}
}
