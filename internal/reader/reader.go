// Package reader provides core RSVP (Rapid Serial Visual Presentation) speed reading logic.
package reader

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Session owns one document and its playback state. It is not safe for
// concurrent use: every method, and every Clock callback, must run on the
// same logical thread.
type Session struct {
	text           string
	tokens         []Token
	sentenceStarts []int
	textLen        int
	index          int

	held   bool
	timer  Timer
	gen    uint64
	reason StopReason

	cfg Configuration

	book    *Book
	chapter int

	clock    Clock
	renderer Renderer
	cursor   Cursor
	log      zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to arm playback timers.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRenderer sets the renderer notified after each state change.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithCursor sets the external cursor moved on release.
func WithCursor(c Cursor) Option {
	return func(s *Session) { s.cursor = c }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithConfiguration sets the initial pacing options.
func WithConfiguration(c Configuration) Option {
	return func(s *Session) { s.cfg = c.Normalize() }
}

// NewSession creates an empty, paused session. Without WithClock it uses a
// ManualClock, which only fires when advanced explicitly.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cfg:     DefaultConfiguration(),
		chapter: -1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewManualClock()
	}
	return s
}

// FindSentenceStarts returns indices of tokens that start sentences.
func FindSentenceStarts(tokens []Token) []int {
	starts := []int{0}
	for i, t := range tokens {
		if EndsSentence(t.Value) && i+1 < len(tokens) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LoadText stops playback, rebuilds the document from text and positions the
// index at the token under cursor.
func (s *Session) LoadText(text string, cursor int) {
	s.halt()
	s.text = text
	s.tokens = Tokenize(text)
	s.sentenceStarts = FindSentenceStarts(s.tokens)
	s.textLen = utf8.RuneCountInString(text)
	s.index = IndexAtOffset(s.tokens, cursor)
	s.log.Debug().Int("tokens", len(s.tokens)).Int("cursor", cursor).Int("index", s.index).Msg("load text")
	s.render()
}

// Text returns the source text of the current document.
func (s *Session) Text() string {
	return s.text
}

// Tokens returns the current document.
func (s *Session) Tokens() []Token {
	return s.tokens
}

// Index returns the zero-based current token index.
func (s *Session) Index() int {
	return s.index
}

// Configuration returns the active pacing options.
func (s *Session) Configuration() Configuration {
	return s.cfg
}

// SetConfiguration replaces the pacing options. A pending timer keeps its
// duration; the next one is computed from the new values.
func (s *Session) SetConfiguration(c Configuration) {
	s.cfg = c.Normalize()
	s.render()
}

// AdjustWPM stops playback and changes the rate by delta, clamped to the
// allowed range.
func (s *Session) AdjustWPM(delta int) {
	s.halt()
	c := s.cfg
	c.WPM = clamp(c.WPM+delta, MinWPM, MaxWPM)
	s.SetConfiguration(c)
}

// CurrentUnit returns the display unit at the current index.
func (s *Session) CurrentUnit() DisplayUnit {
	return UnitAt(s.tokens, s.index, s.cfg.PairShortWords)
}

// CurrentToken returns the token at the current index.
func (s *Session) CurrentToken() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[s.index], true
}

// Progress returns the one-based position and total token count.
func (s *Session) Progress() (current, total int) {
	if len(s.tokens) == 0 {
		return 0, 0
	}
	return s.index + 1, len(s.tokens)
}

// AtEnd returns true if the reader is at the last token.
func (s *Session) AtEnd() bool {
	return s.index >= s.last()
}

func (s *Session) last() int {
	return max(0, len(s.tokens)-1)
}

// StepForward stops playback and moves past the current unit.
func (s *Session) StepForward() {
	if len(s.tokens) == 0 {
		return
	}
	s.halt()
	s.index = min(s.last(), s.index+s.CurrentUnit().AdvanceBy)
	s.render()
}

// StepBack stops playback and moves back exactly one token, whatever the
// size of the unit just shown.
func (s *Session) StepBack() {
	s.Rewind(1)
}

// Rewind stops playback and moves back n tokens, stopping at the first.
func (s *Session) Rewind(n int) {
	if len(s.tokens) == 0 {
		return
	}
	s.halt()
	s.index = max(0, s.index-max(0, n))
	s.render()
}

// JumpTo stops playback and moves to token i, clamped to the document.
func (s *Session) JumpTo(i int) {
	if len(s.tokens) == 0 {
		return
	}
	s.halt()
	s.index = clamp(i, 0, s.last())
	s.render()
}

// Restart moves back to the first token.
func (s *Session) Restart() {
	s.JumpTo(0)
}

// JumpToPrevSentence moves to the start of the previous sentence.
func (s *Session) JumpToPrevSentence() {
	for i := len(s.sentenceStarts) - 1; i >= 0; i-- {
		if s.sentenceStarts[i] < s.index {
			s.JumpTo(s.sentenceStarts[i])
			return
		}
	}
	s.JumpTo(0)
}

// JumpToNextSentence moves to the start of the next sentence.
func (s *Session) JumpToNextSentence() {
	for _, start := range s.sentenceStarts {
		if start > s.index {
			s.JumpTo(start)
			return
		}
	}
	s.JumpTo(s.last())
}

// Frame returns the render contract for the current state.
func (s *Session) Frame() Frame {
	f := Frame{Held: s.held, Reason: s.reason}
	if len(s.tokens) == 0 {
		return f
	}
	f.Prefix, f.Anchor, f.Suffix = SplitAtAnchor(s.CurrentUnit().Text)
	f.Index, f.Total = s.Progress()
	return f
}

func (s *Session) render() {
	if s.renderer != nil {
		s.renderer.Render(s.Frame())
	}
}
