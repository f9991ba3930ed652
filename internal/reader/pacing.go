package reader

import (
	"time"
	"unicode/utf8"
)

// Timing adjustments applied when smart pauses are enabled.
const (
	SentencePause     = 220 * time.Millisecond
	ClausePause       = 120 * time.Millisecond
	LongWordBonus     = 120 * time.Millisecond
	MediumWordBonus   = 70 * time.Millisecond
	LongWordLength    = 12
	MediumWordLength  = 9
	millisecondsInMin = 60000.0
)

// BaseDelay is the time one unit stays visible at wpm before any smart
// adjustment. Non-positive rates are treated as 1 WPM.
func BaseDelay(wpm int) time.Duration {
	return time.Duration(millisecondsInMin / float64(max(1, wpm)) * float64(time.Millisecond))
}

// PunctuationPause is the extra delay for text ending a sentence or clause.
func PunctuationPause(text string) time.Duration {
	switch {
	case EndsSentence(text):
		return SentencePause
	case EndsClause(text), EndsWithEmDash(text):
		return ClausePause
	}
	return 0
}

// LengthBonus is the extra delay for long bare words.
func LengthBonus(text string) time.Duration {
	n := utf8.RuneCountInString(Bare(text))
	switch {
	case n >= LongWordLength:
		return LongWordBonus
	case n >= MediumWordLength:
		return MediumWordBonus
	}
	return 0
}

// UnitDuration computes how long text stays on screen under cfg. The
// configuration is read on every call.
func UnitDuration(text string, cfg Configuration) time.Duration {
	d := BaseDelay(cfg.WPM)
	if !cfg.SmartPauses {
		return d
	}
	return d + PunctuationPause(text) + LengthBonus(text)
}
