package reader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	cfg := Configuration{WPM: 600, SmartPauses: true, PairShortWords: true}
	units, total := Plan(Tokenize("of a great day."), cfg)

	require.Len(t, units, 3)
	assert.Equal(t, PlannedUnit{Index: 0, Text: "of a", Anchor: 1, Duration: 100 * time.Millisecond}, units[0])
	assert.Equal(t, PlannedUnit{Index: 2, Text: "great", Anchor: 1, Duration: 100 * time.Millisecond}, units[1])
	assert.Equal(t, PlannedUnit{Index: 3, Text: "day.", Anchor: 1}, units[2])
	assert.Equal(t, 200*time.Millisecond, total)
}

func TestPlanMatchesPlayback(t *testing.T) {
	text := "It was a dark and stormy night; the rain fell in torrents, except at occasional intervals."
	cfg := Configuration{WPM: 450, SmartPauses: true, PairShortWords: true}
	_, total := Plan(Tokenize(text), cfg)

	clock := NewManualClock()
	s := NewSession(WithClock(clock), WithConfiguration(cfg))
	s.LoadText(text, 0)
	s.Engage()
	for s.Held() {
		clock.Next()
	}
	assert.Equal(t, total, clock.Now())
}

func TestPlanEmpty(t *testing.T) {
	units, total := Plan(nil, DefaultConfiguration())
	assert.Empty(t, units)
	assert.Zero(t, total)
}
