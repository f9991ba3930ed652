package input

import (
	"testing"
	"time"

	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edges struct {
	engaged, released int
}

func (e *edges) OnEngageEdge()    { e.engaged++ }
func (e *edges) OnDisengageEdge() { e.released++ }

func TestHoldDetectorIgnoresRepeats(t *testing.T) {
	clock := reader.NewManualClock()
	e := &edges{}
	h := NewHoldDetector(clock, 500*time.Millisecond, e)

	h.Press()
	for i := 0; i < 10; i++ {
		clock.Advance(30 * time.Millisecond)
		h.Press()
	}
	assert.Equal(t, 1, e.engaged)
	assert.Equal(t, 0, e.released)
	assert.True(t, h.Down())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, e.released)
	assert.False(t, h.Down())
	assert.Equal(t, 0, clock.Pending())
}

func TestHoldDetectorExplicitRelease(t *testing.T) {
	clock := reader.NewManualClock()
	e := &edges{}
	h := NewHoldDetector(clock, 0, e)

	h.Release()
	assert.Equal(t, 0, e.released)

	h.Press()
	h.Press()
	assert.Equal(t, 0, clock.Pending())
	h.Release()
	h.Release()
	assert.Equal(t, edges{engaged: 1, released: 1}, *e)
}

func TestHoldDetectorDrivesSession(t *testing.T) {
	clock := reader.NewManualClock()
	var cursor []int
	s := reader.NewSession(
		reader.WithClock(clock),
		reader.WithConfiguration(reader.Configuration{WPM: 300}),
		reader.WithCursor(reader.CursorFunc(func(o int) { cursor = append(cursor, o) })),
	)
	s.LoadText("alpha beta gamma delta", 0)
	h := NewHoldDetector(clock, 250*time.Millisecond, s)

	h.Press()
	require.True(t, s.Held())
	for i := 0; i < 5; i++ {
		clock.Advance(40 * time.Millisecond)
		h.Press()
	}
	assert.Equal(t, 1, s.Index())

	clock.Advance(250 * time.Millisecond)
	assert.False(t, s.Held())
	assert.Equal(t, reader.StopRelease, s.LastStopReason())
	assert.Equal(t, []int{s.Tokens()[s.Index()].Start}, cursor)
}

func TestHoldDetectorRepeatAfterEndDoesNotRestart(t *testing.T) {
	clock := reader.NewManualClock()
	s := reader.NewSession(reader.WithClock(clock), reader.WithConfiguration(reader.Configuration{WPM: 600}))
	s.LoadText("one two", 0)
	h := NewHoldDetector(clock, 150*time.Millisecond, s)

	h.Press()
	clock.Advance(100 * time.Millisecond)
	require.False(t, s.Held())
	require.Equal(t, reader.StopEnd, s.LastStopReason())

	h.Press()
	assert.False(t, s.Held(), "auto-repeat must not restart playback after the end")
}
