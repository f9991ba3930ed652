package reader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockOrdering(t *testing.T) {
	c := NewManualClock()
	var got []string
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(10*time.Millisecond, func() {
		got = append(got, "b")
		c.AfterFunc(5*time.Millisecond, func() { got = append(got, "b2") })
	})

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2"}, got)
	assert.Equal(t, 20*time.Millisecond, c.Now())

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, got)
	assert.Equal(t, 0, c.Pending())
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock()
	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Second)
	assert.False(t, fired)
	assert.False(t, c.Next())
}
