package reader

import (
	"sort"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the timer was still
	// pending. After Stop returns the callback never runs.
	Stop() bool
}

// Clock arms one-shot callbacks. Implementations must invoke f on the same
// logical thread that drives the Session; the core never starts goroutines.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualClock is a deterministic Clock whose time only moves when Advance is
// called. Callbacks run synchronously inside Advance.
type ManualClock struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Duration
	seq   int
	f     func()
}

// NewManualClock returns a ManualClock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	t := &manualTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.pending = append(c.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Now returns the elapsed clock time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of armed callbacks.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

// Advance moves time forward by d, firing every callback that falls due in
// deadline order. Callbacks armed while advancing fire too if they fall due.
func (c *ManualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.nextDue(end)
		if t == nil {
			break
		}
		t.Stop()
		c.now = t.at
		t.f()
	}
	c.now = end
}

// Next fires the earliest pending callback, moving time to its deadline. It
// reports false when nothing is pending.
func (c *ManualClock) Next() bool {
	if len(c.pending) == 0 {
		return false
	}
	c.sortPending()
	t := c.pending[0]
	t.Stop()
	c.now = t.at
	t.f()
	return true
}

func (c *ManualClock) nextDue(end time.Duration) *manualTimer {
	if len(c.pending) == 0 {
		return nil
	}
	c.sortPending()
	if c.pending[0].at > end {
		return nil
	}
	return c.pending[0]
}

func (c *ManualClock) sortPending() {
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at != c.pending[j].at {
			return c.pending[i].at < c.pending[j].at
		}
		return c.pending[i].seq < c.pending[j].seq
	})
}
