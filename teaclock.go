//go:build !gui

package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/metcalfc/rsvp/internal/reader"
)

type timerFiredMsg struct{ id uint64 }

// teaClock implements reader.Clock on top of tea.Tick so that timer
// callbacks run inside Update, on the program's event loop. AfterFunc only
// queues a command; Update returns drain() to hand them to the runtime.
type teaClock struct {
	next    uint64
	pending map[uint64]*teaTimer
	cmds    []tea.Cmd
}

type teaTimer struct {
	clock *teaClock
	id    uint64
	f     func()
}

func newTeaClock() *teaClock {
	return &teaClock{pending: make(map[uint64]*teaTimer)}
}

func (c *teaClock) AfterFunc(d time.Duration, f func()) reader.Timer {
	c.next++
	t := &teaTimer{clock: c, id: c.next, f: f}
	c.pending[t.id] = t
	id := t.id
	c.cmds = append(c.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

func (t *teaTimer) Stop() bool {
	if _, ok := t.clock.pending[t.id]; !ok {
		return false
	}
	delete(t.clock.pending, t.id)
	return true
}

// fire runs the callback for id unless the timer was stopped. Ticks of
// stopped timers still arrive and are dropped here.
func (c *teaClock) fire(id uint64) {
	t, ok := c.pending[id]
	if !ok {
		return
	}
	delete(c.pending, id)
	t.f()
}

// drain returns the ticks queued since the last call.
func (c *teaClock) drain() tea.Cmd {
	if len(c.cmds) == 0 {
		return nil
	}
	cmds := c.cmds
	c.cmds = nil
	return tea.Batch(cmds...)
}
