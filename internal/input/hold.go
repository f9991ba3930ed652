// Package input turns raw key and pointer notifications into the
// edge-triggered engage/disengage calls the playback scheduler expects.
package input

import (
	"time"

	"github.com/metcalfc/rsvp/internal/reader"
)

// DefaultGrace is how long a key may go without a repeat before it is
// considered released. It has to exceed the usual auto-repeat delay.
const DefaultGrace = 600 * time.Millisecond

// HoldDetector tracks one hold control. Press may be called for the initial
// press and for every auto-repeat; only the first one produces an engage
// edge. Terminals do not report key release, so a press that is not
// repeated within the grace window counts as released.
type HoldDetector struct {
	clock  reader.Clock
	grace  time.Duration
	target reader.InputSignal

	down  bool
	timer reader.Timer
}

// NewHoldDetector returns a detector forwarding edges to target. A grace of
// zero disables the release timeout; Release must then be called explicitly.
func NewHoldDetector(clock reader.Clock, grace time.Duration, target reader.InputSignal) *HoldDetector {
	return &HoldDetector{clock: clock, grace: grace, target: target}
}

// Down reports whether the control is currently considered pressed.
func (h *HoldDetector) Down() bool {
	return h.down
}

// Press records a press or repeat notification.
func (h *HoldDetector) Press() {
	h.stopTimer()
	if !h.down {
		h.down = true
		h.target.OnEngageEdge()
	}
	if h.grace > 0 {
		h.timer = h.clock.AfterFunc(h.grace, h.expire)
	}
}

// Release records an explicit release. It is a no-op when not pressed.
func (h *HoldDetector) Release() {
	h.stopTimer()
	if !h.down {
		return
	}
	h.down = false
	h.target.OnDisengageEdge()
}

// Reset forgets the pressed state without emitting an edge, for use when
// playback was stopped by other means and the next press must start afresh.
func (h *HoldDetector) Reset() {
	h.stopTimer()
	h.down = false
}

func (h *HoldDetector) expire() {
	h.timer = nil
	h.Release()
}

func (h *HoldDetector) stopTimer() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
