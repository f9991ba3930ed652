package reader

// StopReason records why playback last left the held state.
type StopReason int

const (
	StopNone StopReason = iota
	StopRelease
	StopEnd
)

func (r StopReason) String() string {
	switch r {
	case StopRelease:
		return "release"
	case StopEnd:
		return "end"
	}
	return "none"
}

// Held reports whether playback is auto-advancing.
func (s *Session) Held() bool {
	return s.held
}

// LastStopReason returns why the most recent held to paused transition
// happened.
func (s *Session) LastStopReason() StopReason {
	return s.reason
}

// TimerPending reports whether a playback timer is armed.
func (s *Session) TimerPending() bool {
	return s.timer != nil
}

// Engage starts auto-advancing from the current index. It does nothing when
// already held or when the document is empty.
func (s *Session) Engage() {
	if s.held || len(s.tokens) == 0 {
		return
	}
	s.held = true
	s.log.Debug().Int("index", s.index).Int("wpm", s.cfg.WPM).Msg("playback engaged")
	s.arm()
	s.render()
}

// Disengage stops playback. On StopRelease the external cursor is moved to
// the current token, or to the end of the text on the last token. Calling it
// while paused only makes sure no timer is left behind.
func (s *Session) Disengage(reason StopReason) {
	if !s.held {
		s.cancel()
		return
	}
	s.stop(reason)
	if reason == StopRelease {
		s.moveCursor()
	}
	s.render()
}

// OnEngageEdge implements InputSignal.
func (s *Session) OnEngageEdge() {
	s.Engage()
}

// OnDisengageEdge implements InputSignal.
func (s *Session) OnDisengageEdge() {
	s.Disengage(StopRelease)
}

// halt stops playback ahead of a manual mutation of the index.
func (s *Session) halt() {
	if s.held {
		s.stop(StopNone)
		return
	}
	s.cancel()
}

func (s *Session) stop(reason StopReason) {
	s.cancel()
	s.held = false
	s.reason = reason
	s.log.Debug().Int("index", s.index).Stringer("reason", reason).Msg("playback stopped")
}

func (s *Session) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// arm replaces any pending timer with one for the current unit.
func (s *Session) arm() {
	s.cancel()
	s.gen++
	gen := s.gen
	d := UnitDuration(s.CurrentUnit().Text, s.cfg)
	s.timer = s.clock.AfterFunc(d, func() { s.fire(gen) })
}

func (s *Session) fire(gen uint64) {
	if !s.held || gen != s.gen {
		return
	}
	s.timer = nil
	s.index = min(s.last(), s.index+s.CurrentUnit().AdvanceBy)
	if s.index == s.last() {
		s.stop(StopEnd)
	} else {
		s.arm()
	}
	s.render()
}

func (s *Session) moveCursor() {
	if s.cursor == nil || len(s.tokens) == 0 {
		return
	}
	if s.AtEnd() {
		s.cursor.MoveTo(s.textLen)
		return
	}
	s.cursor.MoveTo(s.tokens[s.index].Start)
}
