package reader

import "time"

// PlannedUnit is one step of an uninterrupted playback run.
type PlannedUnit struct {
	Index    int
	Text     string
	Anchor   int
	Duration time.Duration
}

// Plan walks tokens from the first one using the playback step rule and
// returns every unit that would be shown together with the total time. The
// final unit is shown but not timed, as playback stops on reaching it.
func Plan(tokens []Token, cfg Configuration) ([]PlannedUnit, time.Duration) {
	cfg = cfg.Normalize()
	var (
		units []PlannedUnit
		total time.Duration
	)
	last := len(tokens) - 1
	for i := 0; i <= last; {
		u := UnitAt(tokens, i, cfg.PairShortWords)
		p := PlannedUnit{Index: i, Text: u.Text, Anchor: AnchorIndex(u.Text)}
		if i < last {
			p.Duration = UnitDuration(u.Text, cfg)
			total += p.Duration
		}
		units = append(units, p)
		if i == last {
			break
		}
		i = min(last, i+u.AdvanceBy)
	}
	return units, total
}
