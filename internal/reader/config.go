package reader

// Words-per-minute limits and default.
const (
	MinWPM     = 100
	MaxWPM     = 900
	DefaultWPM = 350
)

// Configuration holds the caller-owned pacing options.
type Configuration struct {
	WPM            int
	SmartPauses    bool
	PairShortWords bool
}

// DefaultConfiguration returns the options used when none are given.
func DefaultConfiguration() Configuration {
	return Configuration{
		WPM:            DefaultWPM,
		SmartPauses:    true,
		PairShortWords: true,
	}
}

// Normalize clamps WPM into [MinWPM, MaxWPM]. A missing (non-positive) rate
// falls back to DefaultWPM.
func (c Configuration) Normalize() Configuration {
	if c.WPM <= 0 {
		c.WPM = DefaultWPM
	}
	c.WPM = clamp(c.WPM, MinWPM, MaxWPM)
	return c
}
