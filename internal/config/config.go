// Package config layers the reader's options: built-in defaults, saved
// preferences, an optional config file, RSVP_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metcalfc/rsvp/internal/input"
	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/metcalfc/rsvp/internal/state"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood in config files, environment and flags.
const (
	KeyWPM            = "wpm"
	KeySmartPauses    = "smart_pauses"
	KeyPairShortWords = "pair_short_words"
	KeyHoldGrace      = "hold_grace"
	KeyLogFile        = "log_file"
	KeyDebug          = "debug"
	KeyWatch          = "watch"

	envPrefix = "RSVP"
)

// Config is the resolved set of options.
type Config struct {
	WPM            int           `mapstructure:"wpm"`
	SmartPauses    bool          `mapstructure:"smart_pauses"`
	PairShortWords bool          `mapstructure:"pair_short_words"`
	HoldGrace      time.Duration `mapstructure:"hold_grace"`
	LogFile        string        `mapstructure:"log_file"`
	Debug          bool          `mapstructure:"debug"`
	Watch          bool          `mapstructure:"watch"`
}

// Pacing returns the core configuration, normalized.
func (c Config) Pacing() reader.Configuration {
	return reader.Configuration{
		WPM:            c.WPM,
		SmartPauses:    c.SmartPauses,
		PairShortWords: c.PairShortWords,
	}.Normalize()
}

// Preferences returns the subset of options remembered between runs.
func (c Config) Preferences() state.Preferences {
	p := c.Pacing()
	return state.Preferences{WPM: p.WPM, SmartPauses: p.SmartPauses, PairShortWords: p.PairShortWords}
}

// DefaultFile returns XDG_CONFIG_HOME/rsvp/config.toml or its home fallback.
func DefaultFile() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rsvp", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rsvp", "config.toml")
}

// RegisterFlags adds the option flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := reader.DefaultConfiguration()
	fs.IntP(KeyWPM, "w", def.WPM, fmt.Sprintf("Words per minute (%d-%d)", reader.MinWPM, reader.MaxWPM))
	fs.Bool("smart-pauses", def.SmartPauses, "Pause longer at punctuation and on long words")
	fs.Bool("pair-short-words", def.PairShortWords, "Show two short words together")
	fs.Duration("hold-grace", input.DefaultGrace, "Time without a key repeat before a held key counts as released")
	fs.String("log-file", "", "Write debug logs to this file")
	fs.Bool(KeyDebug, false, "Enable debug logging (to the state directory unless --log-file is set)")
	fs.Bool(KeyWatch, false, "Reload the source file when it changes on disk")
}

// Load resolves options. file may be empty to use DefaultFile, which is
// optional; an explicitly named file must exist. prefs may be nil.
func Load(fs *pflag.FlagSet, file string, prefs *state.Preferences) (Config, error) {
	v := viper.New()

	def := reader.DefaultConfiguration()
	v.SetDefault(KeyWPM, def.WPM)
	v.SetDefault(KeySmartPauses, def.SmartPauses)
	v.SetDefault(KeyPairShortWords, def.PairShortWords)
	v.SetDefault(KeyHoldGrace, input.DefaultGrace)
	if prefs != nil {
		v.SetDefault(KeyWPM, prefs.WPM)
		v.SetDefault(KeySmartPauses, prefs.SmartPauses)
		v.SetDefault(KeyPairShortWords, prefs.PairShortWords)
	}

	explicit := file != ""
	if !explicit {
		file = DefaultFile()
	}
	v.SetConfigFile(file)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			KeyWPM:            "wpm",
			KeySmartPauses:    "smart-pauses",
			KeyPairShortWords: "pair-short-words",
			KeyHoldGrace:      "hold-grace",
			KeyLogFile:        "log-file",
			KeyDebug:          "debug",
			KeyWatch:          "watch",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
