package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/metcalfc/rsvp/internal/book"
	"github.com/metcalfc/rsvp/internal/config"
	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/metcalfc/rsvp/internal/state"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNoInput = errors.New("no input provided. Provide a file or pipe text to stdin")

// app carries everything a front end needs to start reading.
type app struct {
	cfg    config.Config
	book   reader.Book
	source string // empty when reading stdin
	store  *state.StateStore
	log    zerolog.Logger
	logOut io.Closer
}

func (a *app) close() {
	if a.logOut != nil {
		a.logOut.Close()
	}
}

// savePreferences remembers the pacing options for the next run.
func (a *app) savePreferences(c reader.Configuration) {
	if a.store == nil {
		return
	}
	p := state.Preferences{WPM: c.WPM, SmartPauses: c.SmartPauses, PairShortWords: c.PairShortWords}
	if err := a.store.Save(p); err != nil {
		a.log.Warn().Err(err).Msg("cannot save preferences")
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   binaryName + " [file]",
		Short: "Hold-to-read RSVP speed reader",
		Long: `Shows text one word at a time with the optimal reading position highlighted.
Playback only runs while the hold control is pressed; letting go stops it and
moves the text cursor to the word you stopped on.

Reads plain text, Markdown and EPUB files, or text piped to stdin.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, cfgFile, args)
			if err != nil {
				return err
			}
			defer a.close()
			return runReader(a)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: "+config.DefaultFile()+")")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newPlanCmd(&cfgFile), newLibraryCmd())
	return root
}

func setup(cmd *cobra.Command, cfgFile string, args []string) (*app, error) {
	a := &app{}

	store, err := state.NewStateStore()
	if err == nil {
		a.store = store
	}
	var prefs *state.Preferences
	if a.store != nil {
		if p, ok := a.store.Preferences(); ok {
			prefs = &p
		}
	}

	a.cfg, err = config.Load(cmd.Flags(), cfgFile, prefs)
	if err != nil {
		return nil, err
	}

	a.log, a.logOut, err = newLogger(a.cfg)
	if err != nil {
		return nil, err
	}

	a.book, a.source, err = loadInput(cmd.InOrStdin(), args)
	if err != nil {
		a.close()
		return nil, err
	}
	a.log.Info().
		Str("title", a.book.Title).
		Int("chapters", len(a.book.Chapters)).
		Int("wpm", a.cfg.Pacing().WPM).
		Msg("book loaded")
	return a, nil
}

// newLogger returns a file logger when logging was requested. A terminal
// front end owns stdout, so logs never go there.
func newLogger(c config.Config) (zerolog.Logger, io.Closer, error) {
	if c.LogFile == "" && !c.Debug {
		return zerolog.Nop(), nil, nil
	}
	path := c.LogFile
	if path == "" {
		if err := os.MkdirAll(state.Dir(), 0755); err != nil {
			return zerolog.Nop(), nil, err
		}
		path = state.LogPath()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	level := zerolog.InfoLevel
	if c.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
}

func loadInput(stdin io.Reader, args []string) (reader.Book, string, error) {
	if len(args) > 0 {
		b, err := book.Open(args[0])
		if err != nil {
			return reader.Book{}, "", fmt.Errorf("failed to read file '%s': %w", args[0], err)
		}
		return b, args[0], nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return reader.Book{}, "", errNoInput
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return reader.Book{}, "", fmt.Errorf("error reading stdin: %w", err)
	}
	b, err := book.FromText("stdin", string(data))
	if err != nil {
		return reader.Book{}, "", fmt.Errorf("no text to read: %w", err)
	}
	return b, "", nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func newPlanCmd(cfgFile *string) *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Print every display unit with its anchor and duration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, *cfgFile, args)
			if err != nil {
				return err
			}
			defer a.close()
			return printPlan(cmd.OutOrStdout(), a.book, a.cfg.Pacing(), summary)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "Only print per-chapter totals")
	return cmd
}

func printPlan(w io.Writer, b reader.Book, cfg reader.Configuration, summary bool) error {
	totals := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Chapter", "Title", "Tokens", "Units", "Time").
		StyleFunc(planStyle)
	var grand time.Duration

	for i, ch := range b.Chapters {
		tokens := reader.Tokenize(ch.Text)
		units, total := reader.Plan(tokens, cfg)
		grand += total
		totals.Row(fmt.Sprint(i+1), ch.Title, fmt.Sprint(len(tokens)), fmt.Sprint(len(units)), total.Round(time.Second).String())
		if summary {
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Unit", "ms").
			StyleFunc(planStyle)
		for _, u := range units {
			pre, anchor, post := reader.SplitAtAnchor(u.Text)
			t.Row(fmt.Sprint(u.Index+1), pre+"["+anchor+"]"+post, fmt.Sprint(u.Duration.Milliseconds()))
		}
		fmt.Fprintln(w, headerStyle.Render(ch.Title))
		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w, totals.Render())
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%s at %d WPM: %s", b.Title, cfg.WPM, grand.Round(time.Second))))
	return nil
}

func planStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func newLibraryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "library <dir>",
		Short: "List the books in a directory's " + book.ManifestName,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := book.LoadLibrary(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, e := range entries {
				fmt.Fprintf(w, "%2d  %s\n    %s\n", i+1, headerStyle.Render(e.Title), dimStyle.Render(e.Path))
			}
			fmt.Fprintln(w, dimStyle.Render("Formats: "+fmt.Sprint(book.SupportedFormats())))
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
