//go:build !gui

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/metcalfc/rsvp/internal/input"
	"github.com/metcalfc/rsvp/internal/reader"
	"github.com/rs/zerolog"
)

const binaryName = "rsvp"

var (
	anchorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	guideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	heldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555"))

	currentWordStyle = lipgloss.NewStyle().
				Reverse(true)
)

// sourceChangedMsg carries a book reloaded by the file watcher.
type sourceChangedMsg struct{ book reader.Book }

type chapterItem struct {
	index   int
	chapter reader.Chapter
}

func (i chapterItem) Title() string { return fmt.Sprintf("%d. %s", i.index+1, i.chapter.Title) }
func (i chapterItem) Description() string {
	return fmt.Sprintf("%d words", len(reader.Tokenize(i.chapter.Text)))
}
func (i chapterItem) FilterValue() string { return i.chapter.Title }

func chapterItems(b reader.Book) []list.Item {
	items := make([]list.Item, len(b.Chapters))
	for i, ch := range b.Chapters {
		items[i] = chapterItem{index: i, chapter: ch}
	}
	return items
}

type model struct {
	session   *reader.Session
	clock     *teaClock
	keyHold   *input.HoldDetector
	mouseHold *input.HoldDetector

	keys     keyMap
	help     help.Model
	progress progress.Model
	chapters list.Model
	text     viewport.Model

	frame  reader.Frame
	cursor int

	showChapters bool
	showText     bool
	quitting     bool
	width        int
	height       int
}

func newModel(b reader.Book, cfg reader.Configuration, grace time.Duration, log zerolog.Logger) *model {
	if grace <= 0 {
		grace = input.DefaultGrace
	}
	m := &model{
		clock:    newTeaClock(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		text:     viewport.New(0, 0),
		width:    80,
		height:   24,
	}
	m.session = reader.NewSession(
		reader.WithClock(m.clock),
		reader.WithRenderer(reader.RendererFunc(m.render)),
		reader.WithCursor(reader.CursorFunc(m.moveCursor)),
		reader.WithLogger(log),
		reader.WithConfiguration(cfg),
	)
	// Terminals report repeats but no key release. Mouse buttons report both.
	m.keyHold = input.NewHoldDetector(m.clock, grace, m.session)
	m.mouseHold = input.NewHoldDetector(m.clock, 0, m.session)

	m.chapters = list.New(chapterItems(b), list.NewDefaultDelegate(), 0, 0)
	m.chapters.Title = "Chapters"
	m.chapters.SetShowHelp(false)
	m.chapters.SetFilteringEnabled(false)

	m.session.LoadBook(b)
	m.resize()
	return m
}

func (m *model) render(f reader.Frame) {
	m.frame = f
	if m.showText {
		m.refreshText()
	}
}

func (m *model) moveCursor(offset int) {
	m.cursor = offset
}

func (m *model) Init() tea.Cmd {
	return m.clock.drain()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	return m, tea.Batch(cmd, m.clock.drain())
}

func (m *model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timerFiredMsg:
		m.clock.fire(msg.id)

	case sourceChangedMsg:
		offset := m.cursor
		if t, ok := m.session.CurrentToken(); ok {
			offset = t.Start
		}
		m.session.ReloadBook(msg.book, offset)
		m.chapters.SetItems(chapterItems(msg.book))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.MouseMsg:
		if m.showChapters {
			return nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.mouseHold.Press()
		case msg.Action == tea.MouseActionRelease:
			m.mouseHold.Release()
		}

	case tea.KeyMsg:
		if m.showChapters {
			return m.handleChapterKey(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Hold):
		m.keyHold.Press()

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Stop):
		s.Disengage(reader.StopNone)
		m.keyHold.Reset()
		m.mouseHold.Reset()

	case key.Matches(msg, m.keys.Forward):
		s.StepForward()
	case key.Matches(msg, m.keys.Back):
		s.StepBack()
	case key.Matches(msg, m.keys.Rewind):
		s.Rewind(10)
	case key.Matches(msg, m.keys.Faster):
		s.AdjustWPM(10)
	case key.Matches(msg, m.keys.Slower):
		s.AdjustWPM(-10)
	case key.Matches(msg, m.keys.PrevSentence):
		s.JumpToPrevSentence()
	case key.Matches(msg, m.keys.NextSentence):
		s.JumpToNextSentence()
	case key.Matches(msg, m.keys.PrevChapter):
		s.PrevChapter()
	case key.Matches(msg, m.keys.NextChapter):
		s.NextChapter()
	case key.Matches(msg, m.keys.Sync):
		s.LoadText(s.Text(), m.cursor)
	case key.Matches(msg, m.keys.Restart):
		s.Restart()

	case key.Matches(msg, m.keys.Pauses):
		c := s.Configuration()
		c.SmartPauses = !c.SmartPauses
		s.SetConfiguration(c)
	case key.Matches(msg, m.keys.Pairing):
		c := s.Configuration()
		c.PairShortWords = !c.PairShortWords
		s.SetConfiguration(c)

	case key.Matches(msg, m.keys.Chapters):
		if _, n := s.ChapterPosition(); n > 1 {
			m.showChapters = true
			i, _ := s.ChapterPosition()
			m.chapters.Select(i)
		}
	case key.Matches(msg, m.keys.Text):
		m.showText = !m.showText
		m.resize()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()

	default:
		if m.showText {
			var cmd tea.Cmd
			m.text, cmd = m.text.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *model) handleChapterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Stop), key.Matches(msg, m.keys.Chapters):
		m.showChapters = false
		return nil
	case msg.Type == tea.KeyEnter:
		if item, ok := m.chapters.SelectedItem().(chapterItem); ok {
			m.session.LoadChapter(item.index)
		}
		m.showChapters = false
		return nil
	}
	var cmd tea.Cmd
	m.chapters, cmd = m.chapters.Update(msg)
	return cmd
}

func (m *model) resize() {
	m.help.Width = m.width
	m.progress.Width = max(10, m.width-4)
	m.chapters.SetSize(m.width, max(1, m.height-2))
	m.text.Width = max(10, m.width-2)
	m.text.Height = max(3, m.height/2-2)
	if m.showText {
		m.refreshText()
	}
}

// refreshText fills the text panel with the document, the current token
// highlighted and scrolled into view.
func (m *model) refreshText() {
	runes := []rune(m.session.Text())
	t, ok := m.session.CurrentToken()
	if !ok {
		m.text.SetContent("")
		return
	}
	wrap := lipgloss.NewStyle().Width(m.text.Width)
	before := string(runes[:t.Start])
	content := before + currentWordStyle.Render(t.Value) + string(runes[t.End:])
	m.text.SetContent(wrap.Render(content))
	line := lipgloss.Height(wrap.Render(before+t.Value)) - 1
	m.text.SetYOffset(max(0, line-m.text.Height/2))
}

func (m *model) View() string {
	if m.quitting {
		if m.frame.Reason == reader.StopEnd && !m.frame.Held {
			return completeStyle.Render("\n  Reading complete!\n")
		}
		return ""
	}
	if m.showChapters {
		return m.chapters.View()
	}

	var sb strings.Builder
	sb.WriteString(m.status())
	sb.WriteString("\n")

	helpView := m.help.View(m.keys)
	used := 1 + 3 + 1 + lipgloss.Height(helpView)
	if m.showText {
		used += m.text.Height + 2
	}
	avail := max(0, m.height-used)
	vPad := avail / 2
	sb.WriteString(strings.Repeat("\n", vPad))

	if m.frame.Total == 0 {
		sb.WriteString("\nNo text to read.\n")
	} else {
		center := m.width / 2
		sb.WriteString(guideStyle.Render(strings.Repeat(" ", center) + "▼"))
		sb.WriteString("\n")
		sb.WriteString(anchorLine(m.frame, m.width))
		sb.WriteString("\n")
		sb.WriteString(guideStyle.Render(strings.Repeat(" ", center) + "▲"))
	}
	sb.WriteString(strings.Repeat("\n", avail-vPad+1))

	if m.showText {
		sb.WriteString(panelStyle.Render(m.text.View()))
		sb.WriteString("\n")
	}
	if m.frame.Total > 0 {
		sb.WriteString(" " + m.progress.ViewAs(float64(m.frame.Index)/float64(m.frame.Total)))
	}
	sb.WriteString("\n")
	sb.WriteString(helpView)
	return sb.String()
}

func (m *model) status() string {
	state := pausedStyle.Render(playLabel(m.frame.Held))
	if m.frame.Held {
		state = heldStyle.Render(playLabel(true))
	}
	i, n := m.session.ChapterPosition()
	c := m.session.Configuration()
	return statusStyle.Render(fmt.Sprintf("%s | %s | Word %d/%d | %d WPM",
		chapterLabel(i, n), state, m.frame.Index, m.frame.Total, c.WPM))
}

// anchorLine renders the frame with its anchor character in the middle
// column of a terminal width columns wide.
func anchorLine(f reader.Frame, width int) string {
	pad := max(0, width/2-runewidth.StringWidth(f.Prefix))
	return strings.Repeat(" ", pad) +
		wordStyle.Render(f.Prefix) +
		anchorStyle.Render(f.Anchor) +
		wordStyle.Render(f.Suffix)
}

func runReader(a *app) error {
	m := newModel(a.book, a.cfg.Pacing(), a.cfg.HoldGrace, a.log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if a.cfg.Watch && a.source != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := watchSource(ctx, a.source, a.log, func(b reader.Book) {
			p.Send(sourceChangedMsg{book: b})
		})
		if err != nil {
			a.log.Warn().Err(err).Msg("watch disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	a.savePreferences(m.session.Configuration())
	return nil
}
