//go:build gui

package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/metcalfc/rsvp/internal/input"
	"github.com/metcalfc/rsvp/internal/reader"
)

const binaryName = "grsvp"

// fyneClock runs timer callbacks on the fyne event loop.
type fyneClock struct{}

type fyneTimer struct {
	t    *time.Timer
	done bool // only touched on the fyne thread
}

func (fyneClock) AfterFunc(d time.Duration, f func()) reader.Timer {
	ft := &fyneTimer{}
	ft.t = time.AfterFunc(d, func() {
		fyne.Do(func() {
			if ft.done {
				return
			}
			ft.done = true
			f()
		})
	})
	return ft
}

func (t *fyneTimer) Stop() bool {
	t.t.Stop()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// holdButton is a dead-man switch for the pointer: playback runs while the
// button is pressed.
type holdButton struct {
	widget.Button
	hold *input.HoldDetector
}

func newHoldButton(label string, hold *input.HoldDetector) *holdButton {
	b := &holdButton{hold: hold}
	b.Text = label
	b.Icon = theme.MediaPlayIcon()
	b.Importance = widget.HighImportance
	b.ExtendBaseWidget(b)
	return b
}

func (b *holdButton) MouseDown(*desktop.MouseEvent)  { b.hold.Press() }
func (b *holdButton) MouseUp(*desktop.MouseEvent)    { b.hold.Release() }
func (b *holdButton) TouchDown(*mobile.TouchEvent)   { b.hold.Press() }
func (b *holdButton) TouchUp(*mobile.TouchEvent)     { b.hold.Release() }
func (b *holdButton) TouchCancel(*mobile.TouchEvent) { b.hold.Release() }

func createWordDisplay(f reader.Frame, fontSize float32, windowWidth float32) *fyne.Container {
	newText := func(s string, c color.Color) *canvas.Text {
		t := canvas.NewText(s, c)
		t.TextSize = fontSize
		t.TextStyle.Bold = true
		return t
	}
	beforeText := newText(f.Prefix, color.White)
	focusText := newText(f.Anchor, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	afterText := newText(f.Suffix, color.White)

	// Centre the anchor character itself on the window.
	focusSize := focusText.MinSize()
	focusX := windowWidth/2 - focusSize.Width/2
	beforeX := focusX - beforeText.MinSize().Width
	afterX := focusX + focusSize.Width

	c := &fyne.Container{
		Layout:  &centerVerticalLayout{},
		Objects: []fyne.CanvasObject{beforeText, focusText, afterText},
	}
	beforeText.Move(fyne.NewPos(beforeX, 0))
	focusText.Move(fyne.NewPos(focusX, 0))
	afterText.Move(fyne.NewPos(afterX, 0))
	return c
}

type centerVerticalLayout struct{}

func (l *centerVerticalLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var maxH float32
	for _, o := range objects {
		maxH = max(maxH, o.MinSize().Height)
	}
	return fyne.NewSize(0, maxH)
}

func (l *centerVerticalLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var maxH float32
	for _, o := range objects {
		maxH = max(maxH, o.MinSize().Height)
	}
	y := max(0, (size.Height-maxH)/2)
	// X is set by createWordDisplay.
	for _, o := range objects {
		o.Move(fyne.NewPos(o.Position().X, y))
		o.Resize(o.MinSize())
	}
}

func runReader(a *app) error {
	fa := fyneapp.New()
	w := fa.NewWindow(a.book.Title + " - " + binaryName)
	fontSize := float32(72)

	statusLabel := widget.NewLabel("")
	statusLabel.Alignment = fyne.TextAlignCenter
	controlsLabel := widget.NewLabel("SPACE: hold  ESC: stop  ↑/↓: speed  ←/→: word  [/]: sentence  B: back 10  P/N: chapter  R: restart at cursor  C: chapters  T: text  F: fullscreen  Q: quit")
	controlsLabel.Alignment = fyne.TextAlignCenter
	wordContainer := container.NewStack()

	// The editor is the external cursor: release moves its caret and
	// restart reads from it.
	editor := widget.NewMultiLineEntry()
	editor.Wrapping = fyne.TextWrapWord
	syncing := false

	var session *reader.Session
	var frame reader.Frame

	updateDisplay := func() {
		canvasWidth := w.Canvas().Size().Width
		if canvasWidth <= 0 {
			canvasWidth = 800
		}
		wordContainer.Objects = []fyne.CanvasObject{createWordDisplay(frame, fontSize, canvasWidth)}
		wordContainer.Refresh()

		i, n := session.ChapterPosition()
		statusLabel.SetText(fmt.Sprintf("%s | %s | Word %d/%d | %d WPM",
			chapterLabel(i, n), playLabel(frame.Held), frame.Index, frame.Total, session.Configuration().WPM))

		if editor.Text != session.Text() {
			syncing = true
			editor.SetText(session.Text())
			syncing = false
		}
	}

	session = reader.NewSession(
		reader.WithClock(fyneClock{}),
		reader.WithRenderer(reader.RendererFunc(func(f reader.Frame) {
			frame = f
			if session != nil {
				updateDisplay()
			}
		})),
		reader.WithCursor(reader.CursorFunc(func(offset int) {
			editor.CursorRow, editor.CursorColumn = rowCol(session.Text(), offset)
			editor.Refresh()
		})),
		reader.WithLogger(a.log),
		reader.WithConfiguration(a.cfg.Pacing()),
	)
	// Desktop keys and pointers report real releases, so no grace window.
	keyHold := input.NewHoldDetector(fyneClock{}, 0, session)
	pointerHold := input.NewHoldDetector(fyneClock{}, 0, session)

	editorOffset := func() int {
		return offsetAt(editor.Text, editor.CursorRow, editor.CursorColumn)
	}
	editor.OnChanged = func(text string) {
		if syncing {
			return
		}
		session.LoadText(text, editorOffset())
	}

	chapterList := widget.NewList(
		func() int {
			if b := session.Book(); b != nil {
				return len(b.Chapters)
			}
			return 0
		},
		func() fyne.CanvasObject { return widget.NewLabel("Title") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if b := session.Book(); b != nil && id < len(b.Chapters) {
				obj.(*widget.Label).SetText(fmt.Sprintf("%d. %s", id+1, b.Chapters[id].Title))
			}
		},
	)
	chapterList.OnSelected = func(id widget.ListItemID) {
		session.LoadChapter(id)
	}

	prevButton := widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() { session.PrevChapter() })
	nextButton := widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() { session.NextChapter() })
	restartButton := widget.NewButtonWithIcon("From cursor", theme.MediaReplayIcon(), func() {
		session.LoadText(session.Text(), editorOffset())
	})
	holdBtn := newHoldButton("Hold to read", pointerHold)

	readingContent := container.NewBorder(
		statusLabel,
		container.NewVBox(
			container.NewHBox(prevButton, holdBtn, restartButton, nextButton),
			controlsLabel,
		),
		nil, nil,
		wordContainer,
	)
	textPanel := container.NewVSplit(readingContent, editor)
	textPanel.Offset = 0.6
	chapterPanel := container.NewBorder(widget.NewLabel("Chapters"), nil, nil, nil, chapterList)
	chapterPanel.Hide()
	mainSplit := container.NewHSplit(chapterPanel, textPanel)
	mainSplit.Offset = 0.25

	session.LoadBook(a.book)
	updateDisplay()

	toggle := func(o fyne.CanvasObject) {
		if o.Visible() {
			o.Hide()
		} else {
			o.Show()
		}
		mainSplit.Refresh()
		textPanel.Refresh()
	}

	stop := func() {
		session.Disengage(reader.StopNone)
		keyHold.Reset()
		pointerHold.Reset()
		w.Canvas().Unfocus()
	}

	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				keyHold.Press()
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeySpace {
				keyHold.Release()
			}
		})
	}

	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyEscape:
			stop()
		case fyne.KeyUp:
			session.AdjustWPM(10)
		case fyne.KeyDown:
			session.AdjustWPM(-10)
		case fyne.KeyLeft:
			session.StepBack()
		case fyne.KeyRight:
			session.StepForward()
		case fyne.KeyF:
			w.SetFullScreen(!w.FullScreen())
		case fyne.KeyQ:
			w.Close()
		}
	})

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'b', 'B':
			session.Rewind(10)
		case '[':
			session.JumpToPrevSentence()
		case ']':
			session.JumpToNextSentence()
		case 'p', 'P':
			session.PrevChapter()
		case 'n', 'N':
			session.NextChapter()
		case 'r', 'R':
			session.LoadText(session.Text(), editorOffset())
		case '0':
			session.Restart()
		case 'c', 'C':
			toggle(chapterPanel)
		case 't', 'T':
			toggle(editor)
		case 's', 'S':
			c := session.Configuration()
			c.SmartPauses = !c.SmartPauses
			session.SetConfiguration(c)
		case 'w', 'W':
			c := session.Configuration()
			c.PairShortWords = !c.PairShortWords
			session.SetConfiguration(c)
		case '+', '=':
			if fontSize < 200 {
				fontSize += 5
				updateDisplay()
			}
		case '-':
			if fontSize > 20 {
				fontSize -= 5
				updateDisplay()
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if a.cfg.Watch && a.source != "" {
		err := watchSource(ctx, a.source, a.log, func(b reader.Book) {
			fyne.Do(func() {
				offset := editorOffset()
				if t, ok := session.CurrentToken(); ok {
					offset = t.Start
				}
				session.ReloadBook(b, offset)
				chapterList.Refresh()
			})
		})
		if err != nil {
			a.log.Warn().Err(err).Msg("watch disabled")
		}
	}

	w.SetOnClosed(func() {
		a.savePreferences(session.Configuration())
	})
	w.Resize(fyne.NewSize(1000, 700))
	w.SetContent(mainSplit)
	w.ShowAndRun()
	return nil
}
