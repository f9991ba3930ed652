//go:build !gui

package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Hold         key.Binding
	Stop         key.Binding
	Forward      key.Binding
	Back         key.Binding
	Rewind       key.Binding
	Faster       key.Binding
	Slower       key.Binding
	PrevSentence key.Binding
	NextSentence key.Binding
	PrevChapter  key.Binding
	NextChapter  key.Binding
	Chapters     key.Binding
	Text         key.Binding
	Sync         key.Binding
	Restart      key.Binding
	Pauses       key.Binding
	Pairing      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hold:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hold to read")),
		Stop:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Forward:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next word")),
		Back:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev word")),
		Rewind:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back 10")),
		Faster:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "+10 wpm")),
		Slower:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "-10 wpm")),
		PrevSentence: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev sentence")),
		NextSentence: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next sentence")),
		PrevChapter:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev chapter")),
		NextChapter:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next chapter")),
		Chapters:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chapters")),
		Text:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text panel")),
		Sync:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart at cursor")),
		Restart:      key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "start over")),
		Pauses:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "smart pauses")),
		Pairing:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "pair short words")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hold, k.Faster, k.Slower, k.Back, k.Forward, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hold, k.Stop, k.Back, k.Forward, k.Rewind},
		{k.Faster, k.Slower, k.Pauses, k.Pairing},
		{k.PrevSentence, k.NextSentence, k.PrevChapter, k.NextChapter, k.Chapters},
		{k.Text, k.Sync, k.Restart, k.Help, k.Quit},
	}
}
