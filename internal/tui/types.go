package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/csheth/quoteswipe/internal/pager"
)

const instructionText = "위아래로 스와이프하여 다른 명언 보기"

const (
	minPageWidth         = 20
	minPageHeight        = 8
	pageHorizontalMargin = 8
)

type keyMap struct {
	pager.KeyMap
	Debug key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		KeyMap: pager.DefaultKeyMap(),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "page details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Debug, k.Help, k.Quit},
	}
}

// correctionMsg fires one frame after the window grew at the front.
type correctionMsg struct{}
