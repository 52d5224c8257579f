// Package pager is a vertical, full-screen paging component for Bubble Tea.
//
// It shows one page at a time, animates a short slide between neighbours and
// reports the page it came to rest on with a SettledMsg, exactly once per
// swipe. Navigation stays blocked from the moment a SettledMsg is queued
// until the host acknowledges it with Settled, so settles never overlap.
// JumpWithoutAnimation moves the current page silently.
package pager

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultFrames        = 6
	DefaultFrameInterval = time.Second / 60
)

// SettledMsg is emitted when a swipe has finished. Index is the final page.
type SettledMsg struct {
	Index int
}

type frameMsg struct {
	id int
}

// RenderFunc draws the page at index into a width x height block.
type RenderFunc func(index, width, height int) string

// KeyMap binds the swipe gestures to keys.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j", " ", "pgdown"),
			key.WithHelp("↓/j", "next quote"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "previous quote"),
		),
	}
}

type transition struct {
	id    int
	from  int
	to    int
	frame int
}

// Model is the pager state. The zero value is not usable; call New.
type Model struct {
	KeyMap        KeyMap
	Render        RenderFunc
	Frames        int
	FrameInterval time.Duration
	// Disabled drops navigation input while the host is busy.
	Disabled bool

	length int
	index  int
	width  int
	height int

	seq        int
	transition *transition
	awaiting   bool
}

// New returns a pager over length pages resting on initial.
func New(length, initial int, render RenderFunc) Model {
	m := Model{
		KeyMap:        DefaultKeyMap(),
		Render:        render,
		Frames:        DefaultFrames,
		FrameInterval: DefaultFrameInterval,
		length:        length,
		width:         80,
		height:        24,
	}
	m.index = m.clamp(initial)
	return m
}

// Len is the number of pages the pager knows about.
func (m Model) Len() int { return m.length }

// Index is the page currently at rest (or the origin of a running swipe).
func (m Model) Index() int { return m.index }

// Animating reports whether a swipe transition is running.
func (m Model) Animating() bool { return m.transition != nil }

// AwaitingSettle reports whether a SettledMsg was queued and not yet
// acknowledged.
func (m Model) AwaitingSettle() bool { return m.awaiting }

// Settled acknowledges the last SettledMsg and re-enables navigation. The
// host calls it once it has applied the settle.
func (m *Model) Settled() { m.awaiting = false }

func (m Model) busy() bool {
	return m.Disabled || m.awaiting || m.transition != nil
}

// Size returns the page dimensions.
func (m Model) Size() (width, height int) { return m.width, m.height }

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
}

// SetLen updates the number of pages. The current index is kept as-is unless
// it falls outside the new range.
func (m *Model) SetLen(length int) {
	if length < 0 {
		length = 0
	}
	m.length = length
	m.index = m.clamp(m.index)
}

// JumpWithoutAnimation moves to index immediately. A running swipe is
// dropped and no SettledMsg is produced.
func (m *Model) JumpWithoutAnimation(index int) {
	m.transition = nil
	m.index = m.clamp(index)
}

func (m Model) clamp(index int) int {
	if m.length == 0 || index < 0 {
		return 0
	}
	if index >= m.length {
		return m.length - 1
	}
	return index
}

// Update handles key, mouse and animation messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.advance(msg)
	case tea.KeyMsg:
		if m.busy() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Next):
			return m.swipe(1)
		case key.Matches(msg, m.KeyMap.Prev):
			return m.swipe(-1)
		}
	case tea.MouseMsg:
		if m.busy() {
			return m, nil
		}
		switch msg.Type {
		case tea.MouseWheelDown:
			return m.swipe(1)
		case tea.MouseWheelUp:
			return m.swipe(-1)
		}
	}
	return m, nil
}

func (m Model) swipe(delta int) (Model, tea.Cmd) {
	target := m.index + delta
	if target < 0 || target >= m.length {
		return m, nil
	}
	if m.Frames <= 0 {
		m.index = target
		m.awaiting = true
		return m, settle(target)
	}
	m.seq++
	m.transition = &transition{id: m.seq, from: m.index, to: target}
	return m, m.tick(m.seq)
}

func (m Model) advance(msg frameMsg) (Model, tea.Cmd) {
	if m.transition == nil || m.transition.id != msg.id {
		return m, nil
	}
	next := *m.transition
	next.frame++
	if next.frame >= m.Frames {
		m.transition = nil
		m.index = next.to
		m.awaiting = true
		return m, settle(next.to)
	}
	m.transition = &next
	return m, m.tick(next.id)
}

func (m Model) tick(id int) tea.Cmd {
	return tea.Tick(m.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

func settle(index int) tea.Cmd {
	return func() tea.Msg {
		return SettledMsg{Index: index}
	}
}

// View renders the current page, or the blend of two pages mid-swipe.
func (m Model) View() string {
	if m.Render == nil || m.length == 0 {
		return ""
	}
	if m.transition == nil {
		return m.Render(m.index, m.width, m.height)
	}
	t := m.transition
	progress := easeOut(float64(t.frame) / float64(m.Frames))
	shift := int(math.Round(progress * float64(m.height)))
	from := m.pageLines(t.from)
	to := m.pageLines(t.to)
	var lines []string
	if t.to > t.from {
		lines = append(append(lines, from[shift:]...), to[:shift]...)
	} else {
		lines = append(append(lines, to[m.height-shift:]...), from[:m.height-shift]...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) pageLines(index int) []string {
	lines := strings.Split(m.Render(index, m.width, m.height), "\n")
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return lines[:m.height]
}

func easeOut(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, 3)
}
