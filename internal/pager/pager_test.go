package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func textRender(index, width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = fmt.Sprintf("p%d-r%d", index, i)
	}
	return strings.Join(lines, "\n")
}

func keyDown() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyUp} }

// drive runs frame messages until the pager settles and returns the settle.
func drive(t *testing.T, m Model, cmd tea.Cmd) (Model, SettledMsg) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if cmd == nil {
			t.Fatal("pager stopped without settling")
		}
		msg := cmd()
		if settled, ok := msg.(SettledMsg); ok {
			return m, settled
		}
		frame, ok := msg.(frameMsg)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		m, cmd = m.Update(frame)
	}
	t.Fatal("pager never settled")
	return m, SettledMsg{}
}

func TestNewClampsInitialIndex(t *testing.T) {
	if got := New(5, 9, textRender).Index(); got != 4 {
		t.Fatalf("index not clamped: %d", got)
	}
	if got := New(5, -2, textRender).Index(); got != 0 {
		t.Fatalf("index not clamped: %d", got)
	}
}

func TestSwipeAnimatesAndSettlesOnce(t *testing.T) {
	m := New(10, 3, textRender)
	m.FrameInterval = 0
	m, cmd := m.Update(keyDown())
	if !m.Animating() {
		t.Fatal("expected transition to start")
	}
	if m.Index() != 3 {
		t.Fatalf("index moved before settle: %d", m.Index())
	}
	m, settled := drive(t, m, cmd)
	if settled.Index != 4 || m.Index() != 4 {
		t.Fatalf("settled at %d (index %d), want 4", settled.Index, m.Index())
	}
	if m.Animating() {
		t.Fatal("transition still running after settle")
	}
}

func TestSwipeWithoutFramesSettlesImmediately(t *testing.T) {
	m := New(10, 3, textRender)
	m.Frames = 0
	m, cmd := m.Update(keyUp())
	if m.Index() != 2 {
		t.Fatalf("index %d, want 2", m.Index())
	}
	if msg, ok := cmd().(SettledMsg); !ok || msg.Index != 2 {
		t.Fatalf("unexpected settle %v", cmd())
	}
}

func TestSwipeStopsAtEdges(t *testing.T) {
	m := New(3, 0, textRender)
	if _, cmd := m.Update(keyUp()); cmd != nil {
		t.Fatal("swipe above first page should be ignored")
	}
	m = New(3, 2, textRender)
	if _, cmd := m.Update(keyDown()); cmd != nil {
		t.Fatal("swipe past last page should be ignored")
	}
}

func TestInputIgnoredWhileAnimatingOrDisabled(t *testing.T) {
	m := New(10, 3, textRender)
	m, _ = m.Update(keyDown())
	if _, cmd := m.Update(keyDown()); cmd != nil {
		t.Fatal("second swipe during transition should be dropped")
	}

	m = New(10, 3, textRender)
	m.Disabled = true
	if _, cmd := m.Update(keyDown()); cmd != nil {
		t.Fatal("disabled pager should drop input")
	}
}

func TestInputBlockedUntilSettleAcknowledged(t *testing.T) {
	m := New(10, 3, textRender)
	m.Frames = 0
	m, cmd := m.Update(keyUp())
	if cmd == nil || !m.AwaitingSettle() {
		t.Fatal("expected a queued settle")
	}
	if _, again := m.Update(keyUp()); again != nil {
		t.Fatal("key input should be dropped while a settle is queued")
	}
	if _, again := m.Update(tea.MouseMsg{Type: tea.MouseWheelUp}); again != nil {
		t.Fatal("wheel input should be dropped while a settle is queued")
	}
	m.Settled()
	m, cmd = m.Update(keyUp())
	if cmd == nil || m.Index() != 1 {
		t.Fatalf("swipe after acknowledge index %d, want 1", m.Index())
	}
}

func TestAnimatedSwipeAwaitsAcknowledge(t *testing.T) {
	m := New(10, 3, textRender)
	m.FrameInterval = 0
	m, cmd := m.Update(keyDown())
	m, _ = drive(t, m, cmd)
	if !m.AwaitingSettle() {
		t.Fatal("settle should be pending acknowledgement")
	}
	if _, next := m.Update(keyDown()); next != nil {
		t.Fatal("input between the last frame and settle delivery should be dropped")
	}
}

func TestMouseWheelSwipes(t *testing.T) {
	m := New(10, 3, textRender)
	m.Frames = 0
	m, _ = m.Update(tea.MouseMsg{Type: tea.MouseWheelDown})
	if m.Index() != 4 {
		t.Fatalf("wheel down index %d, want 4", m.Index())
	}
	m.Settled()
	m, _ = m.Update(tea.MouseMsg{Type: tea.MouseWheelUp})
	if m.Index() != 3 {
		t.Fatalf("wheel up index %d, want 3", m.Index())
	}
}

func TestJumpWithoutAnimationCancelsSwipe(t *testing.T) {
	m := New(10, 3, textRender)
	m, cmd := m.Update(keyDown())
	m.JumpWithoutAnimation(8)
	if m.Animating() || m.Index() != 8 {
		t.Fatalf("jump did not take effect: animating=%v index=%d", m.Animating(), m.Index())
	}
	m, next := m.Update(cmd())
	if next != nil {
		t.Fatal("stale frame should not produce a command")
	}
	if m.Index() != 8 {
		t.Fatalf("stale frame moved index to %d", m.Index())
	}
}

func TestSetLenKeepsIndex(t *testing.T) {
	m := New(10, 3, textRender)
	m.SetLen(20)
	if m.Index() != 3 || m.Len() != 20 {
		t.Fatalf("unexpected state index=%d len=%d", m.Index(), m.Len())
	}
	m.SetLen(2)
	if m.Index() != 1 {
		t.Fatalf("index not clamped after shrink: %d", m.Index())
	}
}

func TestViewMidSwipeBlendsPages(t *testing.T) {
	m := New(10, 3, textRender)
	m.SetSize(10, 10)
	m.Frames = 2
	m, cmd := m.Update(keyDown())
	m, _ = m.Update(cmd())

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "p3-") {
		t.Fatalf("top should still show the outgoing page: %q", lines[0])
	}
	if !strings.HasPrefix(lines[9], "p4-") {
		t.Fatalf("bottom should show the incoming page: %q", lines[9])
	}
}

func TestViewMidSwipeUpward(t *testing.T) {
	m := New(10, 3, textRender)
	m.SetSize(10, 10)
	m.Frames = 2
	m, cmd := m.Update(keyUp())
	m, _ = m.Update(cmd())

	lines := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(lines[0], "p2-") || !strings.HasPrefix(lines[9], "p3-") {
		t.Fatalf("unexpected upward blend: %v", lines)
	}
}

func TestViewAtRest(t *testing.T) {
	m := New(10, 5, textRender)
	m.SetSize(10, 2)
	if got := m.View(); got != "p5-r0\np5-r1" {
		t.Fatalf("unexpected view %q", got)
	}
	if got := New(0, 0, textRender).View(); got != "" {
		t.Fatalf("empty pager should render nothing, got %q", got)
	}
}
