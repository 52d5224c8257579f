package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/csheth/quoteswipe/internal/catalog"
	"github.com/csheth/quoteswipe/internal/pager"
	"github.com/csheth/quoteswipe/internal/scroller"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Catalog          catalog.Catalog
	TransitionFrames int
	FrameRate        int
	Debug            bool
	SessionID        string
}

type model struct {
	config Config
	window *scroller.Window
	pager  pager.Model
	help   help.Model
	keys   keyMap
	layout pageLayout

	showDebug     bool
	frameInterval time.Duration
}

// New returns a tea.Model ready to be mounted into a Program. The catalog
// must be non-empty.
func New(config Config) tea.Model {
	if config.SessionID == "" {
		config.SessionID = uuid.NewString()
	}
	if config.FrameRate <= 0 {
		config.FrameRate = 60
	}
	m := &model{
		config:        config,
		window:        scroller.New(config.Catalog),
		help:          help.New(),
		keys:          newKeyMap(),
		layout:        newPageLayout(),
		showDebug:     config.Debug,
		frameInterval: time.Second / time.Duration(config.FrameRate),
	}
	m.pager = pager.New(m.window.Len(), m.window.Current(), m.renderPage)
	m.pager.Frames = config.TransitionFrames
	m.pager.FrameInterval = m.frameInterval
	m.pager.KeyMap = m.keys.KeyMap
	m.pager.SetSize(m.layout.pageWidth, m.layout.pageHeight)
	log.Printf("[scroller] session=%s mounted pages=%d chunk=%d current=%d",
		config.SessionID, m.window.Len(), m.window.ChunkSize(), m.window.Current())
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height, m.help.ShowAll)
		m.help.Width = msg.Width
		m.pager.SetSize(m.layout.pageWidth, m.layout.pageHeight)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			log.Printf("[scroller] session=%s quit pages=%d current=%d", m.config.SessionID, m.window.Len(), m.window.Current())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout.Update(m.layout.windowWidth, m.layout.windowHeight, m.help.ShowAll)
			m.pager.SetSize(m.layout.pageWidth, m.layout.pageHeight)
			return m, nil
		case key.Matches(msg, m.keys.Debug):
			m.showDebug = !m.showDebug
			return m, nil
		}
		return m.updatePager(msg)
	case pager.SettledMsg:
		return m.handleSettled(msg)
	case correctionMsg:
		return m.commitCorrection()
	}
	return m.updatePager(msg)
}

func (m *model) updatePager(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.pager.Disabled = m.window.Pending()
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// handleSettled forwards a settle to the window and hands the grown page
// count to the pager. A front growth leaves the pager on the same index for
// this render pass; the jump is issued one frame later by commitCorrection.
func (m *model) handleSettled(msg pager.SettledMsg) (tea.Model, tea.Cmd) {
	m.pager.Settled()
	result := m.window.OnPageSettled(msg.Index)
	if !result.GrewForward && !result.GrewBackward {
		return m, nil
	}
	first, last := m.window.Bounds()
	log.Printf("[scroller] session=%s settle=%d forward=%t backward=%t chunks=[%d,%d] pages=%d",
		m.config.SessionID, msg.Index, result.GrewForward, result.GrewBackward, first, last, m.window.Len())
	m.pager.SetLen(m.window.Len())
	if !result.GrewBackward {
		return m, nil
	}
	m.pager.Disabled = true
	return m, m.afterFrame(correctionMsg{})
}

func (m *model) commitCorrection() (tea.Model, tea.Cmd) {
	from := m.pager.Index()
	applied := m.window.Commit(&m.pager)
	m.pager.Disabled = false
	if applied > 0 {
		log.Printf("[scroller] session=%s corrected %d -> %d", m.config.SessionID, from, m.window.Current())
	}
	return m, nil
}

func (m *model) afterFrame(msg tea.Msg) tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return msg
	})
}
