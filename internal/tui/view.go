package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/quoteswipe/internal/gradient"
)

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("#000000"))

func (m *model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.pager.View(), m.helpView())
}

func (m *model) helpView() string {
	return helpBarStyle.Width(m.layout.pageWidth).Render(m.help.View(m.keys))
}

// renderPage is the pager's RenderFunc.
func (m *model) renderPage(index, width, height int) string {
	page := m.window.Page(index)
	details := ""
	if m.showDebug {
		details = m.detailsLine(index)
	}
	return gradient.Render(page.Quote.Gradient, width, height, pageContent(page, m.layout.textWidth(), details))
}

func (m *model) detailsLine(index int) string {
	first, last := m.window.Bounds()
	return fmt.Sprintf("id %s · chunks [%d, %d] · page %d/%d",
		m.window.Page(index).Identity, first, last, index, m.window.Len())
}
