package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/quoteswipe/internal/gradient"
	"github.com/csheth/quoteswipe/internal/scroller"
)

const (
	shortHelpHeight = 1
	fullHelpHeight  = 3
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	pageWidth    int
	pageHeight   int
	helpHeight   int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(80, 24, false)
	return l
}

func (l *pageLayout) Update(width, height int, fullHelp bool) {
	l.windowWidth = width
	l.windowHeight = height
	l.helpHeight = shortHelpHeight
	if fullHelp {
		l.helpHeight = fullHelpHeight
	}
	l.pageWidth = width
	if l.pageWidth < minPageWidth {
		l.pageWidth = minPageWidth
	}
	l.pageHeight = height - l.helpHeight
	if l.pageHeight < minPageHeight {
		l.pageHeight = minPageHeight
	}
}

// textWidth is the wrap width for quote text inside a page.
func (l pageLayout) textWidth() int {
	width := l.pageWidth - 2*pageHorizontalMargin
	if width < minPageWidth-4 {
		width = minPageWidth - 4
	}
	return width
}

// pageContent lays out one quote: category on top, the quote and author in
// the middle, the swipe hint at the bottom.
func pageContent(page scroller.Page, wrap int, details string) gradient.Content {
	var content gradient.Content
	if details != "" {
		content.Header = append(content.Header, gradient.Line{Text: details, Faint: true})
	} else {
		content.Header = append(content.Header, gradient.Line{})
	}
	content.Header = append(content.Header, gradient.Line{Text: page.Quote.Category.Label(), Faint: true})

	quote := wordwrap.String("\""+page.Quote.Text+"\"", wrap)
	for _, line := range strings.Split(quote, "\n") {
		content.Body = append(content.Body, gradient.Line{Text: strings.TrimSpace(line), Bold: true})
	}
	content.Body = append(content.Body,
		gradient.Line{},
		gradient.Line{Text: "— " + page.Quote.Author, Italic: true},
	)

	content.Footer = []gradient.Line{
		{Text: instructionText, Faint: true},
		{},
	}
	return content
}
