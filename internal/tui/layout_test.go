package tui

import (
	"strings"
	"testing"

	"github.com/csheth/quoteswipe/internal/catalog"
	"github.com/csheth/quoteswipe/internal/scroller"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name       string
		width      int
		height     int
		fullHelp   bool
		pageWidth  int
		pageHeight int
		textWidth  int
	}{
		{name: "standard", width: 80, height: 24, pageWidth: 80, pageHeight: 23, textWidth: 64},
		{name: "full help", width: 80, height: 24, fullHelp: true, pageWidth: 80, pageHeight: 21, textWidth: 64},
		{name: "tiny", width: 10, height: 4, pageWidth: 20, pageHeight: 8, textWidth: 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height, tc.fullHelp)
			if layout.pageWidth != tc.pageWidth {
				t.Fatalf("page width mismatch: got %d want %d", layout.pageWidth, tc.pageWidth)
			}
			if layout.pageHeight != tc.pageHeight {
				t.Fatalf("page height mismatch: got %d want %d", layout.pageHeight, tc.pageHeight)
			}
			if got := layout.textWidth(); got != tc.textWidth {
				t.Fatalf("text width mismatch: got %d want %d", got, tc.textWidth)
			}
		})
	}
}

func TestPageContent(t *testing.T) {
	page := scroller.Page{
		Quote: catalog.Quote{
			Text:     "one two three four five six",
			Author:   "Someone",
			Category: catalog.Motivation,
		},
		Identity: scroller.Identity{Chunk: 2, Offset: 5},
	}
	content := pageContent(page, 10, "")

	if len(content.Header) != 2 || content.Header[1].Text != catalog.Motivation.Label() {
		t.Fatalf("unexpected header: %+v", content.Header)
	}
	var body []string
	for _, line := range content.Body {
		body = append(body, line.Text)
	}
	joined := strings.Join(body, "|")
	if !strings.HasPrefix(joined, "\"one two") {
		t.Fatalf("quote not wrapped at top of body: %q", joined)
	}
	if !strings.HasSuffix(joined, "|— Someone") {
		t.Fatalf("author missing from body: %q", joined)
	}
	if len(content.Body) < 4 {
		t.Fatalf("expected wrapped quote over several lines, got %q", joined)
	}
	if content.Footer[0].Text != instructionText {
		t.Fatalf("instruction missing: %+v", content.Footer)
	}

	withDetails := pageContent(page, 10, "id 2-5")
	if withDetails.Header[0].Text != "id 2-5" {
		t.Fatalf("details line missing: %+v", withDetails.Header)
	}
}
