// Package gradient paints a full-screen vertical two-color gradient and
// centers text content on top of it.
package gradient

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/quoteswipe/internal/catalog"
)

var fallbackColor = colorful.Color{R: 0, G: 0, B: 0}

// Line is one centered row of foreground content.
type Line struct {
	Text   string
	Bold   bool
	Italic bool
	Faint  bool
}

// Content is the block drawn over the gradient. Body is vertically centered;
// Footer sticks to the bottom rows and Header to the top rows.
type Content struct {
	Header []Line
	Body   []Line
	Footer []Line
}

// Validate reports whether both stops are parseable hex colors.
func Validate(g catalog.Gradient) error {
	if _, err := colorful.Hex(g.From); err != nil {
		return fmt.Errorf("gradient start %q: %w", g.From, err)
	}
	if _, err := colorful.Hex(g.To); err != nil {
		return fmt.Errorf("gradient end %q: %w", g.To, err)
	}
	return nil
}

// Stops returns n colors blended in Lab space from g.From to g.To inclusive.
// Unparseable stops fall back to black.
func Stops(g catalog.Gradient, n int) []string {
	if n <= 0 {
		return nil
	}
	from := parseOrFallback(g.From)
	to := parseOrFallback(g.To)
	stops := make([]string, n)
	for i := range stops {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		stops[i] = from.BlendLab(to, t).Clamped().Hex()
	}
	return stops
}

func parseOrFallback(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	return c
}

// Render fills a width x height block with the gradient and places content on
// it. Every returned row is exactly width cells wide.
func Render(g catalog.Gradient, width, height int, content Content) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := layout(content, height)
	stops := Stops(g, height)
	out := make([]string, height)
	for y := 0; y < height; y++ {
		style := lipgloss.NewStyle().
			Width(width).
			MaxWidth(width).
			Align(lipgloss.Center).
			Background(lipgloss.Color(stops[y])).
			Foreground(lipgloss.Color("#ffffff"))
		line := rows[y]
		if line.Faint {
			style = style.Foreground(lipgloss.Color("#b3b3b3"))
		}
		style = style.Bold(line.Bold).Italic(line.Italic)
		out[y] = style.Render(truncate.StringWithTail(line.Text, uint(width), "…"))
	}
	return strings.Join(out, "\n")
}

// layout assigns content lines to rows. When the content is taller than the
// block the body is truncated from the end.
func layout(content Content, height int) []Line {
	rows := make([]Line, height)
	top := 0
	for _, line := range content.Header {
		if top >= height {
			break
		}
		rows[top] = line
		top++
	}
	bottom := height
	for i := len(content.Footer) - 1; i >= 0 && bottom > top; i-- {
		bottom--
		rows[bottom] = content.Footer[i]
	}
	space := bottom - top
	body := content.Body
	if len(body) > space {
		body = body[:space]
	}
	start := top + (space-len(body))/2
	for i, line := range body {
		rows[start+i] = line
	}
	return rows
}
