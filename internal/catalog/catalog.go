package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySeed is returned when a catalog is requested from no seed quotes.
	ErrEmptySeed = errors.New("catalog: seed is empty")
	// ErrInvalidTarget is returned when the requested catalog length is not positive.
	ErrInvalidTarget = errors.New("catalog: target count must be positive")
	// ErrEmptyPalette is returned when no gradient colors are available.
	ErrEmptyPalette = errors.New("catalog: palette is empty")
)

// Category tags a quote with the theme it belongs to.
type Category int

const (
	SelfEsteem Category = iota
	Motivation
	CalmAnxiety
)

var categoryLabels = map[Category]string{
	SelfEsteem:  "자존감",
	Motivation:  "동기부여",
	CalmAnxiety: "불안다스림",
}

var categoryKeys = map[Category]string{
	SelfEsteem:  "self_esteem",
	Motivation:  "motivation",
	CalmAnxiety: "calm_anxiety",
}

// Label returns the display name shown next to a quote.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "unknown"
}

// String returns the stable key used in seed files and JSON output.
func (c Category) String() string {
	if key, ok := categoryKeys[c]; ok {
		return key
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory accepts either the stable key or the display label.
func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	for c, key := range categoryKeys {
		if strings.EqualFold(value, key) || value == categoryLabels[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("catalog: unknown category %q", value)
}

// Gradient is the two-color pair painted behind a quote.
type Gradient struct {
	From string
	To   string
}

// SeedQuote is a curated quote before it is placed in the catalog.
type SeedQuote struct {
	Text     string
	Author   string
	Category Category
}

// Quote is an immutable catalog entry.
type Quote struct {
	Text     string
	Author   string
	Gradient Gradient
	Category Category
}

// Catalog is the fixed-length sequence every chunk traverses.
type Catalog struct {
	quotes []Quote
}

// Len reports the number of quotes. It never changes after Build.
func (c Catalog) Len() int {
	return len(c.quotes)
}

// At returns the quote at index, which must lie in [0, Len()).
func (c Catalog) At(index int) Quote {
	return c.quotes[index]
}

// Quotes returns a copy of the catalog entries.
func (c Catalog) Quotes() []Quote {
	return append([]Quote(nil), c.quotes...)
}

// GradientFor pairs palette[index%n] with the next palette color, wrapping around.
func GradientFor(palette []string, index int) Gradient {
	n := len(palette)
	return Gradient{
		From: palette[index%n],
		To:   palette[(index+1)%n],
	}
}

// Build repeats seed cyclically until target quotes exist and assigns each
// position a gradient from palette. The result depends only on its inputs.
func Build(seed []SeedQuote, target int, palette []string) (Catalog, error) {
	if len(seed) == 0 {
		return Catalog{}, ErrEmptySeed
	}
	if target <= 0 {
		return Catalog{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	if len(palette) == 0 {
		return Catalog{}, ErrEmptyPalette
	}
	quotes := make([]Quote, target)
	for i := range quotes {
		item := seed[i%len(seed)]
		quotes[i] = Quote{
			Text:     item.Text,
			Author:   item.Author,
			Gradient: GradientFor(palette, i),
			Category: item.Category,
		}
	}
	return Catalog{quotes: quotes}, nil
}

// Default builds the catalog from the built-in seed and dark palette.
func Default(target int) (Catalog, error) {
	return Build(DefaultSeed(), target, DarkPalette())
}
