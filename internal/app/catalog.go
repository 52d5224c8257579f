package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/csheth/quoteswipe/internal/catalog"
)

const (
	categoryColumnWidth = 12
	textColumnWidth     = 48
)

// CatalogCmd prints the catalog the pager would cycle through.
type CatalogCmd struct {
	JSON  bool `help:"Emit JSON instead of a table."`
	Limit int  `help:"Print at most N entries, 0 prints all." placeholder:"N"`
}

type catalogEntry struct {
	Index    int       `json:"index"`
	Text     string    `json:"text"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
	Gradient [2]string `json:"gradient"`
}

func (c *CatalogCmd) Run(env *runEnv) error {
	cat, err := env.cfg.BuildCatalog()
	if err != nil {
		return err
	}
	quotes := cat.Quotes()
	if c.Limit > 0 && c.Limit < len(quotes) {
		quotes = quotes[:c.Limit]
	}
	if c.JSON {
		return writeCatalogJSON(env.stdout, quotes)
	}
	return writeCatalogTable(env.stdout, quotes)
}

func writeCatalogJSON(w io.Writer, quotes []catalog.Quote) error {
	entries := make([]catalogEntry, 0, len(quotes))
	for i, q := range quotes {
		entries = append(entries, catalogEntry{
			Index:    i,
			Text:     q.Text,
			Author:   q.Author,
			Category: q.Category.String(),
			Gradient: [2]string{q.Gradient.From, q.Gradient.To},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func writeCatalogTable(w io.Writer, quotes []catalog.Quote) error {
	if _, err := fmt.Fprintf(w, "%5s  %s  %-15s  %s\n", "#",
		runewidth.FillRight("CATEGORY", categoryColumnWidth), "GRADIENT", "QUOTE"); err != nil {
		return err
	}
	for i, q := range quotes {
		text := runewidth.Truncate(q.Text, textColumnWidth, "…")
		_, err := fmt.Fprintf(w, "%5d  %s  %s→%s  %s — %s\n",
			i,
			runewidth.FillRight(q.Category.Label(), categoryColumnWidth),
			q.Gradient.From, q.Gradient.To,
			text, q.Author,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
