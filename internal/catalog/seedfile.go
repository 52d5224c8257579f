package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Quotes []seedEntry `yaml:"quotes"`
}

type seedEntry struct {
	Text     string `yaml:"text"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
}

// LoadSeed reads a YAML seed file of the form
//
//	quotes:
//	  - text: "..."
//	    author: "..."
//	    category: motivation
//
// An empty author falls back to the anonymous label.
func LoadSeed(path string) ([]SeedQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed quotes from YAML bytes.
func ParseSeed(data []byte) ([]SeedQuote, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if len(file.Quotes) == 0 {
		return nil, ErrEmptySeed
	}
	seed := make([]SeedQuote, 0, len(file.Quotes))
	for i, entry := range file.Quotes {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			return nil, fmt.Errorf("seed quote %d: text is required", i)
		}
		category, err := ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("seed quote %d: %w", i, err)
		}
		author := strings.TrimSpace(entry.Author)
		if author == "" {
			author = anonymous
		}
		seed = append(seed, SeedQuote{Text: text, Author: author, Category: category})
	}
	return seed, nil
}
