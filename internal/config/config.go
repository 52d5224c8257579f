package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/csheth/quoteswipe/internal/catalog"
	"github.com/csheth/quoteswipe/internal/gradient"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all quoteswipe settings.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig controls how the quote catalog is built.
type CatalogConfig struct {
	TargetCount int      `yaml:"target_count"`
	SeedFile    string   `yaml:"seed_file"`
	Palette     []string `yaml:"palette"`
}

// DisplayConfig holds terminal and pager presentation settings.
type DisplayConfig struct {
	AltScreen        bool `yaml:"alt_screen"`
	Mouse            bool `yaml:"mouse"`
	TransitionFrames int  `yaml:"transition_frames"`
	FrameRate        int  `yaml:"frame_rate"`
	Debug            bool `yaml:"debug"`
}

// LoggingConfig selects where logs go; an empty File discards them.
type LoggingConfig struct {
	File string `yaml:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			TargetCount: catalog.DefaultTargetCount,
			Palette:     catalog.DarkPalette(),
		},
		Display: DisplayConfig{
			AltScreen:        true,
			Mouse:            true,
			TransitionFrames: 6,
			FrameRate:        60,
		},
	}
}

// Load reads a YAML config file at path and merges it over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv loads a .env file from the working directory when present and
// overrides settings from QUOTESWIPE_* variables. Variables already set in
// the environment win over .env values.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("QUOTESWIPE_TARGET_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: QUOTESWIPE_TARGET_COUNT=%q is not a number", ErrInvalid, v)
		}
		c.Catalog.TargetCount = n
	}
	c.Catalog.SeedFile = getEnv("QUOTESWIPE_SEED_FILE", c.Catalog.SeedFile)
	c.Logging.File = getEnv("QUOTESWIPE_LOG_FILE", c.Logging.File)
	if v := os.Getenv("QUOTESWIPE_PALETTE"); v != "" {
		var palette []string
		for _, color := range strings.Split(v, ",") {
			if color = strings.TrimSpace(color); color != "" {
				palette = append(palette, color)
			}
		}
		c.Catalog.Palette = palette
	}
	if v := os.Getenv("QUOTESWIPE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: QUOTESWIPE_DEBUG=%q is not a boolean", ErrInvalid, v)
		}
		c.Display.Debug = debug
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate rejects settings that would make the catalog or pager unusable.
func (c *Config) Validate() error {
	if c.Catalog.TargetCount <= 0 {
		return fmt.Errorf("%w: catalog.target_count must be positive, got %d", ErrInvalid, c.Catalog.TargetCount)
	}
	if len(c.Catalog.Palette) == 0 {
		return fmt.Errorf("%w: catalog.palette is empty", ErrInvalid)
	}
	for i, color := range c.Catalog.Palette {
		if err := gradient.Validate(catalog.Gradient{From: color, To: color}); err != nil {
			return fmt.Errorf("%w: catalog.palette[%d]: %v", ErrInvalid, i, err)
		}
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("%w: display.frame_rate must be positive, got %d", ErrInvalid, c.Display.FrameRate)
	}
	if c.Display.TransitionFrames < 0 {
		return fmt.Errorf("%w: display.transition_frames must not be negative, got %d", ErrInvalid, c.Display.TransitionFrames)
	}
	return nil
}

// Seed returns the configured seed quotes, reading SeedFile when set.
func (c *Config) Seed() ([]catalog.SeedQuote, error) {
	if c.Catalog.SeedFile == "" {
		return catalog.DefaultSeed(), nil
	}
	path, err := expandPath(c.Catalog.SeedFile)
	if err != nil {
		return nil, err
	}
	return catalog.LoadSeed(path)
}

// BuildCatalog validates the config and builds the catalog from it.
func (c *Config) BuildCatalog() (catalog.Catalog, error) {
	if err := c.Validate(); err != nil {
		return catalog.Catalog{}, err
	}
	seed, err := c.Seed()
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Build(seed, c.Catalog.TargetCount, c.Catalog.Palette)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
