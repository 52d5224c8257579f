package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/csheth/quoteswipe/internal/tui"
)

// SwipeCmd runs the interactive pager.
type SwipeCmd struct {
	NoAltScreen bool   `help:"Disable the alternate screen buffer."`
	NoMouse     bool   `help:"Disable mouse wheel paging."`
	LogFile     string `help:"Write logs to this file." type:"path" placeholder:"PATH"`
	Debug       bool   `help:"Show page identity and window bounds."`
	Frames      int    `help:"Transition frames per swipe, 0 disables the slide." default:"-1" placeholder:"N"`
}

var isTerminal = func(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *SwipeCmd) Run(env *runEnv) error {
	if !isTerminal(env.stdin) {
		return errNotTerminal
	}
	cfg := env.cfg
	if c.LogFile != "" {
		cfg.Logging.File = c.LogFile
	}
	if c.Debug {
		cfg.Display.Debug = true
	}
	if c.Frames >= 0 {
		cfg.Display.TransitionFrames = c.Frames
	}
	if c.NoAltScreen {
		cfg.Display.AltScreen = false
	}
	if c.NoMouse {
		cfg.Display.Mouse = false
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return err
	}

	if cfg.Logging.File != "" {
		f, err := tea.LogToFile(cfg.Logging.File, appName)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	sessionID := uuid.NewString()
	log.Printf("[app] session=%s version=%s catalog=%d", sessionID, version, cat.Len())

	opts := []tea.ProgramOption{tea.WithInput(env.stdin), tea.WithOutput(env.stdout)}
	if cfg.Display.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Display.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Catalog:          cat,
			TransitionFrames: cfg.Display.TransitionFrames,
			FrameRate:        cfg.Display.FrameRate,
			Debug:            cfg.Display.Debug,
			SessionID:        sessionID,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
