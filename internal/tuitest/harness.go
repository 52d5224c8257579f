package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 30
	defaultTimeout = 8 * time.Second
	pollInterval   = 20 * time.Millisecond
)

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Step is one scripted action. Fields apply in order: wait Delay, block until
// the output contains WaitFor, resize the terminal, then write Input.
type Step struct {
	Delay   time.Duration
	WaitFor string
	Resize  *Size
	Input   []byte
}

// Config describes the binary under test and the PTY it runs in.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
}

// Recording contains the raw terminal stream plus parsed frames.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// transcript collects PTY output while steps poll it.
type transcript struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (t *transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

func (t *transcript) contains(text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(stripANSI(t.buf.String()), text)
}

func (t *transcript) bytes() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]byte(nil), t.buf.Bytes()...)
}

type session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	out  *transcript
	done chan struct{}
}

// Run starts cfg.Command in a PTY, plays cfg.Steps and records everything the
// program draws until it exits.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = withDefaults(cfg)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	start := time.Now()
	s, err := startSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ptmx.Close() }()

	for i, step := range cfg.Steps {
		if err := s.play(ctx, step); err != nil {
			return nil, fmt.Errorf("tuitest: step %d: %w", i, err)
		}
	}
	if err := s.wait(ctx, cfg.AllowedExitCodes); err != nil {
		return nil, err
	}

	raw := s.out.bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

func startSession(ctx context.Context, cfg Config) (*session, error) {
	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, winsize(Size{Width: cfg.Width, Height: cfg.Height}))
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	s := &session{cmd: cmd, ptmx: ptmx, out: &transcript{}, done: make(chan struct{})}
	go s.pump()
	return s, nil
}

// pump copies PTY output into the transcript and answers terminal queries
// until the PTY is closed.
func (s *session) pump() {
	defer close(s.done)
	responder := newTerminalResponder(s.ptmx)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			responder.Process(buf[:n])
			_, _ = s.out.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (s *session) play(ctx context.Context, step Step) error {
	if step.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step.Delay):
		}
	}
	if step.WaitFor != "" {
		if err := s.waitFor(ctx, step.WaitFor); err != nil {
			return err
		}
	}
	if step.Resize != nil {
		if err := pty.Setsize(s.ptmx, winsize(*step.Resize)); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}
	if len(step.Input) > 0 {
		if _, err := s.ptmx.Write(step.Input); err != nil {
			return fmt.Errorf("write input: %w", err)
		}
	}
	return nil
}

func (s *session) waitFor(ctx context.Context, text string) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for !s.out.contains(text) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %q: %w", text, ctx.Err())
		case <-ticker.C:
		}
	}
	return nil
}

func (s *session) wait(ctx context.Context, allowed []int) error {
	exited := make(chan error, 1)
	go func() { exited <- s.cmd.Wait() }()

	select {
	case err := <-exited:
		if err != nil && !exitAllowed(err, allowed) {
			return fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}
	// Closing the PTY lets pump drain and return.
	_ = s.ptmx.Close()
	<-s.done
	return nil
}

func exitAllowed(err error, allowed []int) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	for _, code := range allowed {
		if exitErr.ExitCode() == code {
			return true
		}
	}
	return false
}

func winsize(size Size) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(size.Height), Cols: uint16(size.Width)}
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

var (
	// KeyCtrlC is read as a key by programs in raw mode.
	KeyCtrlC = []byte{3}
	KeyEsc   = []byte{27}
	KeyUp    = []byte("\x1b[A")
	KeyDown  = []byte("\x1b[B")
	KeyPgUp  = []byte("\x1b[5~")
	KeyPgDn  = []byte("\x1b[6~")
)
