package tuitest

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mfirst\x1b[0m   \r\n\x1b[2Jsecond page\r\n\r\n")
	frames := parseFrames(raw)
	require.Len(t, frames, 2)
	require.Equal(t, "first", frames[0].Plain)
	require.Equal(t, "second page", frames[1].Plain)
	require.Equal(t, 1, frames[1].Index)
}

func TestParseFramesWithoutSeparator(t *testing.T) {
	frames := parseFrames([]byte("\x1b]0;title\x07only frame"))
	require.Len(t, frames, 1)
	require.Equal(t, "only frame", frames[0].Plain)
}

func TestFrameContainingPrefersLatest(t *testing.T) {
	rec := &Recording{Frames: []Frame{
		{Index: 0, Plain: "page 1 quit"},
		{Index: 1, Plain: "page 2 quit"},
		{Index: 2, Plain: "bye"},
	}}
	frame, ok := rec.FrameContaining("quit")
	require.True(t, ok)
	require.Equal(t, 1, frame.Index)

	_, ok = rec.FrameContaining("missing")
	require.False(t, ok)

	final, ok := rec.FinalFrame()
	require.True(t, ok)
	require.Equal(t, "bye", final.Plain)

	var empty *Recording
	_, ok = empty.FinalFrame()
	require.False(t, ok)
}

func TestTerminalResponderAnswersQueries(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("abc\x1b[6"))
	require.Zero(t, out.Len())
	tr.Process([]byte("n\x1b]11;?\x07"))
	require.Equal(t, "\x1b[1;1R\x1b]11;rgb:0000/0000/0000\x07", out.String())
}

func TestDetailsCollapsesRedraws(t *testing.T) {
	raw := "\x1b[2J\x1b[38;5;244mid 0-0 · chunks [-1, 1] · page 2/6\x1b[0m\r\n" +
		"\x1b[2Jid 0-0 · chunks [-1, 1] · page 2/6\r\n" +
		"\x1b[2Jid -1-1 · chunks [-2, 1] · page 1/8\r\n" +
		"\x1b[2Jid -1-1 · chunks [-2, 1] · page 3/8\r\n"
	rec := &Recording{Raw: []byte(raw)}

	got := rec.Details()
	require.Equal(t, []Details{
		{Chunk: 0, Offset: 0, FirstChunk: -1, LastChunk: 1, Page: 2, Pages: 6},
		{Chunk: -1, Offset: 1, FirstChunk: -2, LastChunk: 1, Page: 1, Pages: 8},
		{Chunk: -1, Offset: 1, FirstChunk: -2, LastChunk: 1, Page: 3, Pages: 8},
	}, got)

	var empty *Recording
	require.Nil(t, empty.Details())
}

func TestTranscriptMatchesPlainText(t *testing.T) {
	var tr transcript
	_, _ = tr.Write([]byte("\x1b[1mchunks\x1b[0m [-2"))
	_, _ = tr.Write([]byte(", 1]"))
	require.True(t, tr.contains("chunks [-2, 1]"))
	require.False(t, tr.contains("chunks [-3"))
	require.Equal(t, "\x1b[1mchunks\x1b[0m [-2, 1]", string(tr.bytes()))
}

func TestWithDefaults(t *testing.T) {
	cfg := withDefaults(Config{Command: []string{"x"}, Height: 12})
	require.Equal(t, defaultWidth, cfg.Width)
	require.Equal(t, 12, cfg.Height)
	require.Equal(t, defaultTimeout, cfg.Timeout)

	ws := winsize(Size{Width: 40, Height: 10})
	require.EqualValues(t, 40, ws.Cols)
	require.EqualValues(t, 10, ws.Rows)
}

func TestExitAllowed(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, err)
	require.True(t, exitAllowed(err, []int{3}))
	require.False(t, exitAllowed(err, []int{1}))
	require.False(t, exitAllowed(errors.New("boom"), []int{3}))
}

func TestRunRequiresCommand(t *testing.T) {
	_, err := Run(context.Background(), Config{Timeout: time.Second})
	require.Error(t, err)
}
