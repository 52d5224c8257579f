package tuitest

import (
	"regexp"
	"strconv"
	"strings"
)

// Frame is one redraw with escape sequences stripped from Plain.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

// Details is the page details line the pager draws in debug mode.
type Details struct {
	Chunk      int
	Offset     int
	FirstChunk int
	LastChunk  int
	Page       int
	Pages      int
}

var (
	frameSeparator = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiPattern     = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern     = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
	detailsPattern = regexp.MustCompile(`id (-?\d+)-(\d+) · chunks \[(-?\d+), (-?\d+)\] · page (\d+)/(\d+)`)
)

func parseFrames(raw []byte) []Frame {
	cleaned := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range frameSeparator.Split(cleaned, -1) {
		segment = strings.TrimPrefix(strings.Trim(segment, "\x00"), "\x1b[H")
		plain := normalizeLines(stripANSI(segment))
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	return frames
}

// FinalFrame returns the last captured frame.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// FrameContaining returns the latest frame whose plain text contains text.
func (r *Recording) FrameContaining(text string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for i := len(r.Frames) - 1; i >= 0; i-- {
		if strings.Contains(r.Frames[i].Plain, text) {
			return r.Frames[i], true
		}
	}
	return Frame{}, false
}

// Details returns every details line drawn during the run, in order.
// Consecutive repeats from redraws are collapsed.
func (r *Recording) Details() []Details {
	if r == nil {
		return nil
	}
	var out []Details
	for _, m := range detailsPattern.FindAllStringSubmatch(stripANSI(strings.ReplaceAll(string(r.Raw), "\r", "")), -1) {
		d := Details{
			Chunk:      atoi(m[1]),
			Offset:     atoi(m[2]),
			FirstChunk: atoi(m[3]),
			LastChunk:  atoi(m[4]),
			Page:       atoi(m[5]),
			Pages:      atoi(m[6]),
		}
		if len(out) > 0 && out[len(out)-1] == d {
			continue
		}
		out = append(out, d)
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func stripANSI(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	return strings.NewReplacer("\x0f", "", "\x0e", "").Replace(s)
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
