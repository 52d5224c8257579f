package tuitest

import (
	"bytes"
	"io"
)

// reply answers one terminal query the program may send at startup.
type reply struct {
	query  []byte
	answer []byte
}

// Bubble Tea asks for the cursor position and, through termenv, the default
// colors. The pages are dark, so the fake terminal reports a black background.
var replies = []reply{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:ffff/ffff/ffff\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:ffff/ffff/ffff\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderWindow = 256
	responderTail   = 64
)

type terminalResponder struct {
	w       io.Writer
	pending []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, pending: make([]byte, 0, responderWindow)}
}

// Process scans output for queries, including ones split across reads, and
// writes the matching answers back in the order the queries appeared.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.pending = append(tr.pending, chunk...)
	for {
		idx, r := tr.earliest()
		if r == nil {
			break
		}
		_, _ = tr.w.Write(r.answer)
		tr.pending = tr.pending[idx+len(r.query):]
	}
	if len(tr.pending) > responderWindow {
		tr.pending = tr.pending[len(tr.pending)-responderTail:]
	}
}

func (tr *terminalResponder) earliest() (int, *reply) {
	best := -1
	var found *reply
	for i := range replies {
		idx := bytes.Index(tr.pending, replies[i].query)
		if idx >= 0 && (best < 0 || idx < best) {
			best, found = idx, &replies[i]
		}
	}
	return best, found
}
