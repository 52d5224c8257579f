// Package scroller windows a fixed catalog into a growable, gap-free list of
// pages so a pager can scroll through it in either direction indefinitely.
//
// Chunk k is one full traversal of the catalog. The window keeps a contiguous
// run of chunks [first, last]; page p of the window shows catalog entry
// p % catalogLen, and only its Identity depends on the chunk.
package scroller

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_surface.go -package=mocks github.com/csheth/quoteswipe/internal/scroller Surface

import (
	"fmt"

	"github.com/csheth/quoteswipe/internal/catalog"
)

// InitialChunks is the number of chunks materialized by New: -1, 0 and 1.
const InitialChunks = 3

// Surface is the part of the paging surface the window needs to correct the
// settled page after growing at the front.
type Surface interface {
	// JumpWithoutAnimation moves the current page to index with no
	// transition and without emitting a settle event.
	JumpWithoutAnimation(index int)
}

// Identity distinguishes repeated catalog content: Chunk is the traversal,
// Offset the position inside it.
type Identity struct {
	Chunk  int
	Offset int
}

func (id Identity) String() string {
	return fmt.Sprintf("%d-%d", id.Chunk, id.Offset)
}

// Page is one materialized entry of the window.
type Page struct {
	Quote    catalog.Quote
	Identity Identity
}

// Correction is the deferred jump produced by GrowBackward.
type Correction struct {
	From   int
	Target int
}

// Settlement reports what OnPageSettled did.
type Settlement struct {
	Index        int
	GrewForward  bool
	GrewBackward bool
	Correction   Correction
}

// Window is the mutable scroll state for one mounted screen. It is not safe
// for concurrent use; the host delivers settle events one at a time.
type Window struct {
	catalog    catalog.Catalog
	size       int
	items      []Identity
	firstChunk int
	lastChunk  int
	current    int
	pending    []Correction
}

// New materializes chunks -1, 0 and 1 and places the current page at the
// first page of chunk 0. The catalog must not be empty.
func New(cat catalog.Catalog) *Window {
	size := cat.Len()
	if size <= 0 {
		panic("scroller: catalog is empty")
	}
	w := &Window{
		catalog:    cat,
		size:       size,
		items:      make([]Identity, 0, InitialChunks*size),
		firstChunk: -1,
		lastChunk:  1,
		current:    size,
	}
	for chunk := w.firstChunk; chunk <= w.lastChunk; chunk++ {
		w.items = append(w.items, makeChunk(chunk, size)...)
	}
	w.mustBeConsistent()
	return w
}

func makeChunk(chunk, size int) []Identity {
	ids := make([]Identity, size)
	for i := range ids {
		ids[i] = Identity{Chunk: chunk, Offset: i}
	}
	return ids
}

// ChunkSize is the catalog length, i.e. the number of pages per chunk.
func (w *Window) ChunkSize() int { return w.size }

// Len is the number of materialized pages.
func (w *Window) Len() int { return len(w.items) }

// Current is the last settled (or corrected) page index. Between
// GrowBackward and Commit it still holds the index from before the prepend,
// which now names a page of the new first chunk; read it after Commit when
// Pending is true.
func (w *Window) Current() int { return w.current }

// Bounds returns the inclusive range of materialized chunk indexes.
func (w *Window) Bounds() (first, last int) { return w.firstChunk, w.lastChunk }

// Pending reports whether a front-growth correction still has to be committed.
func (w *Window) Pending() bool { return len(w.pending) > 0 }

// Page returns the page at index. The quote is looked up in the catalog by
// index modulo the chunk size.
func (w *Window) Page(index int) Page {
	id := w.items[index]
	return Page{Quote: w.catalog.At(index % w.size), Identity: id}
}

// Identities returns a copy of the materialized page identities in order.
func (w *Window) Identities() []Identity {
	return append([]Identity(nil), w.items...)
}

// OnPageSettled records the page the user came to rest on and grows the
// window when that page lies in the first or last materialized chunk. Both
// checks run on every call.
func (w *Window) OnPageSettled(index int) Settlement {
	if index < 0 || index >= len(w.items) {
		panic(fmt.Sprintf("scroller: settled index %d outside [0, %d)", index, len(w.items)))
	}
	w.current = index
	result := Settlement{Index: index}
	if index >= len(w.items)-w.size {
		w.GrowForward()
		result.GrewForward = true
	}
	if index < w.size {
		result.Correction = w.GrowBackward(index)
		result.GrewBackward = true
	}
	return result
}

// GrowForward appends chunk last+1. Existing offsets are unchanged.
func (w *Window) GrowForward() {
	next := w.lastChunk + 1
	w.items = append(w.items, makeChunk(next, w.size)...)
	w.lastChunk = next
	w.mustBeConsistent()
}

// GrowBackward prepends chunk first-1, shifting every existing page by one
// chunk. The returned correction is queued and takes effect on Commit, which
// the host must call only after the surface has observed the new length.
func (w *Window) GrowBackward(position int) Correction {
	prev := w.firstChunk - 1
	grown := make([]Identity, 0, len(w.items)+w.size)
	grown = append(grown, makeChunk(prev, w.size)...)
	grown = append(grown, w.items...)
	w.items = grown
	w.firstChunk = prev
	w.mustBeConsistent()

	correction := Correction{From: position, Target: position + w.size}
	w.pending = append(w.pending, correction)
	return correction
}

// Commit applies queued corrections in order: the surface jumps without
// animation and the current page follows. It returns the number applied.
func (w *Window) Commit(surface Surface) int {
	applied := 0
	for _, c := range w.pending {
		if c.Target < 0 || c.Target >= len(w.items) {
			panic(fmt.Sprintf("scroller: correction target %d outside [0, %d)", c.Target, len(w.items)))
		}
		surface.JumpWithoutAnimation(c.Target)
		w.current = c.Target
		applied++
	}
	w.pending = w.pending[:0]
	return applied
}

func (w *Window) mustBeConsistent() {
	if w.firstChunk > w.lastChunk {
		panic(fmt.Sprintf("scroller: first chunk %d after last chunk %d", w.firstChunk, w.lastChunk))
	}
	want := (w.lastChunk - w.firstChunk + 1) * w.size
	if len(w.items) != want {
		panic(fmt.Sprintf("scroller: %d pages for chunks [%d, %d], want %d", len(w.items), w.firstChunk, w.lastChunk, want))
	}
}
