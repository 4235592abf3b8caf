// Package spatial defines the Index interface, the Entry pair, and the
// stale-iterator sentinel for github.com/katalvlaran/rectmap.
package spatial

import (
	"errors"
	"iter"

	"github.com/katalvlaran/rectmap/rect"
)

// ErrStaleIterator is the panic value raised when a lazy query iterator is
// advanced after its source index has been mutated. This is a programming
// error (single-owner discipline violated), not a recoverable condition,
// hence a panic rather than an error return.
var ErrStaleIterator = errors.New("spatial: iterator advanced after index mutation")

// Entry is one stored (rectangle, value) pair yielded by queries.
type Entry[T any] struct {
	Rect  rect.Rect
	Value T
}

// Index is the contract every spatial-map engine satisfies.
//
// Semantics:
//   - Insert resolves overlaps last-writer-wins: the new rectangle wins on
//     its interior; prior entries are decomposed into residual fragments
//     keeping their old value. Invalid rectangles are rejected with
//     rect.ErrInvalidRect before any mutation.
//   - Query yields every stored entry intersecting r, lazily and in a
//     stable (engine-specific) order. Invalid query rectangles yield
//     nothing; queries never fail.
//   - All is the omitted-rectangle query form: every stored entry.
//   - The host must not mutate the index while a yielded iterator is live;
//     a stale iterator panics with ErrStaleIterator on its next advance.
type Index[T any] interface {
	Insert(r rect.Rect, v T) error
	Query(r rect.Rect) iter.Seq[Entry[T]]
	All() iter.Seq[Entry[T]]
	Len() int
	IsEmpty() bool
}
