// Package rstar defines configuration options, arena record types, and
// sentinel errors for the R*-tree engine.
package rstar

import (
	"errors"

	"github.com/katalvlaran/rectmap/rect"
)

// Sentinel errors for option validation.
var (
	// ErrBadOptions indicates an invalid MaxEntries/MinEntries combination.
	ErrBadOptions = errors.New("rstar: invalid options")
)

// Options configures a Tree before creation.
//
// Fields:
//
//	MaxEntries - maximum children per node; a node splits when it exceeds this.
//	MinEntries - minimum children per non-root node and the smallest group
//	             size considered by the R* split (40% of MaxEntries is the
//	             literature's sweet spot).
type Options struct {
	MaxEntries int
	MinEntries int
}

// DefaultOptions returns an Options struct pre-populated with the
// production parameters.
//
//	MaxEntries: 10
//	MinEntries: 4
func DefaultOptions() Options {
	return Options{MaxEntries: 10, MinEntries: 4}
}

// Validate checks that Options fields hold a valid combination.
// It returns ErrBadOptions unless 2 ≤ MinEntries ≤ MaxEntries/2.
func (o *Options) Validate() error {
	if o.MinEntries < 2 || o.MaxEntries < 2*o.MinEntries {
		return ErrBadOptions
	}
	return nil
}

// nodeKind tags arena nodes: leaf children are entry indices, internal
// children are node indices.
type nodeKind int8

const (
	leafNode nodeKind = iota
	internalNode
)

// treeNode is one packed arena node.
type treeNode struct {
	kind     nodeKind
	mbr      rect.Rect
	children []int32
}

// record is one packed arena entry. active=false marks a tombstone left
// behind by a later overlapping insert; tombstones are invisible to
// queries and reclaimed on the next universal insert.
type record[T any] struct {
	mbr    rect.Rect
	value  T
	active bool
}

// treeState is the tagged top-level state of a Tree.
type treeState int8

const (
	stateEmpty treeState = iota
	stateGlobal
	statePopulated
)

// noNode marks an absent root.
const noNode int32 = -1
