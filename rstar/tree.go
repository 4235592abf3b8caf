package rstar

import (
	"iter"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
)

// Tree is an R*-tree spatial index over values of type T.
//
// A Tree must be owned by a single goroutine: no internal locking, and
// mutating while a query iterator is live panics the iterator with
// spatial.ErrStaleIterator.
//
// The zero value is NOT usable; construct with New or NewWithOptions.
type Tree[T any] struct {
	opts    Options
	nodes   []treeNode
	entries []record[T]
	root    int32
	state   treeState
	global  T
	alive   int
	version uint64
}

// Compile-time conformance with the shared engine contract.
var _ spatial.Index[int] = (*Tree[int])(nil)

// New returns an empty Tree with the production branching parameters
// (MaxEntries=10, MinEntries=4).
func New[T any]() *Tree[T] {
	t, _ := NewWithOptions[T](DefaultOptions())
	return t
}

// NewWithOptions returns an empty Tree configured by opts.
// Returns ErrBadOptions if opts fails validation.
func NewWithOptions[T any](opts Options) (*Tree[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{opts: opts, root: noNode}, nil
}

// Len returns the number of live entries (the global value counts as one).
func (t *Tree[T]) Len() int {
	if t.state == stateGlobal {
		return 1
	}
	return t.alive
}

// IsEmpty reports whether the tree holds no live entries.
func (t *Tree[T]) IsEmpty() bool { return t.Len() == 0 }

// Query lazily yields every live entry whose rectangle intersects r, in
// MBR-pruned depth-first order. An invalid r yields nothing (queries never
// fail). The iterator panics with spatial.ErrStaleIterator if the tree is
// mutated between advances.
func (t *Tree[T]) Query(r rect.Rect) iter.Seq[spatial.Entry[T]] {
	q := r.Canonicalize()
	valid := q.Validate() == nil
	stamp := t.version

	return func(yield func(spatial.Entry[T]) bool) {
		if !valid {
			return
		}
		t.scan(stamp, q, true, yield)
	}
}

// All lazily yields every live entry in depth-first order.
func (t *Tree[T]) All() iter.Seq[spatial.Entry[T]] {
	stamp := t.version

	return func(yield func(spatial.Entry[T]) bool) {
		t.scan(stamp, rect.Rect{}, false, yield)
	}
}

// scan walks the tree with an explicit stack, pruning by MBR when filtered.
func (t *Tree[T]) scan(stamp uint64, q rect.Rect, filtered bool, yield func(spatial.Entry[T]) bool) {
	if t.version != stamp {
		panic(spatial.ErrStaleIterator)
	}
	if t.state == stateGlobal {
		yield(spatial.Entry[T]{Rect: rect.All, Value: t.global})
		return
	}
	if t.root == noNode {
		return
	}

	stack := []int32{t.root}
	for len(stack) > 0 {
		if t.version != stamp {
			panic(spatial.ErrStaleIterator)
		}
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[idx]
		if filtered && !n.mbr.Intersects(q) {
			continue
		}
		if n.kind == internalNode {
			// Push in reverse so the leftmost child is visited first,
			// keeping iteration order stable across identical trees.
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
			continue
		}
		for _, ei := range n.children {
			if t.version != stamp {
				panic(spatial.ErrStaleIterator)
			}
			e := &t.entries[ei]
			if !e.active {
				continue
			}
			if filtered && !e.mbr.Intersects(q) {
				continue
			}
			if !yield(spatial.Entry[T]{Rect: e.mbr, Value: e.value}) {
				return
			}
		}
	}
}
