package linearscan

import (
	"iter"
	"sort"

	"github.com/katalvlaran/rectmap/curve"
	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
)

// entry is one stored pair plus its cached centroid Morton code.
type entry[T any] struct {
	rect  rect.Rect
	value T
	code  uint32
}

// Map is an ordered linear-scan spatial index over values of type T.
//
// Entries are kept sorted non-decreasingly by centroid Morton code; equal
// codes keep arrival order. A Map must be owned by a single goroutine: no
// internal locking, and mutating while a query iterator is live panics the
// iterator with spatial.ErrStaleIterator.
//
// The zero value is NOT usable; construct with New or NewWithOptions.
type Map[T any] struct {
	entries []entry[T]
	version uint64
}

// Compile-time conformance with the shared engine contract.
var _ spatial.Index[int] = (*Map[int])(nil)

// New returns an empty Map with default options.
func New[T any]() *Map[T] {
	m, _ := NewWithOptions[T](DefaultOptions())
	return m
}

// NewWithOptions returns an empty Map configured by opts.
// Returns ErrBadOptions if opts fails validation.
func NewWithOptions[T any](opts Options) (*Map[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Map[T]{entries: make([]entry[T], 0, opts.InitialCapacity)}, nil
}

// Len returns the number of stored entries.
func (m *Map[T]) Len() int { return len(m.entries) }

// IsEmpty reports whether the map holds no entries.
func (m *Map[T]) IsEmpty() bool { return len(m.entries) == 0 }

// Insert stores value v at rectangle r with last-writer-wins overlap
// resolution: r wins on its interior, every pre-existing overlap is
// decomposed into at most four residual fragments keeping its old value.
//
// Returns rect.ErrInvalidRect (store untouched) on a malformed rectangle.
//
// Complexity: O(n + k·log n), where k counts the re-inserted fragments.
func (m *Map[T]) Insert(r rect.Rect, v T) error {
	// 1) Validate before any mutation.
	if err := r.Validate(); err != nil {
		return err
	}
	r = r.Canonicalize()
	m.version++

	// 2) Partition in place: non-overlapping entries compact forward,
	//    overlapping ones are set aside for decomposition.
	overlapping := m.partitionOverlaps(r)

	// 3) Re-insert the residual fragments of every displaced entry.
	for i := range overlapping {
		e := &overlapping[i]
		if r.Contains(e.rect) {
			continue // fully swallowed; Subtract would yield nothing
		}
		for _, frag := range e.rect.Subtract(r) {
			m.insertSorted(entry[T]{rect: frag, value: e.value, code: curve.MortonCenter(frag)})
		}
	}

	// 4) Commit the winning rectangle itself.
	m.insertSorted(entry[T]{rect: r, value: v, code: curve.MortonCenter(r)})

	return nil
}

// partitionOverlaps splits the store around r in a single pass. Entries
// disjoint from r keep their relative (sorted) order; the returned slice
// holds the displaced overlapping entries.
func (m *Map[T]) partitionOverlaps(r rect.Rect) []entry[T] {
	var overlapping []entry[T]
	kept := 0
	for i := range m.entries {
		if m.entries[i].rect.Intersects(r) {
			overlapping = append(overlapping, m.entries[i])
			continue
		}
		m.entries[kept] = m.entries[i]
		kept++
	}
	m.entries = m.entries[:kept]

	return overlapping
}

// insertSorted places e at its upper-bound Morton position, so entries with
// equal codes keep arrival order.
func (m *Map[T]) insertSorted(e entry[T]) {
	at := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].code > e.code
	})
	m.entries = append(m.entries, entry[T]{})
	copy(m.entries[at+1:], m.entries[at:])
	m.entries[at] = e
}

// Query lazily yields every stored entry whose rectangle intersects r, in
// Morton order. An invalid r yields nothing (queries never fail). The
// iterator panics with spatial.ErrStaleIterator if the map is mutated
// between advances.
func (m *Map[T]) Query(r rect.Rect) iter.Seq[spatial.Entry[T]] {
	q := r.Canonicalize()
	valid := q.Validate() == nil
	stamp := m.version

	return func(yield func(spatial.Entry[T]) bool) {
		if !valid {
			return
		}
		for i := range m.entries {
			if m.version != stamp {
				panic(spatial.ErrStaleIterator)
			}
			if m.entries[i].rect.Intersects(q) {
				if !yield(spatial.Entry[T]{Rect: m.entries[i].rect, Value: m.entries[i].value}) {
					return
				}
			}
		}
	}
}

// All lazily yields every stored entry in Morton order.
func (m *Map[T]) All() iter.Seq[spatial.Entry[T]] {
	stamp := m.version

	return func(yield func(spatial.Entry[T]) bool) {
		for i := range m.entries {
			if m.version != stamp {
				panic(spatial.ErrStaleIterator)
			}
			if !yield(spatial.Entry[T]{Rect: m.entries[i].rect, Value: m.entries[i].value}) {
				return
			}
		}
	}
}
