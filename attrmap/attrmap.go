// Package attrmap defines the partitioned coordinator Map and its
// sentinel errors.
package attrmap

import (
	"errors"
	"iter"
	"sort"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
)

// Sentinel errors for coordinator construction.
var (
	// ErrNilFactory indicates New was called without a sub-index factory.
	ErrNilFactory = errors.New("attrmap: nil sub-index factory")
)

// Factory constructs one fresh, empty sub-index. It is invoked lazily, on
// the first Set for a key.
type Factory[V any] func() spatial.Index[V]

// Map coordinates one independent spatial index per attribute key.
//
// A Map must be owned by a single goroutine, like the engines it wraps.
type Map[K comparable, V any] struct {
	factory Factory[V]
	parts   map[K]spatial.Index[V]
}

// New returns an empty coordinator whose partitions are built by factory.
// Returns ErrNilFactory if factory is nil.
func New[K comparable, V any](factory Factory[V]) (*Map[K, V], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	return &Map[K, V]{factory: factory, parts: make(map[K]spatial.Index[V])}, nil
}

// Set writes value v for attribute key at rectangle r. The partition for
// key is created on first use; last-writer-wins applies within that
// partition only. Returns rect.ErrInvalidRect on a malformed rectangle
// (the partition is still created lazily only on success paths: validation
// happens before instantiation).
func (m *Map[K, V]) Set(r rect.Rect, key K, v V) error {
	if err := r.Validate(); err != nil {
		return err
	}
	part, ok := m.parts[key]
	if !ok {
		part = m.factory()
		m.parts[key] = part
	}

	return part.Insert(r, v)
}

// Insert applies Set for every key present in the partial record. Absent
// keys are untouched; an explicit zero value counts as present.
func (m *Map[K, V]) Insert(r rect.Rect, partial map[K]V) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for key, v := range partial {
		if err := m.Set(r, key, v); err != nil {
			return err
		}
	}

	return nil
}

// Keys returns the keys of every instantiated partition, in no particular
// order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, len(m.parts))
	for k := range m.parts {
		out = append(out, k)
	}

	return out
}

// SizeOf returns the entry count of the partition for key, or 0 when the
// partition was never created.
func (m *Map[K, V]) SizeOf(key K) int {
	if part, ok := m.parts[key]; ok {
		return part.Len()
	}

	return 0
}

// Len returns the total entry count across all partitions.
func (m *Map[K, V]) Len() int {
	total := 0
	for _, part := range m.parts {
		total += part.Len()
	}

	return total
}

// IsEmpty reports whether no partition holds any entry.
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// Clear drops every partition; factories run again on the next Set.
func (m *Map[K, V]) Clear() {
	m.parts = make(map[K]spatial.Index[V])
}

// Query lazily yields every boundary-sweep cell covered by at least one
// partition, tagged with the merged attribute values at that cell.
//
// The sweep: collect each partition's results intersecting r, gather the
// combined x cuts {xmin, xmax+1} and y cuts {ymin, ymax+1}, then probe
// every cell between adjacent cuts against every partition. Within one
// partition results are disjoint, so at most one can contain a cell.
func (m *Map[K, V]) Query(r rect.Rect) iter.Seq[spatial.Entry[map[K]V]] {
	return func(yield func(spatial.Entry[map[K]V]) bool) {
		q := r.Canonicalize()
		if q.Validate() != nil {
			return
		}

		// 1) Snapshot per-partition results and collect the cut sets.
		type hit struct {
			rect  rect.Rect
			value V
		}
		results := make(map[K][]hit, len(m.parts))
		xs := make(map[int64]struct{})
		ys := make(map[int64]struct{})
		for key, part := range m.parts {
			part.Query(q)(func(e spatial.Entry[V]) bool {
				results[key] = append(results[key], hit{rect: e.Rect, value: e.Value})
				xs[e.Rect.XMin] = struct{}{}
				xs[e.Rect.XMax+1] = struct{}{}
				ys[e.Rect.YMin] = struct{}{}
				ys[e.Rect.YMax+1] = struct{}{}
				return true
			})
		}
		if len(xs) < 2 || len(ys) < 2 {
			return
		}
		xcuts := sortedCuts(xs)
		ycuts := sortedCuts(ys)

		// 2) Probe every candidate cell against every partition.
		for xi := 0; xi+1 < len(xcuts); xi++ {
			for yi := 0; yi+1 < len(ycuts); yi++ {
				cell := rect.Rect{
					XMin: xcuts[xi], YMin: ycuts[yi],
					XMax: xcuts[xi+1] - 1, YMax: ycuts[yi+1] - 1,
				}
				merged := make(map[K]V)
				for key, hits := range results {
					for i := range hits {
						if hits[i].rect.Contains(cell) {
							merged[key] = hits[i].value
							break // disjoint within a partition
						}
					}
				}
				if len(merged) == 0 {
					continue
				}
				if !yield(spatial.Entry[map[K]V]{Rect: cell, Value: merged}) {
					return
				}
			}
		}
	}
}

// sortedCuts flattens a cut set into ascending order.
func sortedCuts(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
