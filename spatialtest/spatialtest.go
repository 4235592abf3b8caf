package spatialtest

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
)

// Factory builds one fresh, empty index for a conformance run.
type Factory[T any] func() spatial.Index[T]

// Pair identifies a stored entry for set comparison.
type Pair[T comparable] struct {
	Rect  rect.Rect
	Value T
}

// Collect drains a lazy sequence into a slice.
func Collect[T any](seq iter.Seq[spatial.Entry[T]]) []spatial.Entry[T] {
	var out []spatial.Entry[T]
	seq(func(e spatial.Entry[T]) bool {
		out = append(out, e)
		return true
	})

	return out
}

// EntrySet snapshots the full store as a set, for cross-engine equality:
// two conforming engines fed the same insert sequence must produce equal
// sets, not merely equal counts.
func EntrySet[T comparable](idx spatial.Index[T]) map[Pair[T]]struct{} {
	set := make(map[Pair[T]]struct{}, idx.Len())
	for _, e := range Collect(idx.All()) {
		set[Pair[T]{Rect: e.Rect, Value: e.Value}] = struct{}{}
	}

	return set
}

// CheckInvariants asserts the universal store axioms on the current state
// of idx: non-duplication, pairwise disjointness, and the consistency of
// Len, IsEmpty, All, and the universal query.
func CheckInvariants[T comparable](tb testing.TB, idx spatial.Index[T]) {
	tb.Helper()

	entries := Collect(idx.All())
	require.Equal(tb, idx.Len(), len(entries), "Len must match All()")
	require.Equal(tb, idx.Len() == 0, idx.IsEmpty(), "IsEmpty must track Len")
	require.Equal(tb, len(entries), len(Collect(idx.Query(rect.All))),
		"universal query must yield the whole store")

	seen := make(map[Pair[T]]struct{}, len(entries))
	for _, e := range entries {
		p := Pair[T]{Rect: e.Rect, Value: e.Value}
		_, dup := seen[p]
		require.False(tb, dup, "duplicate entry %v=%v", e.Rect, e.Value)
		seen[p] = struct{}{}
	}

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			require.False(tb, entries[i].Rect.Intersects(entries[j].Rect),
				"stored entries overlap: %v and %v", entries[i].Rect, entries[j].Rect)
		}
	}
}

// CheckQueryContract asserts soundness and completeness of Query(q)
// against a full-store sweep: every yielded entry intersects q, and every
// stored entry intersecting q is yielded exactly once.
func CheckQueryContract[T comparable](tb testing.TB, idx spatial.Index[T], q rect.Rect) {
	tb.Helper()

	got := Collect(idx.Query(q))
	counts := make(map[Pair[T]]int, len(got))
	for _, e := range got {
		require.True(tb, e.Rect.Intersects(q), "yielded %v outside query %v", e.Rect, q)
		counts[Pair[T]{Rect: e.Rect, Value: e.Value}]++
	}
	for _, e := range Collect(idx.All()) {
		p := Pair[T]{Rect: e.Rect, Value: e.Value}
		if e.Rect.Intersects(q) {
			require.Equal(tb, 1, counts[p], "entry %v must be yielded exactly once", e.Rect)
		} else {
			require.Zero(tb, counts[p], "entry %v must not be yielded", e.Rect)
		}
	}
}
