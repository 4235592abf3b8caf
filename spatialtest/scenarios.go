package spatialtest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/spatial"
)

// The three canonical workloads and their pinned fragment counts. The
// counts follow from the fixed subtraction order and anchor compatibility:
// any engine, any version, any platform must land on exactly these.
const (
	smallOverlappingWant = 63
	diagonalWant         = 39
	largeOverlappingWant = 1375
)

// SmallOverlapping replays 50 tightly overlapping 3×3 squares.
func SmallOverlapping(tb testing.TB, newIndex Factory[string]) spatial.Index[string] {
	tb.Helper()
	idx := newIndex()
	for i := int64(0); i < 50; i++ {
		r := rect.Rect{XMin: i % 5, YMin: i / 3, XMax: i%5 + 2, YMax: i/3 + 2}
		require.NoError(tb, idx.Insert(r, fmt.Sprintf("s_%d", i)))
	}

	return idx
}

// Diagonal replays 20 squares marching down the main diagonal, each
// clipping its predecessor's corner.
func Diagonal(tb testing.TB, newIndex Factory[string]) spatial.Index[string] {
	tb.Helper()
	idx := newIndex()
	for i := int64(0); i < 20; i++ {
		r := rect.Rect{XMin: 2 * i, YMin: 2 * i, XMax: 2*i + 4, YMax: 2*i + 4}
		require.NoError(tb, idx.Insert(r, fmt.Sprintf("d_%d", i)))
	}

	return idx
}

// LargeOverlapping replays 1250 5×5 squares on a dense row-major sweep.
func LargeOverlapping(tb testing.TB, newIndex Factory[string]) spatial.Index[string] {
	tb.Helper()
	idx := newIndex()
	for i := int64(0); i < 1250; i++ {
		r := rect.Rect{XMin: i % 10, YMin: i / 5, XMax: i%10 + 4, YMax: i/5 + 4}
		require.NoError(tb, idx.Insert(r, fmt.Sprintf("overlap_%d", i)))
	}

	return idx
}

// CheckCanonicalScenarios runs all three workloads and asserts the pinned
// fragment counts plus the universal invariants on each final store.
func CheckCanonicalScenarios(tb testing.TB, newIndex Factory[string]) {
	tb.Helper()

	small := SmallOverlapping(tb, newIndex)
	require.Equal(tb, smallOverlappingWant, small.Len(), "small-overlapping fragment count")
	CheckInvariants(tb, small)

	diag := Diagonal(tb, newIndex)
	require.Equal(tb, diagonalWant, diag.Len(), "diagonal fragment count")
	CheckInvariants(tb, diag)

	large := LargeOverlapping(tb, newIndex)
	require.Equal(tb, largeOverlappingWant, large.Len(), "large-overlapping fragment count")
	CheckInvariants(tb, large)
}

// CheckLWW replays inserts and compares every grid point of the bounding
// window against a brute-force last-writer oracle.
func CheckLWW[T comparable](tb testing.TB, newIndex Factory[T], inserts []spatial.Entry[T], window rect.Rect) {
	tb.Helper()

	idx := newIndex()
	type point struct{ x, y int64 }
	oracle := make(map[point]T)
	for _, in := range inserts {
		require.NoError(tb, idx.Insert(in.Rect, in.Value))
		for x := max64(in.Rect.XMin, window.XMin); x <= min64(in.Rect.XMax, window.XMax); x++ {
			for y := max64(in.Rect.YMin, window.YMin); y <= min64(in.Rect.YMax, window.YMax); y++ {
				oracle[point{x, y}] = in.Value
			}
		}
	}

	entries := Collect(idx.All())
	for x := window.XMin; x <= window.XMax; x++ {
		for y := window.YMin; y <= window.YMax; y++ {
			var got T
			hits := 0
			for _, e := range entries {
				if e.Rect.ContainsPoint(x, y) {
					got = e.Value
					hits++
				}
			}
			want, covered := oracle[point{x, y}]
			if !covered {
				require.Zero(tb, hits, "point (%d,%d) must be uncovered", x, y)
				continue
			}
			require.Equal(tb, 1, hits, "point (%d,%d) must be covered exactly once", x, y)
			require.Equal(tb, want, got, "last writer must win at (%d,%d)", x, y)
		}
	}
}

// CheckFragmentationBound runs three adversarial sequences (concentric,
// diagonal sweep, seeded random) and asserts that each final store holds at
// most four entries per insert performed.
func CheckFragmentationBound(tb testing.TB, newIndex Factory[int]) {
	tb.Helper()

	// Concentric: every insert is swallowed by its predecessor's ring.
	idx := newIndex()
	const rings = 60
	for i := 0; i < rings; i++ {
		k := int64(rings - i)
		require.NoError(tb, idx.Insert(rect.Rect{XMin: -k, YMin: -k, XMax: k, YMax: k}, i))
	}
	require.LessOrEqual(tb, idx.Len(), 4*rings, "concentric blowup")
	CheckInvariants(tb, idx)

	// Diagonal sweep: long chain of corner clips.
	idx = newIndex()
	const steps = 150
	for i := int64(0); i < steps; i++ {
		require.NoError(tb, idx.Insert(rect.Rect{XMin: i, YMin: i, XMax: i + 6, YMax: i + 6}, int(i)))
	}
	require.LessOrEqual(tb, idx.Len(), 4*steps, "diagonal blowup")
	CheckInvariants(tb, idx)

	// Seeded random boxes.
	idx = newIndex()
	rng := rand.New(rand.NewSource(99))
	const boxes = 250
	for i := 0; i < boxes; i++ {
		x, y := int64(rng.Intn(120)), int64(rng.Intn(120))
		w, h := int64(rng.Intn(15)), int64(rng.Intn(15))
		require.NoError(tb, idx.Insert(rect.Rect{XMin: x, YMin: y, XMax: x + w, YMax: y + h}, i))
	}
	require.LessOrEqual(tb, idx.Len(), 4*boxes, "random blowup")
	CheckInvariants(tb, idx)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
