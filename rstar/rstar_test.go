package rstar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rectmap/rect"
	"github.com/katalvlaran/rectmap/rstar"
	"github.com/katalvlaran/rectmap/spatial"
)

func mk(xmin, ymin, xmax, ymax int64) rect.Rect {
	return rect.Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

func collect(seq func(func(spatial.Entry[string]) bool)) []spatial.Entry[string] {
	var out []spatial.Entry[string]
	seq(func(e spatial.Entry[string]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// TreeSuite exercises the R*-tree under the engine contract plus the
// global-value state machine specific to this engine.
type TreeSuite struct {
	suite.Suite
}

// TestInvalidRect verifies rejection before mutation.
func (s *TreeSuite) TestInvalidRect() {
	tr := rstar.New[string]()
	require.ErrorIs(s.T(), tr.Insert(mk(5, 0, 4, 0), "x"), rect.ErrInvalidRect)
	require.True(s.T(), tr.IsEmpty())
}

// TestGlobalOverride walks EMPTY→POPULATED→GLOBAL: after the universal
// insert exactly one universal entry remains.
func (s *TreeSuite) TestGlobalOverride() {
	tr := rstar.New[string]()
	require.NoError(s.T(), tr.Insert(mk(1, 1, 1, 1), "cell"))
	require.NoError(s.T(), tr.Insert(mk(2, 1, 2, 1), "adjacent"))
	require.NoError(s.T(), tr.Insert(rect.All, "global"))

	require.Equal(s.T(), 1, tr.Len())
	got := collect(tr.All())
	require.Len(s.T(), got, 1)
	require.Equal(s.T(), rect.All, got[0].Rect)
	require.Equal(s.T(), "global", got[0].Value)
}

// TestGlobalThenFinite walks GLOBAL→POPULATED: the finite insert wins on
// its interior and the old global survives as unbounded residuals.
func (s *TreeSuite) TestGlobalThenFinite() {
	tr := rstar.New[string]()
	require.NoError(s.T(), tr.Insert(rect.All, "sea"))
	require.NoError(s.T(), tr.Insert(mk(0, 0, 9, 9), "island"))

	var island, sea int
	for _, e := range collect(tr.All()) {
		switch e.Value {
		case "island":
			island++
			require.Equal(s.T(), mk(0, 0, 9, 9), e.Rect)
		case "sea":
			sea++
			require.False(s.T(), e.Rect.Intersects(mk(0, 0, 9, 9)), "residual %v must avoid the island", e.Rect)
		}
	}
	require.Equal(s.T(), 1, island)
	require.LessOrEqual(s.T(), sea, 4)
	require.GreaterOrEqual(s.T(), sea, 2)

	// Points far outside the island still carry the sea value.
	var val string
	tr.Query(mk(100, 100, 100, 100))(func(e spatial.Entry[string]) bool {
		val = e.Value
		return true
	})
	require.Equal(s.T(), "sea", val)
}

// TestGlobalReplacesGlobal: a second universal insert swaps the value.
func (s *TreeSuite) TestGlobalReplacesGlobal() {
	tr := rstar.New[string]()
	require.NoError(s.T(), tr.Insert(rect.All, "v1"))
	require.NoError(s.T(), tr.Insert(rect.All, "v2"))
	got := collect(tr.All())
	require.Len(s.T(), got, 1)
	require.Equal(s.T(), "v2", got[0].Value)
}

// TestSplitGrowth inserts enough disjoint rectangles to force repeated
// leaf and root splits, then checks completeness through point queries.
func (s *TreeSuite) TestSplitGrowth() {
	tr := rstar.New[string]()
	const n = 200
	for i := int64(0); i < n; i++ {
		x, y := (i%20)*10, (i/20)*10
		require.NoError(s.T(), tr.Insert(mk(x, y, x+5, y+5), "cell"))
	}
	require.Equal(s.T(), n, tr.Len(), "disjoint inserts must not fragment")

	// Every inserted rectangle must be findable by a point probe.
	for i := int64(0); i < n; i++ {
		x, y := (i%20)*10, (i/20)*10
		found := 0
		tr.Query(mk(x+2, y+2, x+2, y+2))(func(spatial.Entry[string]) bool {
			found++
			return true
		})
		require.Equal(s.T(), 1, found, "probe at cell %d", i)
	}
}

// TestLWWDecomposition mirrors the central-punch scenario through the tree.
func (s *TreeSuite) TestLWWDecomposition() {
	tr := rstar.New[string]()
	require.NoError(s.T(), tr.Insert(mk(0, 0, 9, 9), "base"))
	require.NoError(s.T(), tr.Insert(mk(3, 3, 6, 6), "center"))

	var base, center int
	var ringArea int64
	for _, e := range collect(tr.All()) {
		switch e.Value {
		case "base":
			base++
			ringArea += e.Rect.Area()
		case "center":
			center++
		}
	}
	require.Equal(s.T(), 1, center)
	require.LessOrEqual(s.T(), base, 4)
	require.Equal(s.T(), int64(84), ringArea)
}

// TestQuerySoundnessRandom: soundness and disjointness on a random
// overlapping workload large enough to build a real tree.
func (s *TreeSuite) TestQuerySoundnessRandom() {
	rng := rand.New(rand.NewSource(11))
	tr := rstar.New[string]()
	for i := 0; i < 300; i++ {
		x, y := int64(rng.Intn(200)), int64(rng.Intn(200))
		require.NoError(s.T(), tr.Insert(mk(x, y, x+int64(rng.Intn(8)), y+int64(rng.Intn(8))), "v"))
	}

	q := mk(50, 50, 120, 120)
	for _, e := range collect(tr.Query(q)) {
		require.True(s.T(), e.Rect.Intersects(q))
	}

	// Pairwise disjointness over the full store.
	all := collect(tr.All())
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			require.False(s.T(), all[i].Rect.Intersects(all[j].Rect),
				"entries %v and %v overlap", all[i].Rect, all[j].Rect)
		}
	}
}

// TestStaleIteratorPanics: advancing across a mutation must panic.
func (s *TreeSuite) TestStaleIteratorPanics() {
	tr := rstar.New[string]()
	require.NoError(s.T(), tr.Insert(mk(0, 0, 4, 4), "a"))
	require.NoError(s.T(), tr.Insert(mk(10, 10, 14, 14), "b"))

	require.PanicsWithValue(s.T(), spatial.ErrStaleIterator, func() {
		first := true
		tr.All()(func(spatial.Entry[string]) bool {
			if first {
				first = false
				require.NoError(s.T(), tr.Insert(mk(20, 20, 24, 24), "c"))
			}
			return true
		})
	})
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestNewWithOptions(t *testing.T) {
	cases := []struct {
		name string
		opts rstar.Options
		ok   bool
	}{
		{"Default", rstar.DefaultOptions(), true},
		{"Min2Max4", rstar.Options{MaxEntries: 4, MinEntries: 2}, true},
		{"MinTooSmall", rstar.Options{MaxEntries: 10, MinEntries: 1}, false},
		{"MaxTooSmall", rstar.Options{MaxEntries: 5, MinEntries: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rstar.NewWithOptions[int](tc.opts)
			if tc.ok && err != nil {
				t.Errorf("NewWithOptions(%+v) error = %v", tc.opts, err)
			}
			if !tc.ok && err != rstar.ErrBadOptions {
				t.Errorf("NewWithOptions(%+v) error = %v; want ErrBadOptions", tc.opts, err)
			}
		})
	}
}
