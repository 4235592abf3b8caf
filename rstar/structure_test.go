// File: rstar/structure_test.go
//
// White-box checks over the packed arenas: fan-out bounds, MBR tightness,
// and reachability. These pin the tree shape, not the query contract.
package rstar

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rectmap/rect"
)

// checkStructure walks the arena from the root and fails on any violated
// node invariant.
func checkStructure(t *testing.T, tr *Tree[int]) {
	t.Helper()
	if tr.root == noNode {
		return
	}
	var walk func(idx int32, isRoot bool)
	walk = func(idx int32, isRoot bool) {
		n := &tr.nodes[idx]
		if len(n.children) > tr.opts.MaxEntries {
			t.Fatalf("node %d holds %d children; max %d", idx, len(n.children), tr.opts.MaxEntries)
		}
		if !isRoot && len(n.children) < tr.opts.MinEntries {
			t.Fatalf("node %d holds %d children; min %d", idx, len(n.children), tr.opts.MinEntries)
		}
		if got := tr.recomputeMBR(idx); got != n.mbr {
			t.Fatalf("node %d MBR %v is not tight (want %v)", idx, n.mbr, got)
		}
		if n.kind == internalNode {
			for _, ci := range n.children {
				walk(ci, false)
			}
		}
	}
	walk(tr.root, true)
}

// TestStructure_DisjointGrid grows the tree through many splits and
// checks arena invariants at checkpoints.
func TestStructure_DisjointGrid(t *testing.T) {
	tr := New[int]()
	for i := int64(0); i < 500; i++ {
		x, y := (i%25)*8, (i/25)*8
		if err := tr.Insert(rect.Rect{XMin: x, YMin: y, XMax: x + 3, YMax: y + 3}, int(i)); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if i%97 == 0 {
			checkStructure(t, tr)
		}
	}
	checkStructure(t, tr)
	if tr.Len() != 500 {
		t.Fatalf("Len = %d; want 500", tr.Len())
	}
}

// TestStructure_OverlappingWorkload keeps the invariants through heavy
// tombstoning and fragment re-insertion.
func TestStructure_OverlappingWorkload(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := New[int]()
	for i := 0; i < 400; i++ {
		x, y := int64(rng.Intn(100)), int64(rng.Intn(100))
		w, h := int64(rng.Intn(12)), int64(rng.Intn(12))
		if err := tr.Insert(rect.Rect{XMin: x, YMin: y, XMax: x + w, YMax: y + h}, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	checkStructure(t, tr)

	// Live-entry count must match the arena's active flags.
	live := 0
	for i := range tr.entries {
		if tr.entries[i].active {
			live++
		}
	}
	if live != tr.alive || live != tr.Len() {
		t.Fatalf("alive bookkeeping: flagged=%d alive=%d Len=%d", live, tr.alive, tr.Len())
	}
}

// TestReset_ReclaimsArenas: the universal insert must clear both arenas.
func TestReset_ReclaimsArenas(t *testing.T) {
	tr := New[int]()
	for i := int64(0); i < 100; i++ {
		if err := tr.Insert(rect.Rect{XMin: i * 10, YMin: 0, XMax: i*10 + 4, YMax: 4}, int(i)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := tr.Insert(rect.All, -1); err != nil {
		t.Fatalf("universal insert: %v", err)
	}
	if len(tr.nodes) != 0 || len(tr.entries) != 0 || tr.root != noNode {
		t.Fatalf("arenas not reclaimed: nodes=%d entries=%d root=%d", len(tr.nodes), len(tr.entries), tr.root)
	}
	if tr.state != stateGlobal || tr.Len() != 1 {
		t.Fatalf("state = %d Len = %d; want global/1", tr.state, tr.Len())
	}
}
