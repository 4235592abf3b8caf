package rstar

import (
	"github.com/katalvlaran/rectmap/rect"
)

// Insert stores value v at rectangle r with last-writer-wins overlap
// resolution. A universal rectangle collapses the whole tree into a single
// global value; any finite insert on a global tree first re-seeds that
// value as a universal entry so its residuals survive decomposition.
//
// Returns rect.ErrInvalidRect (tree untouched) on a malformed rectangle.
func (t *Tree[T]) Insert(r rect.Rect, v T) error {
	// 1) Validate before any mutation.
	if err := r.Validate(); err != nil {
		return err
	}
	r = r.Canonicalize()
	t.version++

	// 2) Universal insert: drop to the global short-circuit state.
	if r.IsAll() {
		t.reset()
		t.state = stateGlobal
		t.global = v

		return nil
	}

	// 3) Leaving the global state: the old global becomes an ordinary
	//    universal entry, then the finite insert decomposes it below.
	if t.state == stateGlobal {
		var zero T
		gv := t.global
		t.global = zero
		t.state = statePopulated
		t.ensureRoot()
		t.placeEntry(rect.All, gv)
	}
	t.state = statePopulated
	t.ensureRoot()

	// 4) Tombstone every live entry overlapping r.
	overlaps := t.collectOverlaps(r)
	for _, ei := range overlaps {
		t.entries[ei].active = false
		t.alive--
	}

	// 5) Place the winner, then the residual fragments of each casualty.
	t.placeEntry(r, v)
	for _, ei := range overlaps {
		for _, frag := range t.entries[ei].mbr.Subtract(r) {
			t.placeEntry(frag, t.entries[ei].value)
		}
	}

	return nil
}

// reset clears both arenas and the root; entry tombstones are reclaimed here.
func (t *Tree[T]) reset() {
	t.nodes = t.nodes[:0]
	t.entries = t.entries[:0]
	t.root = noNode
	t.alive = 0
	var zero T
	t.global = zero
	t.state = stateEmpty
}

// ensureRoot creates an empty leaf root on first use.
func (t *Tree[T]) ensureRoot() {
	if t.root != noNode {
		return
	}
	t.root = t.addNode(leafNode)
}

// addNode appends a fresh node to the arena and returns its index.
func (t *Tree[T]) addNode(kind nodeKind) int32 {
	t.nodes = append(t.nodes, treeNode{
		kind:     kind,
		children: make([]int32, 0, t.opts.MaxEntries+1),
	})

	return int32(len(t.nodes) - 1)
}

// addEntry appends a live record to the entry arena and returns its index.
func (t *Tree[T]) addEntry(r rect.Rect, v T) int32 {
	t.entries = append(t.entries, record[T]{mbr: r, value: v, active: true})
	t.alive++

	return int32(len(t.entries) - 1)
}

// collectOverlaps gathers the indices of every live entry intersecting r,
// by MBR-pruned descent. Order is depth-first, matching query order.
func (t *Tree[T]) collectOverlaps(r rect.Rect) []int32 {
	if t.root == noNode {
		return nil
	}
	var out []int32
	stack := []int32{t.root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[idx]
		if !n.mbr.Intersects(r) && len(n.children) > 0 {
			continue
		}
		if n.kind == internalNode {
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
			continue
		}
		for _, ei := range n.children {
			if t.entries[ei].active && t.entries[ei].mbr.Intersects(r) {
				out = append(out, ei)
			}
		}
	}

	return out
}

// placeEntry allocates an arena record for (r,v) and threads it into the
// tree, growing a new root when the old one splits.
func (t *Tree[T]) placeEntry(r rect.Rect, v T) {
	ei := t.addEntry(r, v)
	sibling, split := t.insertIntoNode(t.root, ei)
	if !split {
		return
	}
	// The root split: grow the tree by one level.
	newRoot := t.addNode(internalNode)
	t.nodes[newRoot].children = append(t.nodes[newRoot].children, t.root, sibling)
	t.nodes[newRoot].mbr = t.nodes[t.root].mbr.Union(t.nodes[sibling].mbr)
	t.root = newRoot
}

// insertIntoNode descends from node idx to a leaf by minimum area
// enlargement, appends the entry, and splits on overflow. Returns the new
// sibling's index when idx itself split.
func (t *Tree[T]) insertIntoNode(idx, ei int32) (int32, bool) {
	n := &t.nodes[idx]
	if n.kind == leafNode {
		n.children = append(n.children, ei)
		n.mbr = t.recomputeMBR(idx)
		if len(n.children) > t.opts.MaxEntries {
			return t.splitNode(idx), true
		}

		return noNode, false
	}

	// Guttman descent: least enlargement, ties by smaller current area.
	best := t.chooseChild(idx, t.entries[ei].mbr)
	childSibling, childSplit := t.insertIntoNode(n.children[best], ei)

	// Re-take the pointer: the recursive call may have grown the arena.
	n = &t.nodes[idx]
	if childSplit {
		n.children = append(n.children, childSibling)
	}
	n.mbr = t.recomputeMBR(idx)
	if len(n.children) > t.opts.MaxEntries {
		return t.splitNode(idx), true
	}

	return noNode, false
}

// chooseChild picks the child of internal node idx whose MBR needs the
// least area enlargement to absorb r; ties break on smaller current area.
func (t *Tree[T]) chooseChild(idx int32, r rect.Rect) int {
	n := &t.nodes[idx]
	best := 0
	bestEnlargement := int64(-1)
	bestArea := int64(-1)
	for i, ci := range n.children {
		mbr := t.nodes[ci].mbr
		area := mbr.Area()
		enlargement := mbr.Union(r).Area() - area
		if bestEnlargement == -1 ||
			enlargement < bestEnlargement ||
			(enlargement == bestEnlargement && area < bestArea) {
			best, bestEnlargement, bestArea = i, enlargement, area
		}
	}

	return best
}

// recomputeMBR returns the tight union over the node's children
// (tombstoned entries included: they still occupy leaf slots).
func (t *Tree[T]) recomputeMBR(idx int32) rect.Rect {
	n := &t.nodes[idx]
	mbr := t.childMBR(n, 0)
	for i := 1; i < len(n.children); i++ {
		mbr = mbr.Union(t.childMBR(n, i))
	}

	return mbr
}

// childMBR resolves child i of n through the appropriate arena.
func (t *Tree[T]) childMBR(n *treeNode, i int) rect.Rect {
	if n.kind == leafNode {
		return t.entries[n.children[i]].mbr
	}

	return t.nodes[n.children[i]].mbr
}
