package rstar

import (
	"sort"

	"github.com/katalvlaran/rectmap/rect"
)

// splitNode performs the R* split of the overflowing node idx (it holds
// MaxEntries+1 children): choose the split axis by minimum margin sum over
// all candidate distributions, then the split point by minimum overlap
// area (ties: minimum total area). The node keeps the first group; a new
// sibling receives the second. Returns the sibling's arena index.
func (t *Tree[T]) splitNode(idx int32) int32 {
	kind := t.nodes[idx].kind
	m := t.opts.MinEntries
	total := len(t.nodes[idx].children)

	// 1) Sort a copy of the children along each axis by lower coordinate
	//    (upper coordinate breaks ties, keeping the order deterministic).
	byX := append([]int32(nil), t.nodes[idx].children...)
	sort.SliceStable(byX, func(i, j int) bool {
		a, b := t.mbrOf(kind, byX[i]), t.mbrOf(kind, byX[j])
		if a.XMin != b.XMin {
			return a.XMin < b.XMin
		}
		return a.XMax < b.XMax
	})
	byY := append([]int32(nil), t.nodes[idx].children...)
	sort.SliceStable(byY, func(i, j int) bool {
		a, b := t.mbrOf(kind, byY[i]), t.mbrOf(kind, byY[j])
		if a.YMin != b.YMin {
			return a.YMin < b.YMin
		}
		return a.YMax < b.YMax
	})

	// 2) Axis with the smaller margin sum wins; x on a tie.
	chosen := byX
	if t.marginSum(kind, byY, m) < t.marginSum(kind, byX, m) {
		chosen = byY
	}

	// 3) Split point: minimum overlap between the two group MBRs,
	//    ties resolved by minimum combined area.
	bestK := -1
	var bestOverlap, bestArea int64
	for k := m; k <= total-m; k++ {
		mbr1 := t.groupMBR(kind, chosen[:k])
		mbr2 := t.groupMBR(kind, chosen[k:])
		overlap := mbr1.OverlapArea(mbr2)
		area := mbr1.Area() + mbr2.Area()
		if bestK == -1 || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestK, bestOverlap, bestArea = k, overlap, area
		}
	}

	// 4) Materialize: idx keeps group one, the sibling takes group two.
	sibling := t.addNode(kind)
	n := &t.nodes[idx] // re-take: addNode may have grown the arena
	n.children = append(n.children[:0], chosen[:bestK]...)
	n.mbr = t.recomputeMBR(idx)
	s := &t.nodes[sibling]
	s.children = append(s.children, chosen[bestK:]...)
	s.mbr = t.recomputeMBR(sibling)

	return sibling
}

// marginSum accumulates the half-perimeter goodness of every candidate
// distribution along one pre-sorted axis.
func (t *Tree[T]) marginSum(kind nodeKind, sorted []int32, m int) int64 {
	var sum int64
	for k := m; k <= len(sorted)-m; k++ {
		sum += t.groupMBR(kind, sorted[:k]).Margin() + t.groupMBR(kind, sorted[k:]).Margin()
	}

	return sum
}

// groupMBR returns the union MBR over a group of child indices.
func (t *Tree[T]) groupMBR(kind nodeKind, group []int32) rect.Rect {
	mbr := t.mbrOf(kind, group[0])
	for _, c := range group[1:] {
		mbr = mbr.Union(t.mbrOf(kind, c))
	}

	return mbr
}

// mbrOf resolves a child index through the arena matching the node kind.
func (t *Tree[T]) mbrOf(kind nodeKind, child int32) rect.Rect {
	if kind == leafNode {
		return t.entries[child].mbr
	}

	return t.nodes[child].mbr
}
