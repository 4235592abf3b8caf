// Package rectmap (root) is an in-memory two-dimensional spatial map from
// axis-aligned rectangles on an integer grid to arbitrary values, with
// last-writer-wins overwrite semantics.
//
// 🚀 What is rectmap?
//
//	After any sequence of inserts, the stored (rectangle, value) pairs form
//	a disjoint partition of the covered region: no two stored rectangles
//	overlap, and every point keeps the value of the most recent insert that
//	covered it. Each insert decomposes the pre-existing overlaps into at
//	most four residual fragments per casualty, in a canonical order, so
//	identical insert sequences produce identical stores everywhere.
//
// ✨ Why rectmap?
//
//   - Exact integer geometry     — no floats, no epsilons, infinity sentinels
//   - Two engines, one contract  — ordered Morton scan and arena R*-tree
//   - Attribute partitioning     — independent maps per key, joined on query
//   - Conformance kit included   — invariants, pinned workloads, fixtures
//
// Everything is organized under seven subpackages:
//
//	rect/        — closed-interval rectangle algebra and canonical subtraction
//	curve/       — Morton (Z-order) and Hilbert space-filling-curve codes
//	spatial/     — the engine contract: Index, Entry, lazy query sequences
//	linearscan/  — sorted-array engine: binary-search insert, linear sweep
//	rstar/       — packed-arena R*-tree engine with a global-value state
//	attrmap/     — per-attribute partitions with a spatial-join query
//	spatialtest/ — the conformance battery every engine must pass
//
// Quick ASCII example — insert "B" over "A" and the store re-partitions:
//
//	A A A A        A A A A
//	A A A A   →    A A B B B
//	A A A A        A A B B B
//
//	go get github.com/katalvlaran/rectmap
package rectmap
