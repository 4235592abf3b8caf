// Package spatial declares the common contract shared by every rectmap
// spatial-index engine.
//
// An Index maps axis-aligned rectangles to values with last-writer-wins
// semantics: after any sequence of inserts the stored entries form a
// disjoint partition of the covered region, and each point keeps the value
// of the most recent insert that covered it. Queries yield lazily via
// iter.Seq; advancing an iterator after the underlying index mutated is a
// programming error and panics with ErrStaleIterator.
//
// Engines implementing the contract:
//
//	linearscan/ — ordered Morton-scan array, O(n) query, simple and compact
//	rstar/      — packed-arena R*-tree, MBR-pruned descent, global-value path
//
// The interface exists for composition only (the attrmap coordinator holds
// heterogeneous sub-indexes through it); inside an engine all geometry runs
// on concrete rect.Rect values with no dynamic dispatch.
package spatial
