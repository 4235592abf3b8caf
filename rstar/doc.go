// Package rstar implements an R*-tree spatial map (Beckmann et al. 1990)
// over packed node and entry arenas, behind the same last-writer-wins
// contract as linearscan.
//
// 🚀 What is rstar?
//
//	The scaling engine of rectmap:
//
//	  • Nodes and entries live in two growable arenas addressed by small
//	    integer indices — no per-node allocation, no parent pointers, no
//	    unbounded recursion depth concerns.
//	  • Insert descends by Guttman minimum-area-enlargement, appends at a
//	    leaf, and splits overflowing nodes with the R* heuristic: split
//	    axis by minimum margin sum, split point by minimum overlap area.
//	  • Displaced entries are tombstoned (active=false) and their residual
//	    fragments re-inserted; tombstones are skipped by queries and swept
//	    away wholesale on the next universal insert.
//	  • A universal insert short-circuits the tree entirely: the tree
//	    drops to a single global value covering the whole plane.
//
// ✨ Why choose it over linearscan?
//
//   - Large stores — MBR-pruned descent touches only the subtrees a query
//     or insert can intersect.
//   - Bounded node fan-out keeps splits local and cheap.
//
// State machine: Empty → Populated, Empty → Global, Global ⇄ Populated; no
// insert returns a tree to Empty. A finite insert on a Global
// tree first re-seeds the old global value as a universal entry, so its
// unbounded residuals survive decomposition exactly as they would in any
// other engine.
//
// Complexity:
//
//   - Insert: O(log n) descent + O(M²) per split (M = MaxEntries).
//   - Query:  O(log n + k) for k reported entries on well-shaped data.
//
// Errors:
//
//   - rect.ErrInvalidRect: malformed insert rectangle; tree untouched.
//   - ErrBadOptions: branching parameters out of range.
package rstar
