// Package rect implements closed-interval, axis-aligned rectangle algebra
// on a signed 64-bit integer grid, with sentinel support for unbounded sides.
//
// 🚀 What is rect?
//
//	The geometric foundation of rectmap: every spatial engine in this module
//	stores, splits, and compares rectangles exclusively through this package.
//
//	  • Closed intervals: a Rect covers every integer point (x,y) with
//	    XMin ≤ x ≤ XMax and YMin ≤ y ≤ YMax.
//	  • Unbounded sides: NegInf / PosInf sentinels stand in for −∞ / +∞.
//	  • Canonical subtraction: Subtract(a,b) partitions a\b into at most
//	    four axis-aligned fragments in a fixed top/bottom/left/right order,
//	    so identical insert sequences decompose identically everywhere.
//
// ✨ Why a bespoke type?
//
//   - Exactness — intersection and subtraction on int64 are exact; no
//     epsilon, no rounding, no float drift.
//   - Sentinel-aware arithmetic — widths, areas and midpoints saturate
//     instead of overflowing on unbounded rectangles.
//   - Hot-path friendly — all predicates are branch-only value methods,
//     trivially inlinable; nothing allocates except Subtract's result.
//
// Complexity: every operation is O(1); Subtract allocates one slice of
// at most four fragments.
//
// Errors:
//
//   - ErrInvalidRect: a rectangle violates XMin ≤ XMax or YMin ≤ YMax.
package rect
