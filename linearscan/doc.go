// Package linearscan implements the ordered linear-scan spatial map: a flat
// array of entries kept sorted by the Morton (Z-order) code of each
// rectangle's centroid.
//
// 🚀 What is linearscan?
//
//	The simplest production engine behind the spatial.Index contract:
//
//	  • Insert partitions the store in one pass into kept and overlapping
//	    entries, subtracts the new rectangle out of every overlap (≤4
//	    residual fragments each), and re-inserts every fragment — plus the
//	    new entry — at its binary-searched Morton position.
//	  • Query is a plain linear intersection sweep; no spatial pruning.
//	  • The Morton ordering buys cache locality, not correctness: nearby
//	    rectangles cluster, so overlap runs touch adjacent memory.
//
// ✨ Why choose it over rstar?
//
//   - Small and mid-size stores — the O(n) sweep beats tree bookkeeping
//     until n grows well into the thousands.
//   - Deterministic, allocation-light, trivially auditable.
//
// Complexity:
//
//   - Insert: O(n + k·log n), k = residual fragments (≤ 4·overlaps + 1).
//   - Query:  O(n) sweep, lazy yield.
//
// Errors:
//
//   - rect.ErrInvalidRect: malformed insert rectangle; store untouched.
//   - ErrBadOptions: negative initial capacity.
package linearscan
