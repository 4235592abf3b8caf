// Package attrmap implements the attribute-partitioned coordinator: one
// independent spatial map per attribute key, joined at query time.
//
// 🚀 What is attrmap?
//
//	A Map[K,V] runs a lazily-created spatial.Index[V] per attribute key.
//	Writes touch exactly one partition (Set) or one per present key
//	(Insert with a partial record); last-writer-wins applies within each
//	partition independently. Query re-joins the partitions: it sweeps the
//	combined x/y boundaries of all per-partition results, probes every
//	grid cell against each partition, and yields each covered cell tagged
//	with its merged attribute set.
//
// ✨ Why partition per attribute?
//
//   - Independent overwrite granularity — restyling one attribute never
//     fragments the rectangles of another.
//   - Engine choice per workload — the sub-index factory decides whether
//     partitions run on linearscan or rstar.
//
// The sweep is exact because every partition stores pairwise-disjoint
// rectangles: at most one result per partition can contain a given cell,
// and the collected boundaries partition the covered region precisely.
//
// Complexity: Query is O(P·R + X·Y·P·R) for P partitions, R results per
// partition, and X×Y boundary cells; writes are one sub-index insert each.
//
// Errors:
//
//   - rect.ErrInvalidRect: propagated unchanged from the underlying Set.
//   - ErrNilFactory: Map constructed without a sub-index factory.
package attrmap
