// Package spatialtest is the conformance kit for spatial.Index engines.
//
// Every engine in this module (and any future one) must pass the same
// battery, driven through a Factory so the kit never depends on a concrete
// engine:
//
//	  • CheckInvariants — the universal store axioms: no duplicate
//	    (rectangle, value) pairs, pairwise disjointness, Len/IsEmpty/query
//	    consistency.
//	  • CheckCanonicalScenarios — three fixed insert workloads with pinned
//	    fragment counts (63, 39, 1375); the numbers anchor cross-engine
//	    and cross-version compatibility of the decomposition.
//	  • CheckLWW — replays a workload against a brute-force per-point
//	    oracle over a bounded grid.
//	  • CheckFragmentationBound — adversarial sequences must stay within
//	    4× the insert count (no decomposition blowups).
//	  • RunFixtures — end-to-end scenarios loaded from
//	    testdata/scenarios.yaml, each with its exact expected entry set.
//	  • EntrySet — snapshot helper for cross-engine set equality.
//
// The kit asserts with testify/require; helpers mark themselves with
// tb.Helper so failures point at the calling engine test.
package spatialtest
