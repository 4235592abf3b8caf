// Package curve implements space-filling-curve codes over 16-bit grid
// coordinates: Morton (Z-order) bit interleaving and an iterative Hilbert
// encoder/decoder.
//
// Codes are ordering keys, not identities. The ordered-scan engine keys its
// store by MortonCenter so that spatially close rectangles tend to sit close
// in memory; coordinates outside [−2¹⁵, 2¹⁵−1] are clamped into that window
// before the centroid is truncated to 16 bits, which perturbs ordering but
// never correctness.
//
// Complexity: Morton is O(1) via magic-mask bit spreading; Hilbert is
// O(order) iterations with no allocation.
package curve
