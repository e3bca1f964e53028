// Package unstable provides a tiny in-place heap sort. It does not preserve
// the initial order of equal elements and allocates nothing.
//
// # Properties
//
//   - Guaranteed O(n log n) worst case
//   - No adaptiveness
//   - The greater child in sift-down is picked without a branch
//   - No auxiliary memory
//
// If the ordering is not a strict weak order the resulting order is
// unspecified. All original elements remain in v, including when the
// comparison function panics: every move is a swap of two positions.
package unstable
