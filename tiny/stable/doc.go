// Package stable provides a tiny top-down merge sort that preserves the
// initial order of equal elements.
//
// # Properties
//
//   - Guaranteed O(n log n) worst case, at most n*ceil(log2 n) comparisons
//   - No adaptiveness: sorted, reversed and random inputs cost the same
//   - Branch prediction is not affected by the outcome of the comparison
//   - Uses len(v) auxiliary memory, allocated once per call
//
// If the ordering is not a strict weak order the resulting order is
// unspecified. All original elements remain in v, including when the
// comparison function panics. The scratch buffer is released on every exit
// path.
//
// # Example Usage
//
//	type entry struct {
//	    key int
//	    tag string
//	}
//
//	func ByKey(entries []entry) {
//	    stable.SortByKey(entries, func(e entry) int { return e.key })
//	}
package stable
