// Package tiny holds the primitives shared by the tinysort engines.
//
// The engines themselves live in the subpackages:
//   - stable: top-down merge sort, keeps the order of equal elements, uses
//     len(v) auxiliary memory
//   - unstable: in-place heap sort, no auxiliary memory
//
// Both guarantee O(n log n) worst case, have no adaptiveness to existing
// order, and keep the slice a permutation of its input even if the comparison
// function panics.
//
// # Predicates
//
// Every entry point reduces its ordering to a single isLess predicate:
//
//	isLess(a, b) == true  // a is strictly ordered before b
//
// The adapters in this package build that predicate from a natural ordering
// (Less), a three-way comparator (LessFromCompare) or a key function
// (LessByKey).
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tinysort/tiny/stable"
//
//	func ByAge(people []Person) {
//	    stable.SortByKey(people, func(p Person) int { return p.Age })
//	}
//
// A program that imports only the unstable package links no allocating code.
package tiny
