// Package check provides the property checks used to verify the tinysort
// engines: input pattern generators, verifiers for the permutation,
// sortedness and stability invariants, and instrumented predicates that count
// comparisons or panic on demand.
//
// The package knows nothing about the engines themselves. Any function of the
// form func(v []T, isLess func(a, b T) bool) can be checked.
package check
