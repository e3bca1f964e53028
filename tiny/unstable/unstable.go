// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unstable

import (
	"cmp"

	"github.com/ajroetker/go-tinysort/tiny"
)

// Sort sorts v in ascending natural order. Equal elements may be reordered.
func Sort[T cmp.Ordered](v []T) {
	unstableSort(v, tiny.Less[T]())
}

// SortFunc sorts v by the three-way comparator compare. Elements for which
// compare returns 0 may be reordered.
//
// Same behavior as Sort.
func SortFunc[T any](v []T, compare func(a, b T) int) {
	unstableSort(v, tiny.LessFromCompare(compare))
}

// SortLessFunc sorts v by isLess, which must report whether a is strictly
// ordered before b.
//
// Same behavior as Sort.
func SortLessFunc[T any](v []T, isLess func(a, b T) bool) {
	unstableSort(v, isLess)
}

func unstableSort[T any](v []T, isLess func(a, b T) bool) {
	if tiny.IsZeroSized[T]() {
		return
	}

	// Most calls in practice sort fewer than two elements.
	if len(v) < 2 {
		return
	}

	heapsort(v, isLess)
}

// heapsort is heapsort for O(n log n) worst-case guarantee.
// len(v) must be >= 2.
//
//go:noinline
func heapsort[T any](v []T, isLess func(a, b T) bool) {
	n := len(v)

	// Build max-heap in linear time.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(v, i, isLess)
	}

	// Pop maximal elements from the heap.
	for i := n - 1; i > 0; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v[:i], 0, isLess)
	}
}

// siftDown restores the invariant parent >= child below node.
// node must be < len(v).
func siftDown[T any](v []T, node int, isLess func(a, b T) bool) {
	n := len(v)

	for {
		child := 2*node + 1
		if child >= n {
			break
		}

		// The bounds branch is predictable; the comparison is folded into
		// the index instead.
		if child+1 < n {
			child += tiny.BoolToInt(isLess(v[child], v[child+1]))
		}

		if !isLess(v[node], v[child]) {
			break
		}

		v[node], v[child] = v[child], v[node]
		node = child
	}
}
