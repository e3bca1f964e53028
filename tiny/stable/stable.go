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

package stable

import (
	"cmp"

	"github.com/ajroetker/go-tinysort/tiny"
)

// Sort sorts v in ascending natural order, preserving the initial order of
// equal elements.
//
// Panics if the auxiliary memory cannot be allocated.
func Sort[T cmp.Ordered](v []T) {
	stableSort(v, tiny.Less[T]())
}

// SortFunc sorts v by the three-way comparator compare, preserving the
// initial order of elements for which compare returns 0.
//
// Same behavior as Sort.
func SortFunc[T any](v []T, compare func(a, b T) int) {
	stableSort(v, tiny.LessFromCompare(compare))
}

// SortByKey sorts v by the key extracted with key, preserving the initial
// order of elements with equal keys. key is called twice per comparison.
//
// Same behavior as Sort.
func SortByKey[T any, K cmp.Ordered](v []T, key func(T) K) {
	stableSort(v, tiny.LessByKey(key))
}

// SortLessFunc sorts v by isLess, which must report whether a is strictly
// ordered before b.
//
// Same behavior as Sort.
func SortLessFunc[T any](v []T, isLess func(a, b T) bool) {
	stableSort(v, isLess)
}

func stableSort[T any](v []T, isLess func(a, b T) bool) {
	if tiny.IsZeroSized[T]() {
		return
	}

	// Most calls in practice sort fewer than two elements.
	if len(v) < 2 {
		return
	}

	mergesortMain(v, isLess)
}

// mergesortMain owns the scratch buffer for the whole recursion.
//
//go:noinline
func mergesortMain[T any](v []T, isLess func(a, b T) bool) {
	buf := newBufGuard[T](len(v))
	defer buf.release()

	mergesortCore(v, buf.scratch, isLess)
}

// mergesortCore is a recursive top-down merge sort with no run detection.
// scratch must have room for len(v) elements and must not alias v.
func mergesortCore[T any](v, scratch []T, isLess func(a, b T) bool) {
	n := len(v)

	if n > 2 {
		mid := n / 2
		mergesortCore(v[:mid], scratch, isLess)
		mergesortCore(v[mid:], scratch, isLess)
		merge(v, scratch, mid, isLess)
	} else if n == 2 {
		// One conditional swap saves a recursion level for the most common
		// span size.
		tiny.BranchlessSwap(v, 1, 0, isLess(v[1], v[0]))
	}
}

// merge merges the sorted runs v[:mid] and v[mid:] through scratch.
//
// v is written only by the final copy back, so if isLess panics v still holds
// every original element exactly once.
func merge[T any](v, scratch []T, mid int, isLess func(a, b T) bool) {
	n := len(v)
	scratch = scratch[:n]

	l, r := 0, mid

	// 0 < mid < n, so both sides are non-empty on entry.
	for i := range n {
		// Ties take the left element: this is what keeps the sort stable.
		takeLeft := tiny.BoolToInt(!isLess(v[r], v[l]))
		scratch[i] = v[tiny.Select(takeLeft, l, r)]

		l += takeLeft
		r += takeLeft ^ 1

		if l == mid || r == n {
			break
		}
	}

	// One side is exhausted; drain the other one without comparing.
	i := l + (r - mid)
	src := tiny.Select(tiny.BoolToInt(l == mid), r, l)
	copy(scratch[i:], v[src:src+n-i])

	copy(v, scratch)
}
