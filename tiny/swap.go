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

package tiny

import "unsafe"

// BoolToInt returns 1 for true and 0 for false.
// The compiler lowers this to a flag set instead of a branch.
func BoolToInt(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}

// Select returns x if c == 1 and y if c == 0, using a mask instead of a
// branch. c must be 0 or 1.
func Select(c, x, y int) int {
	return y ^ ((x ^ y) & -c)
}

// BranchlessSwap swaps v[a] and v[b] if shouldSwap is true.
//
// The same three moves through one temporary run for both outcomes: only the
// source indices change. This keeps the outcome of the comparison that
// produced shouldSwap out of the branch predictor. The equivalent code with a
// branch would be:
//
//	if shouldSwap {
//	    v[a], v[b] = v[b], v[a]
//	}
//
// a and b must be distinct, in-bounds indices.
func BranchlessSwap[T any](v []T, a, b int, shouldSwap bool) {
	s := BoolToInt(shouldSwap)

	aSrc := Select(s, b, a)
	bSrc := Select(s, a, b)

	tmp := v[bSrc]
	v[a] = v[aSrc]
	v[b] = tmp
}

// IsZeroSized reports whether values of T occupy no memory.
// Sorting such values is a no-op: all of them are indistinguishable.
func IsZeroSized[T any]() bool {
	var dummy T
	return unsafe.Sizeof(dummy) == 0
}
