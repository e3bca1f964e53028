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

import "cmp"

// Less returns the predicate of the natural ordering of T.
// Floating point NaNs are ordered before all other values, which keeps the
// ordering a strict weak order.
func Less[T cmp.Ordered]() func(a, b T) bool {
	return cmp.Less[T]
}

// LessFromCompare maps a three-way comparator onto isLess: a is ordered
// before b iff compare(a, b) < 0. Equal and greater are not distinguished.
func LessFromCompare[T any](compare func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return compare(a, b) < 0
	}
}

// LessByKey orders elements by the key extracted with key.
// The key is recomputed on every comparison, never cached.
func LessByKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) bool {
	return func(a, b T) bool {
		return cmp.Less(key(a), key(b))
	}
}

// IsSorted reports whether v is sorted in ascending natural order.
func IsSorted[T cmp.Ordered](v []T) bool {
	return IsSortedLessFunc(v, cmp.Less[T])
}

// IsSortedLessFunc reports whether no element of v is ordered before its
// predecessor according to isLess.
func IsSortedLessFunc[T any](v []T, isLess func(a, b T) bool) bool {
	for i := 1; i < len(v); i++ {
		if isLess(v[i], v[i-1]) {
			return false
		}
	}
	return true
}
