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

package check

import (
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Tagged is an element whose Key is used for ordering and whose Tag records
// the element's position in the input. Stability is observable through the
// tags of elements with equal keys.
type Tagged struct {
	Key int
	Tag int
}

// TagKeys wraps keys into Tagged elements, tagged with their index.
func TagKeys(keys []int) []Tagged {
	out := make([]Tagged, len(keys))
	for i, k := range keys {
		out[i] = Tagged{Key: k, Tag: i}
	}
	return out
}

// TaggedLess orders Tagged elements by key only.
func TaggedLess(a, b Tagged) bool {
	return a.Key < b.Key
}

// VerifySorted returns an error naming the first element that isLess orders
// before its predecessor.
func VerifySorted[T any](v []T, isLess func(a, b T) bool) error {
	for i := 1; i < len(v); i++ {
		if isLess(v[i], v[i-1]) {
			return errors.Errorf("not sorted: element %d (%v) is ordered before element %d (%v)",
				i, v[i], i-1, v[i-1])
		}
	}
	return nil
}

// VerifyPermutation returns an error unless after holds exactly the
// multiset of before.
func VerifyPermutation[T comparable](before, after []T) error {
	if len(before) != len(after) {
		return errors.Errorf("length changed from %d to %d", len(before), len(after))
	}

	want := lo.CountValues(before)
	got := lo.CountValues(after)
	if diff := cmp.Diff(want, got); diff != "" {
		return errors.Errorf("not a permutation of the input (-want +got):\n%s", diff)
	}
	return nil
}

// VerifyStable returns an error unless v is sorted by key and every run of
// equal keys keeps ascending tags.
func VerifyStable(v []Tagged) error {
	if err := VerifySorted(v, TaggedLess); err != nil {
		return err
	}
	for i := 1; i < len(v); i++ {
		if v[i].Key == v[i-1].Key && v[i].Tag < v[i-1].Tag {
			return errors.Errorf("not stable: key %d has tag %d at index %d after tag %d",
				v[i].Key, v[i].Tag, i, v[i-1].Tag)
		}
	}
	return nil
}

// MergeSortBound is the most comparisons a top-down merge sort of n elements
// may perform.
func MergeSortBound(n int) int {
	return n * ceilLog2(n)
}

// HeapSortBound is the most comparisons a binary heap sort of n elements may
// perform: at most 2n to build the heap plus two per level per extraction.
func HeapSortBound(n int) int {
	return 2*n + 2*n*ceilLog2(n)
}

func ceilLog2(n int) int {
	k := 0
	for 1<<k < n {
		k++
	}
	return k
}
