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
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tinysort/tiny"
	"github.com/ajroetker/go-tinysort/tiny/check"
)

var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 63, 64, 100, 256, 1000}

func intLess(a, b int) bool { return a < b }

// Helper to check heap invariant over v.
func isMaxHeap(v []int) bool {
	for i := 1; i < len(v); i++ {
		if v[(i-1)/2] < v[i] {
			return false
		}
	}
	return true
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	var empty []int
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	data := []int32{42}
	Sort(data)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

// TestSortSimpleIntegers is the simple integers scenario.
func TestSortSimpleIntegers(t *testing.T) {
	data := []int{5, 3, 1, 4, 2}
	Sort(data)
	want := []int{1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestTrivialNoComparisons(t *testing.T) {
	for _, n := range []int{0, 1} {
		calls := 0
		data := make([]int, n)
		SortLessFunc(data, check.Counting(intLess, &calls))
		if calls != 0 {
			t.Errorf("SortLessFunc(len=%d) made %d comparisons, want 0", n, calls)
		}
	}
}

func TestZeroSized(t *testing.T) {
	data := make([]struct{}, 100)
	SortLessFunc(data, func(a, b struct{}) bool {
		t.Fatal("predicate called for zero-size elements")
		return false
	})
}

// TestSortAlreadySorted tests sorting already sorted data
func TestSortAlreadySorted(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	Sort(data)
	if !tiny.IsSorted(data) {
		t.Errorf("Sort(sorted) produced unsorted result: %v", data)
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	data := []float32{8, 7, 6, 5, 4, 3, 2, 1}
	Sort(data)
	if !tiny.IsSorted(data) {
		t.Errorf("Sort(reverse) produced unsorted result: %v", data)
	}
}

// TestSortDuplicates tests sorting with duplicate elements
func TestSortDuplicates(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	Sort(data)
	if !tiny.IsSorted(data) {
		t.Errorf("Sort(duplicates) produced unsorted result: %v", data)
	}
}

func TestSortNaN(t *testing.T) {
	data := []float64{3, math.NaN(), 1, math.NaN(), 2}
	Sort(data)
	if !tiny.IsSorted(data) {
		t.Errorf("Sort(NaN) produced unsorted result: %v", data)
	}
}

// TestSortMatchesStdlib verifies Sort produces same result as slices.Sort
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for _, n := range testSizes {
		data1 := make([]int64, n)
		for i := range data1 {
			data1[i] = rng.Int63n(10000) - 5000
		}
		data2 := slices.Clone(data1)

		Sort(data1)
		slices.Sort(data2)

		if diff := cmp.Diff(data2, data1); diff != "" {
			t.Errorf("Sort(n=%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestSortPatterns(t *testing.T) {
	for _, p := range check.Patterns() {
		t.Run(string(p), func(t *testing.T) {
			for _, n := range testSizes {
				keys, err := check.Generate(p, n, 3)
				require.NoError(t, err)

				data := check.TagKeys(keys)
				before := slices.Clone(data)
				SortLessFunc(data, check.TaggedLess)

				require.NoError(t, check.VerifyPermutation(before, data), "n=%d", n)
				require.NoError(t, check.VerifySorted(data, check.TaggedLess), "n=%d", n)
			}
		})
	}
}

func TestSortFunc(t *testing.T) {
	data := []string{"pear", "fig", "apple", "kiwi"}
	SortFunc(data, strings.Compare)
	assert.Equal(t, []string{"apple", "fig", "kiwi", "pear"}, data)

	// Descending through a reversed comparator.
	SortFunc(data, func(a, b string) int { return strings.Compare(b, a) })
	assert.Equal(t, []string{"pear", "kiwi", "fig", "apple"}, data)
}

func TestIdempotent(t *testing.T) {
	data, err := check.Generate(check.Random, 500, 11)
	require.NoError(t, err)

	Sort(data)
	once := slices.Clone(data)
	Sort(data)
	assert.Equal(t, once, data)
}

func TestComparisonBound(t *testing.T) {
	for _, p := range check.Patterns() {
		for _, n := range testSizes {
			data, err := check.Generate(p, n, 5)
			require.NoError(t, err)

			calls := 0
			SortLessFunc(data, check.Counting(intLess, &calls))
			if bound := check.HeapSortBound(n); calls > bound {
				t.Errorf("pattern %s n=%d: %d comparisons, bound %d", p, n, calls, bound)
			}
		}
	}
}

func TestPanicSafety(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8, 17, 64} {
		keys, err := check.Generate(check.RandomDense, n, uint64(n))
		require.NoError(t, err)

		total := 0
		SortLessFunc(slices.Clone(keys), check.Counting(intLess, &total))

		for k := 1; k <= total; k++ {
			data := slices.Clone(keys)
			panicked := check.CatchInjected(func() {
				SortLessFunc(data, check.PanicAfter(k, intLess))
			})
			require.True(t, panicked, "n=%d k=%d", n, k)
			require.NoError(t, check.VerifyPermutation(keys, data), "n=%d k=%d", n, k)
		}
	}
}

func TestInconsistentOrder(t *testing.T) {
	for _, n := range testSizes {
		keys, err := check.Generate(check.Random, n, 1)
		require.NoError(t, err)

		data := slices.Clone(keys)
		SortLessFunc(data, check.RandomLess[int](uint64(n)))
		require.NoError(t, check.VerifyPermutation(keys, data), "n=%d", n)
	}
}

// TestNoAllocations checks that the unstable engine needs no auxiliary memory.
func TestNoAllocations(t *testing.T) {
	ref, err := check.Generate(check.Random, 512, 1)
	require.NoError(t, err)
	data := make([]int, len(ref))

	allocs := testing.AllocsPerRun(20, func() {
		copy(data, ref)
		SortLessFunc(data, intLess)
	})
	if allocs != 0 {
		t.Errorf("SortLessFunc allocated %v times per call, want 0", allocs)
	}
}

func TestSiftDown(t *testing.T) {
	// Root violates the heap, both subtrees are heaps.
	data := []int{1, 9, 8, 7, 6, 5, 4}
	SiftDown(data, 0, intLess)
	assert.True(t, isMaxHeap(data), "%v", data)
	assert.Equal(t, 9, data[0])

	// Sifting a leaf does nothing.
	leaf := []int{3, 2, 1}
	SiftDown(leaf, 2, intLess)
	assert.Equal(t, []int{3, 2, 1}, leaf)
}

func TestHeapsort(t *testing.T) {
	for _, n := range testSizes[2:] {
		data, err := check.Generate(check.SawAscending, n, 8)
		require.NoError(t, err)
		Heapsort(data, intLess)
		require.True(t, tiny.IsSorted(data), "n=%d", n)
	}
}
