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

package main

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-tinysort/tiny/check"
	"github.com/ajroetker/go-tinysort/tiny/stable"
	"github.com/ajroetker/go-tinysort/tiny/unstable"
)

// engine adapts one sort implementation to the element types the checks
// use.
type engine struct {
	name string

	// stable engines must keep equal keys in input order.
	stable bool

	sortInts   func(v []int, isLess func(a, b int) bool)
	sortTagged func(v []check.Tagged, isLess func(a, b check.Tagged) bool)

	// bound is the most comparisons a sort of n elements may make.
	bound func(n int) int
}

var engines = []engine{
	{
		name:       "stable",
		stable:     true,
		sortInts:   stable.SortLessFunc[int],
		sortTagged: stable.SortLessFunc[check.Tagged],
		bound:      check.MergeSortBound,
	},
	{
		name:       "unstable",
		sortInts:   unstable.SortLessFunc[int],
		sortTagged: unstable.SortLessFunc[check.Tagged],
		bound:      check.HeapSortBound,
	},
}

func engineNames() []string {
	return lo.Map(engines, func(e engine, _ int) string { return e.name })
}

func lookupEngine(name string) (engine, error) {
	i := slices.IndexFunc(engines, func(e engine) bool { return e.name == name })
	if i < 0 {
		return engine{}, errors.Errorf("unknown engine %q (known: %v)", name, engineNames())
	}
	return engines[i], nil
}
