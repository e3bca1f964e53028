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
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// Pattern names a shape of input data.
type Pattern string

const (
	// Random is uniformly distributed over a large range, few duplicates.
	Random Pattern = "random"

	// RandomDense draws from about sqrt(n) distinct values.
	RandomDense Pattern = "random_dense"

	// RandomBinary contains only 0 and 1.
	RandomBinary Pattern = "random_binary"

	// Ascending is already sorted.
	Ascending Pattern = "ascending"

	// Descending is sorted in reverse.
	Descending Pattern = "descending"

	// AllEqual is a single repeated value.
	AllEqual Pattern = "all_equal"

	// SawAscending is a sequence of ascending runs of random length.
	SawAscending Pattern = "saw_ascending"

	// PipeOrgan ascends over the first half and descends over the second.
	PipeOrgan Pattern = "pipe_organ"

	// AscendingTail is sorted except for a random last tenth.
	AscendingTail Pattern = "ascending_tail"
)

var allPatterns = []Pattern{
	Random,
	RandomDense,
	RandomBinary,
	Ascending,
	Descending,
	AllEqual,
	SawAscending,
	PipeOrgan,
	AscendingTail,
}

// Patterns returns every known pattern.
func Patterns() []Pattern {
	return slices.Clone(allPatterns)
}

// ParsePattern returns the pattern named s.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(s)
	if !slices.Contains(allPatterns, p) {
		return "", errors.Errorf("unknown pattern %q", s)
	}
	return p, nil
}

// Generate returns n values shaped like p. The same (p, n, seed) always
// produces the same values.
func Generate(p Pattern, n int, seed uint64) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("negative size %d", n)
	}

	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	data := make([]int, n)

	switch p {
	case Random:
		for i := range data {
			data[i] = rng.IntN(1 << 30)
		}
	case RandomDense:
		distinct := max(isqrt(n), 1)
		for i := range data {
			data[i] = rng.IntN(distinct)
		}
	case RandomBinary:
		for i := range data {
			data[i] = rng.IntN(2)
		}
	case Ascending:
		for i := range data {
			data[i] = i
		}
	case Descending:
		for i := range data {
			data[i] = n - i
		}
	case AllEqual:
		for i := range data {
			data[i] = 66
		}
	case SawAscending:
		for i := 0; i < n; {
			run := min(1+rng.IntN(max(isqrt(n), 1)*2), n-i)
			start := rng.IntN(1 << 20)
			for j := range run {
				data[i+j] = start + j
			}
			i += run
		}
	case PipeOrgan:
		half := n / 2
		for i := range half {
			data[i] = i
		}
		for i := half; i < n; i++ {
			data[i] = n - i
		}
	case AscendingTail:
		sorted := n - n/10
		for i := range sorted {
			data[i] = i
		}
		for i := sorted; i < n; i++ {
			data[i] = rng.IntN(max(n, 1))
		}
	default:
		return nil, errors.Errorf("unknown pattern %q", p)
	}

	return data, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
