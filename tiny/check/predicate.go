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

	"github.com/pkg/errors"
)

// ErrInjectedPanic is the value panicked by predicates built with PanicAfter.
var ErrInjectedPanic = errors.New("injected comparison panic")

// Counting wraps isLess so every call increments *calls.
func Counting[T any](isLess func(a, b T) bool, calls *int) func(a, b T) bool {
	return func(a, b T) bool {
		*calls++
		return isLess(a, b)
	}
}

// PanicAfter wraps isLess so that its k-th call (1-based) panics with
// ErrInjectedPanic. Calls before that are forwarded to isLess.
func PanicAfter[T any](k int, isLess func(a, b T) bool) func(a, b T) bool {
	calls := 0
	return func(a, b T) bool {
		calls++
		if calls == k {
			panic(ErrInjectedPanic)
		}
		return isLess(a, b)
	}
}

// RandomLess returns a predicate whose answers are random: an inconsistent
// order. Sorting with it has an unspecified result but must still permute.
func RandomLess[T any](seed uint64) func(a, b T) bool {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(a, b T) bool {
		return rng.IntN(2) == 0
	}
}

// CatchInjected runs fn and reports whether it panicked with
// ErrInjectedPanic. Panics with any other value are propagated.
func CatchInjected(fn func()) (panicked bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok && errors.Is(err, ErrInjectedPanic) {
			panicked = true
			return
		}
		panic(r)
	}()

	fn()
	return false
}
