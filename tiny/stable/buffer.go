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
	"math"
	"sync/atomic"
	"unsafe"
)

// liveScratch counts scratch buffers that have been allocated and not yet
// released.
var liveScratch atomic.Int64

// LiveScratch returns the number of scratch buffers allocated and not yet
// released, across all goroutines. Once every sort call has returned, by
// normal return or panic, it is zero.
func LiveScratch() int64 {
	return liveScratch.Load()
}

// bufGuard owns the merge scratch buffer of one top-level sort call.
// release must run on every exit path, normally via defer.
type bufGuard[T any] struct {
	scratch []T
}

// newBufGuard allocates room for n elements of T. n must be > 0 and T must
// not be zero sized.
//
// Panics if the buffer size in bytes cannot be represented: the sort has no
// error return.
func newBufGuard[T any](n int) *bufGuard[T] {
	var dummy T
	if n <= 0 || uintptr(n) > uintptr(math.MaxInt)/unsafe.Sizeof(dummy) {
		panic("tinysort: scratch allocation failure")
	}

	g := &bufGuard[T]{scratch: make([]T, n)}
	liveScratch.Add(1)
	return g
}

// release drops the buffer. The contents are cleared first so the buffer
// does not keep element memory reachable.
func (g *bufGuard[T]) release() {
	if g.scratch == nil {
		return
	}
	clear(g.scratch)
	g.scratch = nil
	liveScratch.Add(-1)
}
