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

// Command tinysortcheck verifies and measures the tinysort engines.
//
// Usage:
//
//	tinysortcheck verify                              # default matrix
//	tinysortcheck verify --config matrix.yaml --panics # matrix from file
//	tinysortcheck verify --engines stable --sizes 0,1,2,1000 --seeds 5
//	tinysortcheck bench --size 100000 --rounds 10
//	tinysortcheck cpu
//
// verify runs every (engine, pattern, size, seed) case on a worker pool and
// checks that the output is a sorted permutation of the input, that the
// stable engine keeps equal keys in input order, that the comparison count
// stays within the engine's bound and, with --panics, that a comparison
// panicking at any point leaves a permutation behind and leaks no scratch
// buffer. It exits with status 1 if any case fails.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tinysortcheck",
		Short:         "Verify and benchmark the tinysort engines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVerifyCmd(), newBenchCmd(), newCPUCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
