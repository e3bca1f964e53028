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
	"fmt"
	"io"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tinysort/tiny/check"
	"github.com/ajroetker/go-tinysort/tiny/stable"
	"github.com/ajroetker/go-tinysort/tiny/workerpool"
)

// verifyCase is one cell of the verification matrix.
type verifyCase struct {
	engine  engine
	pattern check.Pattern
	size    int
	seed    uint64
	panics  bool
}

func (c verifyCase) String() string {
	return fmt.Sprintf("%s/%s/n=%d/seed=%d", c.engine.name, c.pattern, c.size, c.seed)
}

// caseResult is what a passing case reports back for the summary.
type caseResult struct {
	comparisons int
	injected    int
}

func intLess(a, b int) bool { return a < b }

// buildCases expands a validated matrix into cases.
func buildCases(m matrixConfig) ([]verifyCase, error) {
	var cases []verifyCase
	for _, name := range m.Engines {
		e, err := lookupEngine(name)
		if err != nil {
			return nil, err
		}
		for _, pname := range m.Patterns {
			p, err := check.ParsePattern(pname)
			if err != nil {
				return nil, err
			}
			for _, n := range m.Sizes {
				for seed := range m.Seeds {
					cases = append(cases, verifyCase{
						engine:  e,
						pattern: p,
						size:    n,
						seed:    uint64(seed),
						panics:  m.Panics,
					})
				}
			}
		}
	}
	return cases, nil
}

// runCase checks every property of one case and returns the first failure.
func runCase(c verifyCase) (caseResult, error) {
	var res caseResult

	keys, err := check.Generate(c.pattern, c.size, c.seed)
	if err != nil {
		return res, errors.Wrapf(err, "%s", c)
	}

	// Sortedness, permutation and the comparison bound on plain ints.
	data := slices.Clone(keys)
	c.engine.sortInts(data, check.Counting(intLess, &res.comparisons))
	if err := check.VerifyPermutation(keys, data); err != nil {
		return res, errors.Wrapf(err, "%s", c)
	}
	if err := check.VerifySorted(data, intLess); err != nil {
		return res, errors.Wrapf(err, "%s", c)
	}
	if bound := c.engine.bound(c.size); res.comparisons > bound {
		return res, errors.Errorf("%s: %d comparisons exceed bound %d", c, res.comparisons, bound)
	}
	if c.size < 2 && res.comparisons != 0 {
		return res, errors.Errorf("%s: %d comparisons on trivial input", c, res.comparisons)
	}

	// Order among equal keys, observable through tags.
	tagged := check.TagKeys(keys)
	c.engine.sortTagged(tagged, check.TaggedLess)
	if c.engine.stable {
		err = check.VerifyStable(tagged)
	} else {
		err = check.VerifySorted(tagged, check.TaggedLess)
	}
	if err != nil {
		return res, errors.Wrapf(err, "%s", c)
	}

	if !c.panics || res.comparisons == 0 {
		return res, nil
	}

	// Panic at the first, a middle and the last comparison.
	for _, k := range lo.Uniq([]int{1, res.comparisons/2 + 1, res.comparisons}) {
		data := slices.Clone(keys)
		panicked := check.CatchInjected(func() {
			c.engine.sortInts(data, check.PanicAfter(k, intLess))
		})
		if !panicked {
			return res, errors.Errorf("%s: comparison %d did not panic", c, k)
		}
		if err := check.VerifyPermutation(keys, data); err != nil {
			return res, errors.Wrapf(err, "%s: after panic at comparison %d", c, k)
		}
		res.injected++
	}

	return res, nil
}

// verifyMatrix runs all cases and writes failures and a summary to out.
// It returns an error if any case failed or a scratch buffer leaked.
func verifyMatrix(out io.Writer, m matrixConfig) error {
	cases, err := buildCases(m)
	if err != nil {
		return err
	}

	pool := workerpool.New(m.Workers)
	defer pool.Close()

	results := make([]caseResult, len(cases))
	errs := pool.Collect(len(cases), func(i int) error {
		var err error
		results[i], err = runCase(cases[i])
		return err
	})

	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			red.Fprint(out, "FAIL ")
			fmt.Fprintln(out, err)
		}
	}

	comparisons := lo.SumBy(results, func(r caseResult) int { return r.comparisons })
	injected := lo.SumBy(results, func(r caseResult) int { return r.injected })

	// Every sort has returned; any live buffer was never released.
	if leaked := stable.LiveScratch(); leaked != 0 {
		red.Fprint(out, "FAIL ")
		fmt.Fprintf(out, "%d scratch buffers leaked\n", leaked)
		failed++
	}

	if failed > 0 {
		return errors.Errorf("%d of %s checks failed", failed, humanize.Comma(int64(len(cases))))
	}

	green.Fprint(out, "PASS ")
	fmt.Fprintf(out, "%s cases, %s comparisons, %s injected panics, %d workers\n",
		humanize.Comma(int64(len(cases))), humanize.Comma(int64(comparisons)),
		humanize.Comma(int64(injected)), pool.NumWorkers())
	return nil
}

func newVerifyCmd() *cobra.Command {
	var flags matrixFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check permutation, order, stability and panic safety over a matrix of inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := resolveMatrix(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			return verifyMatrix(cmd.OutOrStdout(), m)
		},
	}
	addMatrixFlags(cmd.Flags(), &flags)
	return cmd
}
