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
	"math"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tinysort/tiny/check"
)

type benchConfig struct {
	engines  []string
	patterns []string
	size     int
	rounds   int
}

// benchResult is the measurement of one (engine, pattern) pair.
type benchResult struct {
	engine      string
	pattern     check.Pattern
	nsPerElem   float64
	comparisons int
}

// benchOne sorts a fresh copy of the same input rounds times and keeps the
// fastest round. Comparisons are counted on a separate, untimed run.
func benchOne(e engine, p check.Pattern, size, rounds int) (benchResult, error) {
	ref, err := check.Generate(p, size, 1)
	if err != nil {
		return benchResult{}, err
	}

	res := benchResult{engine: e.name, pattern: p}

	data := slices.Clone(ref)
	e.sortInts(data, check.Counting(intLess, &res.comparisons))

	best := time.Duration(math.MaxInt64)
	for range rounds {
		copy(data, ref)
		start := time.Now()
		e.sortInts(data, intLess)
		best = min(best, time.Since(start))
	}
	res.nsPerElem = float64(best.Nanoseconds()) / float64(max(size, 1))

	return res, nil
}

func runBench(out io.Writer, cfg benchConfig) error {
	if cfg.size < 2 {
		return errors.Errorf("size must be >= 2, got %d", cfg.size)
	}
	if cfg.rounds < 1 {
		return errors.Errorf("rounds must be >= 1, got %d", cfg.rounds)
	}

	nlogn := float64(cfg.size) * math.Log2(float64(cfg.size))
	fmt.Fprintf(out, "%s, n=%s, best of %d\n\n", platformSummary(), humanize.Comma(int64(cfg.size)), cfg.rounds)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENGINE\tPATTERN\tNS/ELEM\tCMP/ELEM\tCMP/(N*LOG2 N)")
	for _, name := range cfg.engines {
		e, err := lookupEngine(name)
		if err != nil {
			return err
		}
		for _, pname := range cfg.patterns {
			p, err := check.ParsePattern(pname)
			if err != nil {
				return err
			}
			r, err := benchOne(e, p, cfg.size, cfg.rounds)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.3f\n",
				r.engine, r.pattern,
				r.nsPerElem,
				float64(r.comparisons)/float64(cfg.size),
				float64(r.comparisons)/nlogn)
		}
	}
	return tw.Flush()
}

func newBenchCmd() *cobra.Command {
	defaults := defaultMatrix()
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure time and comparisons per element for each engine and pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVar(&cfg.engines, "engines", defaults.Engines, "engines to measure")
	fs.StringSliceVar(&cfg.patterns, "patterns", defaults.Patterns, "input patterns")
	fs.IntVar(&cfg.size, "size", 10000, "elements per input")
	fs.IntVar(&cfg.rounds, "rounds", 5, "timed rounds per (engine, pattern)")
	return cmd
}
