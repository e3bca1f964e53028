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
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-tinysort/tiny/check"
)

// matrixConfig describes the verification matrix. It is read from a YAML
// file and overridden by flags.
//
//	engines: [stable, unstable]
//	patterns: [random, ascending, pipe_organ]
//	sizes: [0, 1, 2, 3, 17, 1000]
//	seeds: 3
//	workers: 8
//	panics: true
type matrixConfig struct {
	Engines  []string `yaml:"engines"`
	Patterns []string `yaml:"patterns"`
	Sizes    []int    `yaml:"sizes"`
	Seeds    int      `yaml:"seeds"`
	Workers  int      `yaml:"workers"`
	Panics   bool     `yaml:"panics"`
}

func defaultMatrix() matrixConfig {
	return matrixConfig{
		Engines:  engineNames(),
		Patterns: lo.Map(check.Patterns(), func(p check.Pattern, _ int) string { return string(p) }),
		Sizes:    []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 64, 100, 1000, 4096},
		Seeds:    2,
	}
}

// loadMatrix reads a matrix file. Keys missing from the file keep their
// default values; unknown keys are an error.
func loadMatrix(path string) (matrixConfig, error) {
	m := defaultMatrix()

	data, err := os.ReadFile(path)
	if err != nil {
		return m, errors.WithStack(err)
	}
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return m, errors.Wrapf(err, "parsing %s", path)
	}
	return m, nil
}

func (m matrixConfig) validate() error {
	if len(m.Engines) == 0 {
		return errors.New("no engines selected")
	}
	for _, name := range m.Engines {
		if _, err := lookupEngine(name); err != nil {
			return err
		}
	}
	if len(m.Patterns) == 0 {
		return errors.New("no patterns selected")
	}
	for _, name := range m.Patterns {
		if _, err := check.ParsePattern(name); err != nil {
			return err
		}
	}
	if len(m.Sizes) == 0 {
		return errors.New("no sizes selected")
	}
	if n, found := lo.Find(m.Sizes, func(n int) bool { return n < 0 }); found {
		return errors.Errorf("negative size %d", n)
	}
	if m.Seeds < 1 {
		return errors.Errorf("seeds must be >= 1, got %d", m.Seeds)
	}
	return nil
}

// matrixFlags holds flag values until they are merged over the file.
type matrixFlags struct {
	config string
	values matrixConfig
}

func addMatrixFlags(fs *pflag.FlagSet, f *matrixFlags) {
	fs.StringVar(&f.config, "config", "", "YAML file describing the verification matrix")
	fs.StringSliceVar(&f.values.Engines, "engines", nil, "engines to run (default: all)")
	fs.StringSliceVar(&f.values.Patterns, "patterns", nil, "input patterns (default: all)")
	fs.IntSliceVar(&f.values.Sizes, "sizes", nil, "input sizes")
	fs.IntVar(&f.values.Seeds, "seeds", 0, "seeds per (engine, pattern, size)")
	fs.IntVar(&f.values.Workers, "workers", 0, "parallel workers (default: GOMAXPROCS)")
	fs.BoolVar(&f.values.Panics, "panics", false, "also inject comparison panics")
}

// resolveMatrix merges defaults, the config file and explicitly set flags,
// in that order of increasing precedence.
func resolveMatrix(fs *pflag.FlagSet, f *matrixFlags) (matrixConfig, error) {
	m := defaultMatrix()
	if f.config != "" {
		var err error
		if m, err = loadMatrix(f.config); err != nil {
			return m, err
		}
	}

	if fs.Changed("engines") {
		m.Engines = f.values.Engines
	}
	if fs.Changed("patterns") {
		m.Patterns = f.values.Patterns
	}
	if fs.Changed("sizes") {
		m.Sizes = f.values.Sizes
	}
	if fs.Changed("seeds") {
		m.Seeds = f.values.Seeds
	}
	if fs.Changed("workers") {
		m.Workers = f.values.Workers
	}
	if fs.Changed("panics") {
		m.Panics = f.values.Panics
	}

	m.Engines = lo.Uniq(m.Engines)
	m.Patterns = lo.Uniq(m.Patterns)
	m.Sizes = lo.Uniq(m.Sizes)

	return m, m.validate()
}
