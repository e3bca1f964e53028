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
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

type feature struct {
	name string
	has  bool
}

// cpuFeatures lists the features relevant to the generated code of the
// engines: conditional moves, wide loads and the vector units used by copy.
func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"bmi1", cpu.X86.HasBMI1},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"erms", cpu.X86.HasERMS},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	return nil
}

// platformSummary is a one-line description of the machine, used as the
// header of bench output.
func platformSummary() string {
	var names []string
	for _, f := range cpuFeatures() {
		if f.has {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		names = []string{"no detected features"}
	}
	return fmt.Sprintf("%s/%s %s [%s]", runtime.GOOS, runtime.GOARCH, runtime.Version(), strings.Join(names, " "))
}

func writeCPUReport(out io.Writer) {
	fmt.Fprintf(out, "os:      %s\n", runtime.GOOS)
	fmt.Fprintf(out, "arch:    %s\n", runtime.GOARCH)
	fmt.Fprintf(out, "go:      %s\n", runtime.Version())
	fmt.Fprintf(out, "cpus:    %d\n", runtime.NumCPU())
	for _, f := range cpuFeatures() {
		fmt.Fprintf(out, "%-8s %v\n", f.name+":", f.has)
	}
}

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print the platform and CPU features",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeCPUReport(cmd.OutOrStdout())
		},
	}
}
