// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simdbench compares the running time of SSE2, AVX and AVX2
// int32 sum kernels on a large shared buffer.
//
//	simdbench compare [-runs 10] [-length 800000000] [-kernels sse2,avx,avx2]
//	simdbench sum avx2
//	simdbench kernels
package main

import (
	"regexp"

	"github.com/grailbio/simdbench/bench"
	"github.com/grailbio/simdbench/cmdutil"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/log"
	"github.com/grailbio/simdbench/must"
	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:  "simdbench",
		Short: "Benchmark SIMD int32 sum kernels",
		Long: `
Command simdbench sums large buffers of pseudorandom int32 values with
vector kernels of different widths and reports how their running times
compare.  All kernels compute the same wraparound sum; only their speed
differs.
`,
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdCompare(),
			newCmdSum(),
			newCmdKernels(),
			cmdutil.CreateVersionCommand("version", "simdbench"),
		},
	}
}

func main() {
	log.AddFlags()
	log.SetPrefix("simdbench: ")
	log.SetFlags(0)
	must.Func = func(depth int, v ...interface{}) {
		cmdutil.Fatal(v...)
	}
	// Every kernel must accept the default buffer, or compare fails
	// without flags.
	must.Nilf(kernel.CheckLength(bench.DefaultLength, kernel.All()...), "default length %d", bench.DefaultLength)
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile(`^log$`))
	cmdline.Main(newCmdRoot())
}
