// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/grailbio/simdbench/bench"
	"github.com/grailbio/simdbench/cmdutil"
	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/log"
	"v.io/x/lib/cmdline"
)

func newCmdSum() *cmdline.Command {
	var (
		length int
		seed   uint64
	)
	cmd := &cmdline.Command{
		Name:     "sum",
		Short:    "Sum one random buffer with a single kernel",
		ArgsName: "<kernel>",
		Long: `
Sum fills a buffer with pseudorandom values and sums it once with the named
kernel (sse2, avx, avx2 or scalar), printing the sum and the time taken.
`,
	}
	cmd.Flags.IntVar(&length, "length", bench.DefaultLength, "number of int32 elements in the buffer")
	cmd.Flags.Uint64Var(&seed, "seed", 0, "generator seed; 0 derives one from the clock")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
		if len(args) != 1 {
			return env.UsageErrorf("sum: expected one kernel name, got %d arguments", len(args))
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return runSum(env, args[0], length, seed)
	})
	return cmd
}

func runSum(env *cmdline.Env, name string, length int, seed uint64) error {
	ks, err := kernel.Select([]string{name})
	if err != nil {
		return err
	}
	k := ks[0]
	if err := kernel.CheckLength(length, k); err != nil {
		return err
	}
	buf, err := bench.NewBuffer(length)
	if err != nil {
		return errors.E("generating", err)
	}
	bench.PCGGenerator{}.Fill(buf, seed)
	log.Debug.Printf("sum: filled %d elements with seed %d", length, seed)
	start := time.Now()
	sum := k.Sum(buf)
	elapsed := time.Since(start)
	_, err = fmt.Fprintf(env.Stdout, "%s Int Sum Result: %d Time: %.6g seconds\n", k.Title, sum, elapsed.Seconds())
	return err
}
