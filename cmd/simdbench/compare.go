// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/grailbio/simdbench/bench"
	"github.com/grailbio/simdbench/cmdutil"
	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/log"
	"github.com/grailbio/simdbench/pprof"
	"v.io/x/lib/cmdline"
)

type compareFlags struct {
	runs       int
	length     int
	kernels    string
	seed       uint64
	format     string
	verify     bool
	config     string
	cpuProfile string
}

func newCmdCompare() *cmdline.Command {
	var f compareFlags
	cmd := &cmdline.Command{
		Name:  "compare",
		Short: "Time the kernels against each other",
		Long: `
Compare fills a buffer with pseudorandom values, times one invocation of
each kernel on it, and repeats for the given number of runs, refilling the
buffer each time.  It then prints the average percentage difference in
running time for every pair of kernels.

Flags override values read from -config, a YAML file with the keys runs,
length, kernels, seed, format, verify and cpu-profile.
`,
	}
	def := bench.DefaultConfig()
	cmd.Flags.IntVar(&f.runs, "runs", def.Runs, "number of runs")
	cmd.Flags.IntVar(&f.length, "length", def.Length, "number of int32 elements in the buffer; must be a multiple of every kernel's lane width")
	cmd.Flags.StringVar(&f.kernels, "kernels", strings.Join(def.Kernels, ","), "comma-separated kernels to compare, in order")
	cmd.Flags.Uint64Var(&f.seed, "seed", 0, "session seed; 0 derives one from the clock")
	cmd.Flags.StringVar(&f.format, "format", def.Format, "output format: text or tsv")
	cmd.Flags.BoolVar(&f.verify, "verify", def.Verify, "fail when the kernels of a run disagree")
	cmd.Flags.StringVar(&f.config, "config", "", "YAML config file")
	cmd.Flags.StringVar(&f.cpuProfile, "cpu-profile", "", "write a CPU profile of the session to this file")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
		if len(args) != 0 {
			return env.UsageErrorf("compare: unexpected arguments %v", args)
		}
		c, err := f.resolve(cmd.ParsedFlags)
		if err != nil {
			return err
		}
		return runCompare(env, c)
	})
	return cmd
}

// resolve builds the session config: defaults, then the -config file,
// then flags set on the command line.  fs must be the command's
// ParsedFlags; cmdline parses a merged copy and leaves cmd.Flags unset.
func (f *compareFlags) resolve(fs *flag.FlagSet) (bench.Config, error) {
	c := bench.DefaultConfig()
	if f.config != "" {
		if err := bench.LoadConfig(f.config, &c); err != nil {
			return c, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "runs":
			c.Runs = f.runs
		case "length":
			c.Length = f.length
		case "kernels":
			c.Kernels = splitList(f.kernels)
		case "seed":
			c.Seed = f.seed
		case "format":
			c.Format = f.format
		case "verify":
			c.Verify = f.verify
		case "cpu-profile":
			c.CPUProfile = f.cpuProfile
		}
	})
	return c, nil
}

func splitList(s string) []string {
	var list []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}
	return list
}

func runCompare(env *cmdline.Env, c bench.Config) error {
	ks, err := c.Validate()
	if err != nil {
		return err
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("host: %s", kernel.Host())
	rep, err := bench.NewReporter(c.Format, env.Stdout)
	if err != nil {
		return err
	}
	if c.CPUProfile != "" {
		p, err := pprof.Start(c.CPUProfile)
		if err != nil {
			return err
		}
		cmdutil.OnExit(p.Stop)
	}
	s := bench.NewSession(ks, bench.Options{
		Runs:     c.Runs,
		Length:   c.Length,
		Seed:     c.Seed,
		Verify:   c.Verify,
		Reporter: rep,
	})
	if _, err := s.Run(); err != nil {
		if errors.IsFatal(err) {
			log.Error.Printf("compare: session aborted while %s", s.Phase())
		}
		return errors.E(fmt.Sprintf("compare (seed %d)", c.Seed), err)
	}
	return nil
}
