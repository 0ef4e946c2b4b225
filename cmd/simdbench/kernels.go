// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/grailbio/simdbench/cmdutil"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/tsv"
	"v.io/x/lib/cmdline"
)

func newCmdKernels() *cmdline.Command {
	return &cmdline.Command{
		Name:  "kernels",
		Short: "List the kernels and whether this host supports them",
		Runner: cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
			if len(args) != 0 {
				return env.UsageErrorf("kernels: unexpected arguments %v", args)
			}
			return runKernels(env)
		}),
	}
}

func runKernels(env *cmdline.Env) error {
	if err := cmdutil.WriteWrappedMessage(env.Stdout, fmt.Sprintf("host: %s\n\n", kernel.Host())); err != nil {
		return err
	}
	w := tsv.NewWriter(env.Stdout)
	for _, col := range []string{"kernel", "title", "lanes", "supported"} {
		w.WriteString(col)
	}
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, k := range kernel.All() {
		w.WriteString(k.Name)
		w.WriteString(k.Title)
		w.WriteInt64(int64(k.LaneWidth))
		w.WriteBool(k.Supported())
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
