// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"sync"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/log"
	"v.io/x/lib/cmdline"
)

var (
	mu      sync.Mutex
	exitFns []func() error
)

// OnExit registers fn to run after the current command's runner returns,
// whether or not it failed.  Functions run in the reverse order of
// registration; the first error they return is reported alongside any
// error from the command itself.
func OnExit(fn func() error) {
	mu.Lock()
	exitFns = append(exitFns, fn)
	mu.Unlock()
}

func runExit() error {
	mu.Lock()
	fns := exitFns
	exitFns = nil
	mu.Unlock()
	var err error
	for i := len(fns) - 1; i >= 0; i-- {
		if e := fns[i](); e != nil {
			log.Error.Printf("exit hook: %v", e)
			if err == nil {
				err = e
			}
		}
	}
	return err
}

// RunnerFunc is an adapter that turns regular functions into cmdline.Runners.
type RunnerFunc func(*cmdline.Env, []string) error

// Run implements the cmdline.Runner interface method by calling f(env, args)
// and then running the functions registered with OnExit.  Log output goes
// to env.Stderr while f runs.
func (f RunnerFunc) Run(env *cmdline.Env, args []string) (err error) {
	if env.Stderr != nil {
		log.SetOutput(env.Stderr)
	}
	defer errors.CleanUp(runExit, &err)
	return f(env, args)
}
