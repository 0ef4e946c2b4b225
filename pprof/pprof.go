// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pprof records CPU profiles of benchmark sessions.  Kernel
// invocations run under a "kernel" profiler label, so a profile of a whole
// session can be split per kernel with `go tool pprof -tagfocus kernel=avx2`.
package pprof

import (
	"context"
	"os"
	rtpprof "runtime/pprof"
	"sync"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/log"
)

// Profiler writes a CPU profile to a file between Start and Stop.
type Profiler struct {
	mu   sync.Mutex
	file *os.File
}

// Start begins CPU profiling into the named file.  Only one profile can be
// recorded at a time in a process.
func Start(path string) (*Profiler, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.E("creating cpu profile", err)
	}
	if err := rtpprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.E("starting cpu profile", err)
	}
	log.Printf("cpu profile: writing %s", path)
	return &Profiler{file: f}, nil
}

// Stop ends profiling and closes the profile file.  Calling Stop more than
// once is a no-op.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.file == nil {
		return nil
	}
	rtpprof.StopCPUProfile()
	err := p.file.Close()
	log.Debug.Printf("cpu profile: wrote %s", p.file.Name())
	p.file = nil
	if err != nil {
		return errors.E("closing cpu profile", err)
	}
	return nil
}

// Do calls f with the profiler label kernel=name attached to the calling
// goroutine.  Labels cost nothing measurable when no profile is recorded.
func Do(name string, f func()) {
	rtpprof.Do(context.Background(), rtpprof.Labels("kernel", name), func(context.Context) { f() })
}
