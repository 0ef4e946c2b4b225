// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"time"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/log"
	"github.com/grailbio/simdbench/pprof"
)

// Phase is the state of a Session.
type Phase int

const (
	// Idle is the state before Run and after it returns.
	Idle Phase = iota
	// Generating refills the input buffer.
	Generating
	// Timing invokes and times each kernel.
	Timing
	// Accumulating folds a run into the statistics.
	Accumulating
	// Reporting hands a run or the summary to the reporter.
	Reporting
)

var phaseNames = [...]string{
	Idle:         "idle",
	Generating:   "generating",
	Timing:       "timing",
	Accumulating: "accumulating",
	Reporting:    "reporting",
}

// String returns the phase name used to annotate session errors.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Measurement is the outcome of a single kernel invocation.
type Measurement struct {
	// Run is the 1-based run number.
	Run     int
	Kernel  kernel.Kernel
	Sum     int32
	Elapsed time.Duration
}

// Options configures a Session.
type Options struct {
	// Runs is the number of runs; it must be positive.
	Runs int
	// Length is the number of elements of the input buffer.
	Length int
	// Seed is the session seed.  Run r (0-based) fills the buffer with
	// seed Seed+r.
	Seed uint64
	// Verify fails the session when the kernels of a run disagree.
	Verify bool
	// Generator fills the buffer.  Defaults to PCGGenerator.
	Generator Generator
	// Reporter receives results.  Defaults to discarding them.
	Reporter Reporter
	// Now is the session clock.  Defaults to time.Now.
	Now func() time.Time
}

// Session runs a set of kernels repeatedly against one input buffer.  A
// Session is not safe for concurrent use.
type Session struct {
	kernels []kernel.Kernel
	opts    Options
	buf     []int32
	phase   Phase
}

// NewSession returns a session over the given kernels, invoked in order.
func NewSession(kernels []kernel.Kernel, opts Options) *Session {
	if opts.Generator == nil {
		opts.Generator = PCGGenerator{}
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{kernels: kernels, opts: opts}
}

// Phase returns the phase the session is in, or failed in.
func (s *Session) Phase() Phase { return s.phase }

func (s *Session) errorf(err error) error {
	return errors.E(s.phase.String(), err)
}

// Run executes all runs and returns the accumulated statistics.  The
// returned error names the phase that failed.  The input buffer is
// allocated on the first call and reused by later calls.
func (s *Session) Run() (Stats, error) {
	names := kernel.Names(s.kernels)
	stats := NewStats(names)
	if len(s.kernels) == 0 {
		return stats, errors.E(errors.Precondition, errors.Fatal, "no kernels selected")
	}
	if s.opts.Runs <= 0 {
		return stats, errors.E(errors.Precondition, errors.Fatal, fmt.Sprintf("run count %d is not positive", s.opts.Runs))
	}
	if err := kernel.CheckLength(s.opts.Length, s.kernels...); err != nil {
		return stats, err
	}
	log.Printf("session: %d runs of %v over %d elements, seed %d", s.opts.Runs, names, s.opts.Length, s.opts.Seed)

	s.phase = Generating
	if s.buf == nil {
		buf, err := NewBuffer(s.opts.Length)
		if err != nil {
			return stats, s.errorf(err)
		}
		s.buf = buf
	}
	times := make([]time.Duration, len(s.kernels))
	for r := 0; r < s.opts.Runs; r++ {
		s.phase = Generating
		seed := s.opts.Seed + uint64(r)
		s.opts.Generator.Fill(s.buf, seed)
		log.Debug.Printf("run %d: filled %d elements with seed %d", r+1, len(s.buf), seed)

		s.phase = Timing
		ms := make([]Measurement, len(s.kernels))
		for i, k := range s.kernels {
			ms[i] = s.time(r+1, k)
			times[i] = ms[i].Elapsed
			log.Debug.Printf("run %d: %s sum %d in %v", r+1, k.Name, ms[i].Sum, ms[i].Elapsed)
		}
		if s.opts.Verify {
			if err := verify(ms); err != nil {
				return stats, s.errorf(err)
			}
		}

		s.phase = Accumulating
		stats.Add(times)

		s.phase = Reporting
		if err := s.opts.Reporter.Run(r+1, ms); err != nil {
			return stats, s.errorf(err)
		}
	}
	s.phase = Reporting
	if err := s.opts.Reporter.Summary(stats); err != nil {
		return stats, s.errorf(err)
	}
	s.phase = Idle
	return stats, nil
}

func (s *Session) time(run int, k kernel.Kernel) Measurement {
	m := Measurement{Run: run, Kernel: k}
	pprof.Do(k.Name, func() {
		start := s.opts.Now()
		m.Sum = k.Sum(s.buf)
		m.Elapsed = s.opts.Now().Sub(start)
	})
	return m
}

func verify(ms []Measurement) error {
	for _, m := range ms[1:] {
		if m.Sum != ms[0].Sum {
			return errors.E(errors.Integrity, errors.Fatal,
				fmt.Sprintf("run %d: %s sum %d disagrees with %s sum %d",
					m.Run, m.Kernel.Name, m.Sum, ms[0].Kernel.Name, ms[0].Sum))
		}
	}
	return nil
}
