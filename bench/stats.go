// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"time"
)

// PercentDiff returns (base-other)/base*100, the runtime saved by other
// relative to base.  A zero base yields 0.
func PercentDiff(base, other time.Duration) float64 {
	if base == 0 {
		return 0
	}
	return float64(base-other) / float64(base) * 100
}

// Pair is the running total of percentage differences between two kernels,
// Base being the earlier one in the session order.
type Pair struct {
	Base, Other string
	Total       float64
}

// Stats accumulates one Pair for every ordered kernel pair (i, j), i < j.
// The zero value is not usable; see NewStats.
type Stats struct {
	Kernels []string
	Runs    int
	Pairs   []Pair
}

// NewStats returns empty statistics for the given kernel order.
func NewStats(kernels []string) Stats {
	s := Stats{Kernels: append([]string(nil), kernels...)}
	for i := range kernels {
		for j := i + 1; j < len(kernels); j++ {
			s.Pairs = append(s.Pairs, Pair{Base: kernels[i], Other: kernels[j]})
		}
	}
	return s
}

// Add folds one run's elapsed times, ordered as s.Kernels, into the totals.
func (s *Stats) Add(times []time.Duration) {
	if len(times) != len(s.Kernels) {
		panic(fmt.Sprintf("stats: got %d times for %d kernels", len(times), len(s.Kernels)))
	}
	p := 0
	for i := range times {
		for j := i + 1; j < len(times); j++ {
			s.Pairs[p].Total += PercentDiff(times[i], times[j])
			p++
		}
	}
	s.Runs++
}

// Average returns the mean percentage difference of pair p over the
// accumulated runs.
func (s Stats) Average(p Pair) float64 {
	if s.Runs == 0 {
		return 0
	}
	return p.Total / float64(s.Runs)
}

// Averages returns the mean percentage difference of every pair, in the
// order of s.Pairs.
func (s Stats) Averages() []float64 {
	avg := make([]float64, len(s.Pairs))
	for i, p := range s.Pairs {
		avg[i] = s.Average(p)
	}
	return avg
}
