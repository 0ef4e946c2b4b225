// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"runtime"

	"github.com/grailbio/simdbench/errors"
	"github.com/zeebo/pcg"
)

// A Generator fills a buffer with pseudorandom input.  The same seed
// must produce the same contents.
type Generator interface {
	Fill(buf []int32, seed uint64)
}

// PCGGenerator fills buffers with nonnegative values drawn uniformly from
// [0, 2^31) by a PCG generator.
type PCGGenerator struct{}

// Fill implements Generator.
func (PCGGenerator) Fill(buf []int32, seed uint64) {
	rng := pcg.New(seed)
	for i := range buf {
		buf[i] = int32(rng.Uint32() >> 1)
	}
}

// NewBuffer allocates a zeroed buffer of n elements.  A failed allocation
// is returned as a fatal errors.OOM error rather than crashing the process.
// The runtime aborts outright when the heap is exhausted, so only requests
// it refuses up front (for example lengths beyond the address space) can be
// reported this way.
func NewBuffer(n int) (buf []int32, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf = nil
			err = errors.E(errors.OOM, errors.Fatal, fmt.Sprintf("allocating %d-element buffer: %v", n, r))
		}
	}()
	if n < 0 {
		return nil, errors.E(errors.Precondition, errors.Fatal, fmt.Sprintf("buffer length %d is negative", n))
	}
	return make([]int32, n), nil
}
