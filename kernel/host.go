// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"strings"

	"github.com/grailbio/simdbench/simd"
	"github.com/klauspost/cpuid/v2"
)

// HostInfo describes the machine a benchmark runs on.  Cache sizes are in
// bytes, and negative when unknown.
type HostInfo struct {
	Brand        string
	LogicalCores int
	L1D, L2, L3  int
	Extensions   []simd.Extension
}

// Host returns a description of the current machine.
func Host() HostInfo {
	h := HostInfo{
		Brand:        strings.TrimSpace(cpuid.CPU.BrandName),
		LogicalCores: cpuid.CPU.LogicalCores,
		L1D:          cpuid.CPU.Cache.L1D,
		L2:           cpuid.CPU.Cache.L2,
		L3:           cpuid.CPU.Cache.L3,
	}
	if h.Brand == "" {
		h.Brand = "unknown CPU"
	}
	for _, ext := range simd.Extensions() {
		if ext.Supported() {
			h.Extensions = append(h.Extensions, ext)
		}
	}
	return h
}

// String returns a one-line description, e.g.
// "Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz, 12 threads, L2 256 KiB, L3 12 MiB, scalar/sse2/avx/avx2".
func (h HostInfo) String() string {
	var b strings.Builder
	b.WriteString(h.Brand)
	if h.LogicalCores > 0 {
		fmt.Fprintf(&b, ", %d threads", h.LogicalCores)
	}
	for _, c := range []struct {
		name string
		size int
	}{{"L2", h.L2}, {"L3", h.L3}} {
		if c.size > 0 {
			fmt.Fprintf(&b, ", %s %s", c.name, byteSize(c.size))
		}
	}
	names := make([]string, len(h.Extensions))
	for i, ext := range h.Extensions {
		names[i] = ext.String()
	}
	fmt.Fprintf(&b, ", %s", strings.Join(names, "/"))
	return b.String()
}

func byteSize(n int) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%d MiB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%d KiB", n>>10)
	}
	return fmt.Sprintf("%d B", n)
}
