// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "fmt"

// Extension identifies the instruction family used by a summation kernel.
type Extension int

const (
	// Scalar sums one element at a time.
	Scalar Extension = iota
	// SSE2 sums with 128-bit MOVOU/PADDL.
	SSE2
	// AVX sums with VEX-encoded 128-bit VMOVDQU/VPADDD.
	AVX
	// AVX2 sums with 256-bit VMOVDQU/VPADDD.
	AVX2

	maxExtension
)

// MaxLaneWidth is the widest accumulator used by any Extension.
const MaxLaneWidth = 8

var extensionNames = [maxExtension]string{
	Scalar: "scalar",
	SSE2:   "sse2",
	AVX:    "avx",
	AVX2:   "avx2",
}

var laneWidths = [maxExtension]int{
	Scalar: 1,
	SSE2:   4,
	AVX:    4,
	AVX2:   8,
}

// Extensions returns every known extension, narrowest first.
func Extensions() []Extension {
	return []Extension{Scalar, SSE2, AVX, AVX2}
}

func (e Extension) valid() bool {
	return e >= Scalar && e < maxExtension
}

// String returns the lowercase name of the extension, e.g. "avx2".
func (e Extension) String() string {
	if !e.valid() {
		return fmt.Sprintf("extension(%d)", int(e))
	}
	return extensionNames[e]
}

// LaneWidth returns the number of int32 lanes in the extension's
// accumulator.  It panics on an unknown extension.
func (e Extension) LaneWidth() int {
	if !e.valid() {
		panic(fmt.Sprintf("simd: unknown extension %d", int(e)))
	}
	return laneWidths[e]
}

// Supported reports whether the host can run the extension natively.  Scalar
// is always supported.
func (e Extension) Supported() bool {
	if !e.valid() {
		return false
	}
	return supported(e)
}

// ParseExtension returns the extension with the given name.
func ParseExtension(name string) (Extension, error) {
	for e, n := range extensionNames {
		if n == name {
			return Extension(e), nil
		}
	}
	return Scalar, fmt.Errorf("unknown extension %q", name)
}
