// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// SumInt32Lanes adds src into the accumulator lanes, len(lanes) elements at a
// time: lanes[j] += src[i+j] for every full stride starting at i.  Additions
// wrap around.  The trailing len(src) % len(lanes) elements are ignored.
//
// This is the generic form of every kernel in this package; the assembly
// kernels are specializations of it for a fixed lane width.
func SumInt32Lanes(lanes, src []int32) {
	width := len(lanes)
	if width == 0 {
		return
	}
	nFull := len(src) - len(src)%width
	for i := 0; i < nFull; i += width {
		stride := src[i : i+width]
		for j, v := range stride {
			lanes[j] += v
		}
	}
}

// HorizontalSum collapses an accumulator into a single wrapped int32.
func HorizontalSum(lanes []int32) int32 {
	var sum int32
	for _, v := range lanes {
		sum += v
	}
	return sum
}

// sumInt32Emulated runs the kernel for ext on the generic reduction.
func sumInt32Emulated(src []int32, ext Extension) int32 {
	var lanesArr [MaxLaneWidth]int32
	lanes := lanesArr[:ext.LaneWidth()]
	SumInt32Lanes(lanes, src)
	return HorizontalSum(lanes)
}

// SumInt32Unsafe returns the wrapped sum of src computed with the given
// extension's kernel, falling back to the generic reduction when the host
// doesn't support the extension.
//
// WARNING: len(src) is not validated.  When it is not a multiple of
// ext.LaneWidth(), only the first len(src) - len(src) % ext.LaneWidth()
// elements are summed.
func SumInt32Unsafe(src []int32, ext Extension) int32 {
	return sumInt32Unsafe(src, ext)
}

// SumInt32 returns the wrapped sum of src computed with the given extension's
// kernel.  It panics if len(src) is not a multiple of ext.LaneWidth().
func SumInt32(src []int32, ext Extension) int32 {
	if len(src)%ext.LaneWidth() != 0 {
		panic("SumInt32() requires len(src) to be a multiple of the lane width.")
	}
	return sumInt32Unsafe(src, ext)
}
