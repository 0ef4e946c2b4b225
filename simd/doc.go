// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides SIMD-based reductions over int32 slices, one per x86
// instruction family, so that the benefit of wider vector registers can be
// measured on a memory-bandwidth-bound workload.
//
// Every kernel implements the same contract: the slice is walked in strides of
// the kernel's lane width, each stride is added lane-wise into a vector
// accumulator with two's-complement wraparound, and the accumulator is then
// spilled into a [width]int32 array and summed with ordinary scalar
// additions.  The result is therefore the sum of the elements mod 2^32, and
// all kernels return identical results for the same input.
//
// The available instruction families are described by Extension:
//
// - SSE2: 4 lanes, MOVOU/PADDL (legacy encoding).
//
// - AVX: 4 lanes, VMOVDQU/VPADDD on XMM registers (VEX encoding).
//
// - AVX2: 8 lanes, VMOVDQU/VPADDD on YMM registers.
//
// - Scalar: 1 lane, plain Go.  Always supported.
//
// On amd64 the vector kernels are implemented in assembly, see
// sum_amd64.s; it is generated by internal/asmgen.  Elsewhere, and when the
// host lacks the extension, the kernels are emulated by SumInt32Lanes, the
// generic lane-width-parameterized reduction, with identical results.
//
// As in the rest of this package's history, two classes of functions are
// exported:
//
// - Functions with 'Unsafe' in their names do not validate documented
// preconditions.  SumInt32Unsafe silently ignores the trailing
// len(src) % width elements.
//
// - Their safe analogues panic when documented preconditions are not met.
package simd
