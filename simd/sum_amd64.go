// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine
// +build amd64,!appengine

package simd

import "golang.org/x/sys/cpu"

//go:generate go run ./internal/asmgen -out sum_amd64.s -pkg simd

// *** the following functions are defined in sum_amd64.s

// Each kernel accumulates the first len(src) &^ (width-1) elements of src into
// a zeroed vector register and spills the register into lanes.

//go:noescape
func sumInt32x4SSE2Asm(lanes *[4]int32, src []int32)

//go:noescape
func sumInt32x4AVXAsm(lanes *[4]int32, src []int32)

//go:noescape
func sumInt32x8AVX2Asm(lanes *[8]int32, src []int32)

// *** end assembly function signatures

// These are read once; x/sys/cpu already accounts for OS support of the YMM
// state.
var (
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX  = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
)

func supported(ext Extension) bool {
	switch ext {
	case Scalar:
		return true
	case SSE2:
		return hasSSE2
	case AVX:
		return hasAVX
	case AVX2:
		return hasAVX2
	}
	return false
}

func sumInt32Unsafe(src []int32, ext Extension) int32 {
	switch ext {
	case SSE2:
		if hasSSE2 {
			var lanes [4]int32
			sumInt32x4SSE2Asm(&lanes, src)
			return HorizontalSum(lanes[:])
		}
	case AVX:
		if hasAVX {
			var lanes [4]int32
			sumInt32x4AVXAsm(&lanes, src)
			return HorizontalSum(lanes[:])
		}
	case AVX2:
		if hasAVX2 {
			var lanes [8]int32
			sumInt32x8AVX2Asm(&lanes, src)
			return HorizontalSum(lanes[:])
		}
	}
	return sumInt32Emulated(src, ext)
}
