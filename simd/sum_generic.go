// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine
// +build !amd64 appengine

package simd

// Only the scalar kernel is native here; the x86 kernels are emulated.
func supported(ext Extension) bool {
	return ext == Scalar
}

func sumInt32Unsafe(src []int32, ext Extension) int32 {
	return sumInt32Emulated(src, ext)
}
