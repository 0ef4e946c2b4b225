// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kernel_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/simd"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

// referenceLength is the buffer length of the reference benchmark.
const referenceLength = 800000000

func TestSumsAgree(t *testing.T) {
	for iter := 0; iter < 50; iter++ {
		src := make([]int32, 8*rand.Intn(1000))
		for i := range src {
			src[i] = rand.Int31()
		}
		var want int32
		for _, v := range src {
			want += v
		}
		for _, k := range kernel.All() {
			if got := k.Sum(src); got != want {
				t.Fatalf("kernel %v: got %v, want %v (len %d)", k, got, want, len(src))
			}
		}
	}
}

func TestSmallBuffer(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	for _, k := range kernel.All() {
		expect.EQ(t, k.Sum(src), int32(36), "kernel %v", k)
	}
}

func TestTruncation(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	expect.EQ(t, kernel.SSE2.Sum(src), int32(36))
	expect.EQ(t, kernel.AVX.Sum(src), int32(36))
	expect.EQ(t, kernel.AVX2.Sum(src), int32(36))
	expect.EQ(t, kernel.Scalar.Sum(src), int32(55))

	err := kernel.CheckLength(len(src), kernel.SSE2)
	expect.True(t, errors.Is(errors.Precondition, err))
	expect.True(t, errors.IsFatal(err))
	expect.HasSubstr(t, err.Error(), "not a multiple of the 4-lane width of kernel sse2")
}

func TestCheckLength(t *testing.T) {
	assert.NoError(t, kernel.CheckLength(referenceLength, kernel.All()...))
	for _, k := range kernel.All() {
		expect.EQ(t, referenceLength%k.LaneWidth, 0, "kernel %v", k)
	}
	assert.NoError(t, kernel.CheckLength(12, kernel.SSE2, kernel.AVX))
	err := kernel.CheckLength(12, kernel.Reference()...)
	expect.True(t, errors.Is(errors.Precondition, err))
	expect.HasSubstr(t, err.Error(), "kernel avx2")

	for _, n := range []int{0, -8} {
		err := kernel.CheckLength(n, kernel.Scalar)
		expect.True(t, errors.Is(errors.Precondition, err), "length %d", n)
	}
	// No kernels: only positivity is checked.
	assert.NoError(t, kernel.CheckLength(7))
}

func TestParse(t *testing.T) {
	ks, err := kernel.Parse([]string{"sse2", "AVX", " avx2 "})
	assert.NoError(t, err)
	expect.EQ(t, kernel.Names(ks), []string{"sse2", "avx", "avx2"})
	expect.EQ(t, kernel.Names(kernel.Reference()), []string{"sse2", "avx", "avx2"})

	for _, names := range [][]string{
		nil,
		{"sse3"},
		{"avx", "avx"},
	} {
		_, err := kernel.Parse(names)
		expect.True(t, errors.Is(errors.Invalid, err), "names %v: %v", names, err)
	}

	k, ok := kernel.Lookup("scalar")
	expect.True(t, ok)
	expect.EQ(t, k.Title, "Scalar")
	expect.EQ(t, k.LaneWidth, 1)
	_, ok = kernel.Lookup("neon")
	expect.False(t, ok)
}

func TestSelect(t *testing.T) {
	ks, err := kernel.Select([]string{"scalar"})
	assert.NoError(t, err)
	expect.EQ(t, len(ks), 1)

	for _, k := range kernel.Reference() {
		_, err := kernel.Select([]string{k.Name})
		if k.Supported() {
			expect.NoError(t, err)
		} else {
			expect.True(t, errors.Is(errors.NotSupported, err), "kernel %v: %v", k, err)
		}
	}
}

func TestAvailable(t *testing.T) {
	ks := kernel.Available()
	assert.True(t, len(ks) > 0)
	expect.EQ(t, ks[len(ks)-1].Name, "scalar")
	for _, k := range ks {
		expect.True(t, k.Supported())
	}
}

func TestHost(t *testing.T) {
	h := kernel.Host()
	expect.True(t, h.Brand != "")
	assert.True(t, len(h.Extensions) > 0)
	expect.EQ(t, h.Extensions[0], simd.Scalar)
	expect.True(t, strings.Contains(h.String(), "scalar"))

	h = kernel.HostInfo{
		Brand:        "Test CPU",
		LogicalCores: 8,
		L2:           256 << 10,
		L3:           12 << 20,
		Extensions:   []simd.Extension{simd.Scalar, simd.SSE2},
	}
	expect.EQ(t, h.String(), "Test CPU, 8 threads, L2 256 KiB, L3 12 MiB, scalar/sse2")
}
