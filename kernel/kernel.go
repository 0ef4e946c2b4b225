// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package kernel defines the closed set of int32 summation kernels compared by
// the benchmark driver, and the checks that must pass before they are run.
package kernel

import (
	"fmt"
	"strings"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/simd"
)

// Kernel is a summation kernel together with its identity.  Kernels are
// stateless; Sum may be called any number of times.
type Kernel struct {
	// Name identifies the kernel on the command line, e.g. "avx2".
	Name string
	// Title identifies the kernel in human-readable reports, e.g. "AVX2".
	Title string
	// Extension is the instruction family the kernel is built on.
	Extension simd.Extension
	// LaneWidth is the number of int32 elements added by one vector
	// instruction.
	LaneWidth int
	// Sum returns the wrapped sum of src.  It does not validate len(src):
	// trailing len(src) % LaneWidth elements are ignored.  Use CheckLength
	// before running a kernel.
	Sum func(src []int32) int32
}

func forExtension(title string, ext simd.Extension) Kernel {
	return Kernel{
		Name:      ext.String(),
		Title:     title,
		Extension: ext,
		LaneWidth: ext.LaneWidth(),
		Sum: func(src []int32) int32 {
			return simd.SumInt32Unsafe(src, ext)
		},
	}
}

// The kernel set.
var (
	SSE2   = forExtension("SSE2", simd.SSE2)
	AVX    = forExtension("AVX", simd.AVX)
	AVX2   = forExtension("AVX2", simd.AVX2)
	Scalar = forExtension("Scalar", simd.Scalar)
)

// String returns the kernel's title.
func (k Kernel) String() string {
	return k.Title
}

// Supported reports whether the host runs the kernel natively.  Unsupported
// kernels still compute correct sums through the generic reduction, but
// timing them is meaningless.
func (k Kernel) Supported() bool {
	return k.Extension.Supported()
}

// Reference returns the kernels of the reference comparison, in the order
// they are timed: SSE2, AVX, AVX2.
func Reference() []Kernel {
	return []Kernel{SSE2, AVX, AVX2}
}

// All returns every kernel, including the scalar fallback.
func All() []Kernel {
	return []Kernel{SSE2, AVX, AVX2, Scalar}
}

// Available returns the kernels the host runs natively, in the order of All.
func Available() []Kernel {
	var ks []Kernel
	for _, k := range All() {
		if k.Supported() {
			ks = append(ks, k)
		}
	}
	return ks
}

// Names returns the names of ks.
func Names(ks []Kernel) []string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.Name
	}
	return names
}

// Lookup returns the kernel with the given name.  Names are matched without
// regard to case.
func Lookup(name string) (Kernel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range All() {
		if k.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}

// Parse returns the named kernels, in the given order.  Unknown, duplicate
// or missing names are errors of kind Invalid.
func Parse(names []string) ([]Kernel, error) {
	if len(names) == 0 {
		return nil, errors.E(errors.Invalid, "no kernels selected")
	}
	ks := make([]Kernel, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		k, ok := Lookup(name)
		if !ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("unknown kernel %q (known: %s)", name, strings.Join(Names(All()), ", ")))
		}
		if seen[k.Name] {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("kernel %q selected twice", k.Name))
		}
		seen[k.Name] = true
		ks = append(ks, k)
	}
	return ks, nil
}

// Select is Parse followed by a capability check: a kernel the host cannot
// run natively is an error of kind NotSupported.
func Select(names []string) ([]Kernel, error) {
	ks, err := Parse(names)
	if err != nil {
		return nil, err
	}
	for _, k := range ks {
		if !k.Supported() {
			return nil, errors.E(errors.NotSupported,
				fmt.Sprintf("kernel %s: host lacks %s", k.Name, strings.ToUpper(k.Extension.String())))
		}
	}
	return ks, nil
}

// CheckLength returns an error of kind Precondition unless n is positive and
// a multiple of the lane width of every kernel in ks.  Without it, a kernel
// silently drops the trailing n % LaneWidth elements and its sum no longer
// matches the other kernels.
func CheckLength(n int, ks ...Kernel) error {
	if n <= 0 {
		return errors.E(errors.Precondition, errors.Fatal, fmt.Sprintf("buffer length %d is not positive", n))
	}
	for _, k := range ks {
		if n%k.LaneWidth != 0 {
			return errors.E(errors.Precondition, errors.Fatal,
				fmt.Sprintf("buffer length %d is not a multiple of the %d-lane width of kernel %s", n, k.LaneWidth, k.Name))
		}
	}
	return nil
}
