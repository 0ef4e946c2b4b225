// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors_test

import (
	goerrors "errors"
	"testing"

	"github.com/grailbio/simdbench/errors"
)

func TestError(t *testing.T) {
	err := goerrors.New("cannot allocate memory")
	e1 := errors.E(errors.OOM, "allocating 800000000 int32s", err)
	if got, want := e1.Error(), "allocating 800000000 int32s: out of memory: cannot allocate memory"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(errors.OOM, e1) {
		t.Errorf("error %v should be OOM", e1)
	}
	if errors.Is(errors.OOM, err) {
		t.Errorf("error %v should not be OOM", err)
	}
	if !goerrors.Is(e1, err) {
		t.Errorf("error %v should unwrap to %v", e1, err)
	}
}

func TestErrorChaining(t *testing.T) {
	err := errors.E(errors.Precondition, "length 10 is not a multiple of lane width 4")
	err = errors.E(errors.Fatal, "validating", err)
	if got, want := err.Error(), "validating: precondition failed (fatal):\n\tlength 10 is not a multiple of lane width 4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(errors.Precondition, err) {
		t.Errorf("error %v should be Precondition", err)
	}
	if !errors.IsFatal(err) {
		t.Errorf("error %v should be fatal", err)
	}
	if errors.IsFatal(errors.E("timing")) {
		t.Error("unannotated error should not be fatal")
	}
}

func TestIs(t *testing.T) {
	err := errors.E(errors.Integrity, "sums disagree")
	for _, wrapped := range []error{
		err,
		errors.E("timing", err),
		errors.E("run 3", errors.E("timing", err)),
	} {
		if !errors.Is(errors.Integrity, wrapped) {
			t.Errorf("error %v should be Integrity", wrapped)
		}
		if errors.Is(errors.Invalid, wrapped) {
			t.Errorf("error %v should not be Invalid", wrapped)
		}
	}
	if errors.Is(errors.Other, nil) {
		t.Error("nil error has no kind")
	}
}

func TestBadArgument(t *testing.T) {
	err := errors.E(3.14)
	if !errors.Is(errors.Invalid, err) {
		t.Errorf("error %v should be Invalid", err)
	}
}

func TestMatch(t *testing.T) {
	err := errors.E(errors.NotSupported, "kernel avx2", goerrors.New("missing AVX2"))
	for _, c := range []struct {
		err   error
		match bool
	}{
		{errors.E(errors.NotSupported), true},
		{errors.E(errors.NotSupported, "kernel avx2"), true},
		{errors.E(errors.Invalid), false},
		{errors.E("kernel avx"), false},
		{errors.E(errors.NotSupported, "kernel avx2", goerrors.New("missing AVX2")), true},
		{errors.E(errors.NotSupported, "kernel avx2", goerrors.New("missing AVX")), false},
	} {
		if got, want := errors.Match(c.err, err), c.match; got != want {
			t.Errorf("Match(%v, %v): got %v, want %v", c.err, err, got, want)
		}
	}
}
