// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tsv_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/grailbio/simdbench/tsv"
	"github.com/grailbio/testutil/expect"
)

func TestRowWriter(t *testing.T) {
	var buf bytes.Buffer
	rw := tsv.NewRowWriter(&buf)
	var row struct {
		Bool    bool   `tsv:"verified"`
		String  string `tsv:"kernel"`
		Int32   int32
		Int64   int64
		Int     int
		Uint32  uint32
		Float32 float32
		Float64 float64 `tsv:"elapsed_s,fmt=.3f"`
		Skipped string  `tsv:"-"`
		skipped string
	}
	row.String = "sse2"
	row.Int32 = -3
	row.Float32 = 0.5
	row.Float64 = 1.23456
	row.Skipped = "x"
	if err := rw.Write(&row); err != nil {
		t.Error(err)
	}
	row.Bool = true
	row.String = "avx2"
	row.Int = 2
	row.Uint32 = 7
	row.Float64 = 0
	if err := rw.Write(&row); err != nil {
		t.Error(err)
	}
	if err := rw.Flush(); err != nil {
		t.Error(err)
	}
	got := buf.String()
	want := `verified	kernel	Int32	Int64	Int	Uint32	Float32	elapsed_s
false	sse2	-3	0	0	0	0.5	1.235
true	avx2	-3	0	2	7	0.5	0.000
`
	if got != want {
		t.Errorf("got: %q, want %q", got, want)
	}
}

func TestRowWriterErrors(t *testing.T) {
	var buf bytes.Buffer
	rw := tsv.NewRowWriter(&buf)

	type notPointer struct{ A int }
	expect.HasSubstr(t, rw.Write(notPointer{}), "pointer to struct")

	type badFormat struct {
		A float64 `tsv:"a,fmt=3x"`
	}
	expect.HasSubstr(t, rw.Write(&badFormat{}), "verb must be e, f or g")

	type badOption struct {
		A float64 `tsv:"a,width=3"`
	}
	expect.HasSubstr(t, rw.Write(&badOption{}), "unknown tsv option")

	type taggedUnexported struct {
		a int `tsv:"a"`
	}
	expect.HasSubstr(t, rw.Write(&taggedUnexported{}), "unexported field")

	type unsupported struct {
		A []int
	}
	expect.HasSubstr(t, rw.Write(&unsupported{}), "unsupported type slice")
}

func ExampleRowWriter() {
	type rowTyp struct {
		Kernel  string
		Elapsed float64 `tsv:"elapsed_s,fmt=.2f"`
		Diff    float64 `tsv:"diff_pct,fmt=.3f"`
	}
	rows := []rowTyp{
		{Kernel: "sse2", Elapsed: 0.4123, Diff: 0},
		{Kernel: "avx2", Elapsed: 0.3987, Diff: 3.2987},
	}
	var buf bytes.Buffer
	w := tsv.NewRowWriter(&buf)
	for i := range rows {
		if err := w.Write(&rows[i]); err != nil {
			panic(err)
		}
	}
	if err := w.Flush(); err != nil {
		panic(err)
	}
	fmt.Print(buf.String())

	// Output:
	// Kernel	elapsed_s	diff_pct
	// sse2	0.41	0.000
	// avx2	0.40	3.299
}
