// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/simdbench/tsv"
)

// Reporter receives the results of a session.
type Reporter interface {
	// Run is called after each run with one measurement per kernel, in
	// session order.
	Run(run int, ms []Measurement) error
	// Summary is called once after the last run.
	Summary(s Stats) error
}

// NewReporter returns the reporter for the named format, FormatText or
// FormatTSV.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(w), nil
	case FormatTSV:
		return NewTSVReporter(w), nil
	}
	return nil, errors.E(errors.Invalid, fmt.Sprintf("unknown output format %q", format))
}

type nopReporter struct{}

func (nopReporter) Run(int, []Measurement) error { return nil }
func (nopReporter) Summary(Stats) error          { return nil }

// TextReporter writes a human-readable report:
//
//	Run 1:
//	SSE2 Int Sum Result: 1234 Time: 0.201 seconds
//	...
//	--------Average of 10 Runs--------
//	SSE2 vs AVX: 1.5% runtime difference
type TextReporter struct {
	w *bufio.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: bufio.NewWriter(w)}
}

// Run implements Reporter.
func (r *TextReporter) Run(run int, ms []Measurement) error {
	fmt.Fprintf(r.w, "Run %d:\n", run)
	for _, m := range ms {
		fmt.Fprintf(r.w, "%s Int Sum Result: %d Time: %.6g seconds\n", m.Kernel.Title, m.Sum, m.Elapsed.Seconds())
	}
	r.w.WriteByte('\n')
	return r.w.Flush()
}

// Summary implements Reporter.
func (r *TextReporter) Summary(s Stats) error {
	fmt.Fprintf(r.w, "%sAverage of %d Runs%s\n", strings.Repeat("-", 27), s.Runs, strings.Repeat("-", 31))
	for _, p := range s.Pairs {
		fmt.Fprintf(r.w, "%s vs %s: %.6g%% runtime difference\n", title(p.Base), title(p.Other), s.Average(p))
	}
	return r.w.Flush()
}

// title returns the display title of the named kernel.
func title(name string) string {
	if k, ok := kernel.Lookup(name); ok {
		return k.Title
	}
	return name
}

// TSVReporter writes two tab-separated tables: one row per kernel
// invocation, then after a blank line one row per kernel pair.
type TSVReporter struct {
	w       io.Writer
	runs    *tsv.RowWriter
	started bool
}

// NewTSVReporter returns a TSVReporter writing to w.
func NewTSVReporter(w io.Writer) *TSVReporter {
	return &TSVReporter{w: w, runs: tsv.NewRowWriter(w)}
}

type runRow struct {
	Run       int     `tsv:"run"`
	Kernel    string  `tsv:"kernel"`
	Extension string  `tsv:"extension"`
	Lanes     int     `tsv:"lanes"`
	Sum       int32   `tsv:"sum"`
	Seconds   float64 `tsv:"seconds,fmt=.9f"`
}

type pairRow struct {
	Base    string  `tsv:"base"`
	Other   string  `tsv:"other"`
	Runs    int     `tsv:"runs"`
	DiffPct float64 `tsv:"diff_pct,fmt=.4f"`
}

// Run implements Reporter.
func (r *TSVReporter) Run(run int, ms []Measurement) error {
	r.started = true
	for _, m := range ms {
		row := runRow{
			Run:       run,
			Kernel:    m.Kernel.Name,
			Extension: m.Kernel.Extension.String(),
			Lanes:     m.Kernel.LaneWidth,
			Sum:       m.Sum,
			Seconds:   m.Elapsed.Seconds(),
		}
		if err := r.runs.Write(&row); err != nil {
			return err
		}
	}
	return r.runs.Flush()
}

// Summary implements Reporter.
func (r *TSVReporter) Summary(s Stats) error {
	if len(s.Pairs) == 0 {
		return nil
	}
	if r.started {
		if _, err := io.WriteString(r.w, "\n"); err != nil {
			return err
		}
	}
	pairs := tsv.NewRowWriter(r.w)
	for _, p := range s.Pairs {
		row := pairRow{Base: p.Base, Other: p.Other, Runs: s.Runs, DiffPct: s.Average(p)}
		if err := pairs.Write(&row); err != nil {
			return err
		}
	}
	return pairs.Flush()
}
