// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tsv

import (
	"bufio"
	"io"
	"strconv"
)

// Writer provides an efficient and concise way to append a field at a time to
// a TSV.  However, note that it does NOT have a Write() method; the interface
// is deliberately restricted.
type Writer struct {
	w    *bufio.Writer
	line []byte
}

// NewWriter creates a new tsv.Writer from an io.Writer.
func NewWriter(w io.Writer) (tw *Writer) {
	return &Writer{
		w:    bufio.NewWriter(w),
		line: make([]byte, 0, 256),
	}
}

// WriteString appends the given string and a tab to the current line.  (It is
// safe to use this to write multiple fields at a time.)
func (w *Writer) WriteString(s string) {
	w.line = append(w.line, s...)
	w.line = append(w.line, '\t')
}

// WriteBool appends "true" or "false" and a tab to the current line.
func (w *Writer) WriteBool(b bool) {
	w.line = strconv.AppendBool(w.line, b)
	w.line = append(w.line, '\t')
}

// WriteInt64 converts the given int64 to a string, and appends that and a
// tab to the current line.
func (w *Writer) WriteInt64(i int64) {
	w.line = strconv.AppendInt(w.line, i, 10)
	w.line = append(w.line, '\t')
}

// WriteUint64 converts the given uint64 to a string, and appends that and a
// tab to the current line.
func (w *Writer) WriteUint64(ui uint64) {
	w.line = strconv.AppendUint(w.line, ui, 10)
	w.line = append(w.line, '\t')
}

// WriteFloat64 converts the given float64 to a string with the given
// strconv.AppendFloat parameters, and appends that and a tab to the current
// line.
func (w *Writer) WriteFloat64(f float64, fmt byte, prec int) {
	w.line = strconv.AppendFloat(w.line, f, fmt, prec, 64)
	w.line = append(w.line, '\t')
}

// EndLine finishes the current line.  It must be nonempty.
func (w *Writer) EndLine() (err error) {
	w.line[len(w.line)-1] = '\n'
	_, err = w.w.Write(w.line)
	w.line = w.line[:0]
	return
}

// Flush flushes all finished lines.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
