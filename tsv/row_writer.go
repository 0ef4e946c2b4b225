// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tsv

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

type columnFormat struct {
	columnName string       // column name in the header; the field name unless `tsv:"colname"` is set.
	kind       reflect.Kind // kind of the field.
	index      int          // field index within the Go struct.
	floatFmt   byte         // strconv.AppendFloat format for float columns.
	floatPrec  int          // strconv.AppendFloat precision for float columns.
}

type rowFormat []columnFormat

// parseRowFormat reads the columns of a struct type.  Fields are tagged
// `tsv:"name"` or `tsv:"name,fmt=.3f"`; `tsv:"-"` skips a field.
func parseRowFormat(typ reflect.Type) (rowFormat, error) {
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("row must be a pointer to struct, but found %v", typ)
	}
	typ = typ.Elem()
	var format rowFormat
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" { // Unexported field?
			if tag := f.Tag.Get("tsv"); tag != "" {
				return nil, fmt.Errorf("unexported field '%s' should not have a tsv tag '%s'", f.Name, tag)
			}
			continue
		}
		col := columnFormat{
			columnName: f.Name,
			kind:       f.Type.Kind(),
			index:      i,
			floatFmt:   'g',
			floatPrec:  -1,
		}
		if tag := f.Tag.Get("tsv"); tag != "" {
			if tag == "-" {
				continue
			}
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				col.columnName = parts[0]
			}
			for _, opt := range parts[1:] {
				if !strings.HasPrefix(opt, "fmt=") {
					return nil, fmt.Errorf("field '%s': unknown tsv option '%s'", f.Name, opt)
				}
				var err error
				if col.floatFmt, col.floatPrec, err = parseFloatFormat(strings.TrimPrefix(opt, "fmt=")); err != nil {
					return nil, fmt.Errorf("field '%s': %v", f.Name, err)
				}
			}
		}
		format = append(format, col)
	}
	return format, nil
}

// parseFloatFormat parses a printf-like float verb such as ".3f" or "e".
func parseFloatFormat(s string) (byte, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("empty float format")
	}
	verb := s[len(s)-1]
	switch verb {
	case 'e', 'f', 'g':
	default:
		return 0, 0, fmt.Errorf("float format '%s': verb must be e, f or g", s)
	}
	prec := -1
	if p := s[:len(s)-1]; p != "" {
		if p[0] != '.' {
			return 0, 0, fmt.Errorf("float format '%s': precision must start with '.'", s)
		}
		var err error
		if prec, err = strconv.Atoi(p[1:]); err != nil || prec < 0 {
			return 0, 0, fmt.Errorf("float format '%s': bad precision", s)
		}
	}
	return verb, prec, nil
}

// RowWriter writes structs to TSV files using field names or "tsv" tags
// as TSV column headers.
type RowWriter struct {
	w               Writer
	headerDone      bool
	cachedRowType   reflect.Type
	cachedRowFormat rowFormat
}

// NewRowWriter constructs a writer.
//
// User must call Flush() after last Write().
func NewRowWriter(w io.Writer) *RowWriter {
	return &RowWriter{w: *NewWriter(w)}
}

// Write writes a TSV row containing the values of v's exported fields.
// v must be a pointer to a struct.
//
// On first Write, a TSV header row is written using v's type.
// Subsequent Write()s may pass v of different type, but no guarantees are made
// about consistent column ordering with different types.
func (w *RowWriter) Write(v interface{}) error {
	typ := reflect.TypeOf(v)
	if typ != w.cachedRowType {
		rowFormat, err := parseRowFormat(typ)
		if err != nil {
			return err
		}
		w.cachedRowType = typ
		w.cachedRowFormat = rowFormat
	}
	if !w.headerDone {
		if err := w.writeHeader(); err != nil {
			return err
		}
		w.headerDone = true
	}
	return w.writeRow(reflect.ValueOf(v).Elem())
}

// Flush flushes all previously-written rows.
func (w *RowWriter) Flush() error {
	return w.w.Flush()
}

func (w *RowWriter) writeHeader() error {
	for _, col := range w.cachedRowFormat {
		w.w.WriteString(col.columnName)
	}
	return w.w.EndLine()
}

func (w *RowWriter) writeRow(v reflect.Value) error {
	for _, col := range w.cachedRowFormat {
		f := v.Field(col.index)
		switch col.kind {
		case reflect.Bool:
			w.w.WriteBool(f.Bool())
		case reflect.String:
			w.w.WriteString(f.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			w.w.WriteInt64(f.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			w.w.WriteUint64(f.Uint())
		case reflect.Float32, reflect.Float64:
			w.w.WriteFloat64(f.Float(), col.floatFmt, col.floatPrec)
		default:
			return fmt.Errorf("unsupported type %v", col.kind)
		}
	}
	return w.w.EndLine()
}
