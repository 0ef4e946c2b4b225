// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package errors

import "fmt"

// CleanUp is defer-able syntactic sugar that calls f and reports an error, if any,
// to *err. Pass the caller's named return error. Example usage:
//
//   func writeReport(w *tsv.RowWriter) (err error) {
//     defer errors.CleanUp(w.Flush, &err)
//     ...
//   }
//
// If the caller returns with its own error, any error from cleanUp will be chained.
func CleanUp(cleanUp func() error, dst *error) {
	err2 := cleanUp()
	if err2 == nil {
		return
	}
	if *dst == nil {
		*dst = err2
		return
	}
	// err2 is not chained as *dst's cause: *dst may already have a meaningful
	// cause, and err2 may be unrelated to it.
	*dst = E(*dst, fmt.Sprintf("second error in cleanup: %v", err2))
}
