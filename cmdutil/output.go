// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"io"
	"os"

	"v.io/x/lib/textutil"
)

// WriteWrappedMessage writes m to w.  When w is the process's standard
// output and that is a terminal, m is wrapped to the terminal width;
// otherwise it is written unchanged so that piped output stays greppable.
func WriteWrappedMessage(w io.Writer, m string) error {
	if w != io.Writer(os.Stdout) {
		_, err := io.WriteString(w, m)
		return err
	}
	_, cols, err := textutil.TerminalSize()
	if err != nil || cols <= 0 {
		_, err := io.WriteString(w, m)
		return err
	}
	wrapped := textutil.NewUTF8WrapWriter(w, cols)
	if _, err := io.WriteString(wrapped, m); err != nil {
		return err
	}
	return wrapped.Flush()
}
