// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmdutil provides utility routines for implementing command line
// tools.
package cmdutil

import (
	"fmt"
	"os"
	"strings"
)

// Fatal mirrors log.Fatal with no prefix and no timestamp.  Functions
// registered with OnExit are run before the process exits.
func Fatal(args ...interface{}) {
	m := fmt.Sprint(args...)
	fmt.Fprint(os.Stderr, strings.TrimSuffix(m, "\n")+"\n")
	_ = runExit()
	os.Exit(1)
}
