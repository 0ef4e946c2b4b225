// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bench drives the int32 sum kernels against a shared input buffer
// and compares their running times.
//
// A Session runs a fixed number of runs.  Each run refills the buffer from a
// Generator, invokes every kernel once on the same contents, checks that the
// sums agree, and folds the pairwise percentage differences of the elapsed
// times into Stats.  A Reporter receives each run and the final averages.
package bench
