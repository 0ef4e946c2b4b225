// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	const (
		flushMsg  = "flush [seuozr]"
		returnMsg = "return [mntbnb]"
	)
	flush := func(err error) func() error {
		return func() error { return err }
	}

	// No return error, no flush error.
	gotErr := func() (err error) {
		defer CleanUp(flush(nil), &err)
		return nil
	}()
	assert.NoError(t, gotErr)

	// No return error, flush error.
	gotErr = func() (err error) {
		defer CleanUp(flush(errors.New(flushMsg)), &err)
		return nil
	}()
	assert.Equal(t, gotErr.Error(), flushMsg)

	// Return error, no flush error.
	gotErr = func() (err error) {
		defer CleanUp(flush(nil), &err)
		return errors.New(returnMsg)
	}()
	assert.Equal(t, gotErr.Error(), returnMsg)

	// Return error, flush error.
	gotErr = func() (err error) {
		defer CleanUp(flush(errors.New(flushMsg)), &err)
		return errors.New(returnMsg)
	}()
	assert.Contains(t, gotErr.Error(), returnMsg)
	assert.Contains(t, gotErr.Error(), flushMsg)
}
