// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/simdbench/bench"
	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestDefaultConfig(t *testing.T) {
	c := bench.DefaultConfig()
	expect.EQ(t, c.Runs, 10)
	expect.EQ(t, c.Length, 800000000)
	expect.EQ(t, c.Kernels, []string{"sse2", "avx", "avx2"})
	expect.EQ(t, c.Format, "text")
	expect.True(t, c.Verify)
	// The reference length divides every lane width.
	ks, err := kernel.Parse(c.Kernels)
	assert.NoError(t, err)
	expect.NoError(t, kernel.CheckLength(c.Length, ks...))
}

func TestReadConfig(t *testing.T) {
	c := bench.DefaultConfig()
	assert.NoError(t, bench.ReadConfig(strings.NewReader(`
runs: 3
kernels: [scalar]
format: tsv
`), &c))
	expect.EQ(t, c.Runs, 3)
	expect.EQ(t, c.Kernels, []string{"scalar"})
	expect.EQ(t, c.Format, "tsv")
	// Absent keys keep their values.
	expect.EQ(t, c.Length, bench.DefaultLength)
	expect.True(t, c.Verify)

	err := bench.ReadConfig(strings.NewReader("rnus: 3\n"), &c)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("length: 4096\nseed: 99\nverify: false\n"), 0644))
	c := bench.DefaultConfig()
	assert.NoError(t, bench.LoadConfig(path, &c))
	expect.EQ(t, c.Length, 4096)
	expect.EQ(t, c.Seed, uint64(99))
	expect.False(t, c.Verify)

	err := bench.LoadConfig(filepath.Join(dir, "missing.yaml"), &c)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestConfigValidate(t *testing.T) {
	c := bench.DefaultConfig()
	c.Kernels = []string{"scalar"}
	c.Length = 12
	ks, err := c.Validate()
	assert.NoError(t, err)
	expect.EQ(t, kernel.Names(ks), []string{"scalar"})

	for _, tt := range []struct {
		mutate func(*bench.Config)
		kind   errors.Kind
	}{
		{func(c *bench.Config) { c.Runs = 0 }, errors.Precondition},
		{func(c *bench.Config) { c.Length = -4 }, errors.Precondition},
		{func(c *bench.Config) { c.Format = "json" }, errors.Invalid},
		{func(c *bench.Config) { c.Kernels = []string{"neon"} }, errors.Invalid},
		{func(c *bench.Config) { c.Kernels = nil }, errors.Invalid},
	} {
		c := bench.DefaultConfig()
		c.Kernels = []string{"scalar"}
		c.Length = 12
		tt.mutate(&c)
		_, err := c.Validate()
		expect.True(t, errors.Is(tt.kind, err), "%+v: %v", c, err)
	}

	if kernel.SSE2.Supported() {
		c := bench.DefaultConfig()
		c.Kernels = []string{"sse2"}
		c.Length = 10
		_, err := c.Validate()
		expect.True(t, errors.Is(errors.Precondition, err))
	}
}
