// Copyright 2024 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/simdbench/errors"
	"github.com/grailbio/simdbench/kernel"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultRuns is the number of runs in a session.
	DefaultRuns = 10
	// DefaultLength is the number of int32 elements in the input buffer,
	// about 3.2 GB.
	DefaultLength = 800000000
)

// Output formats understood by NewReporter.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
)

// Config holds the parameters of a benchmark session.  The YAML keys match
// the command line flags of "simdbench compare".
type Config struct {
	Runs       int      `yaml:"runs"`
	Length     int      `yaml:"length"`
	Kernels    []string `yaml:"kernels"`
	Seed       uint64   `yaml:"seed"`
	Format     string   `yaml:"format"`
	Verify     bool     `yaml:"verify"`
	CPUProfile string   `yaml:"cpu-profile"`
}

// DefaultConfig returns the configuration of the reference session: ten
// runs of SSE2, AVX and AVX2 over 800M elements, text output, verified sums.
func DefaultConfig() Config {
	return Config{
		Runs:    DefaultRuns,
		Length:  DefaultLength,
		Kernels: kernel.Names(kernel.Reference()),
		Format:  FormatText,
		Verify:  true,
	}
}

// LoadConfig reads a YAML file into c.  Keys absent from the file keep
// their current values in c.
func LoadConfig(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.E(errors.Invalid, "reading config", err)
	}
	if err := ReadConfig(bytes.NewReader(data), c); err != nil {
		return errors.E(fmt.Sprintf("config %s", path), err)
	}
	return nil
}

// ReadConfig decodes YAML from r into c.  Unknown keys are an error.
func ReadConfig(r io.Reader, c *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.E(errors.Invalid, "reading config", err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return errors.E(errors.Invalid, "decoding config", err)
	}
	return nil
}

// Validate checks c and resolves its kernel names.  It reports an
// errors.Precondition error when the run count or buffer length is
// unusable, errors.Invalid for unknown kernels or formats, and
// errors.NotSupported for kernels this host cannot run.
func (c Config) Validate() ([]kernel.Kernel, error) {
	if c.Runs <= 0 {
		return nil, errors.E(errors.Precondition, errors.Fatal, fmt.Sprintf("run count %d is not positive", c.Runs))
	}
	switch c.Format {
	case FormatText, FormatTSV:
	default:
		return nil, errors.E(errors.Invalid, fmt.Sprintf("unknown output format %q", c.Format))
	}
	ks, err := kernel.Select(c.Kernels)
	if err != nil {
		return nil, err
	}
	if err := kernel.CheckLength(c.Length, ks...); err != nil {
		return nil, err
	}
	return ks, nil
}
