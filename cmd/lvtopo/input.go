// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	errEmptyInput = errors.New("input file is empty")
	errEmptyLabel = errors.New("empty vertex label")
)

// complexFile is the YAML layout of a simplex list. Labels are read as
// strings; when every one of them is an integer the complex is built over
// int so that 10 sorts after 9.
type complexFile struct {
	Simplices [][]string `yaml:"simplices"`
}

// intLabels converts every label with strconv.Atoi; ok is false as soon as
// one label is not an integer.
func (f complexFile) intLabels() ([][]int, bool) {
	out := make([][]int, len(f.Simplices))
	for i, s := range f.Simplices {
		out[i] = make([]int, len(s))
		for j, v := range s {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, false
			}
			out[i][j] = n
		}
	}

	return out, true
}

func (f complexFile) validate() error {
	for i, s := range f.Simplices {
		if err := checkLabels(s); err != nil {
			return fmt.Errorf("simplex %d: %w", i, err)
		}
	}

	return nil
}

// pointsFile is the YAML layout of a point cloud.
type pointsFile struct {
	Epsilon *float64    `yaml:"epsilon"`
	Points  [][]float64 `yaml:"points"`
	Labels  []string    `yaml:"labels"`
}

func (f pointsFile) validate() error {
	if err := checkLabels(f.Labels); err != nil {
		return fmt.Errorf("labels: %w", err)
	}

	return nil
}

// checkLabels rejects "", which cannot name a skeleton vertex.
func checkLabels(labels []string) error {
	for j, v := range labels {
		if v == "" {
			return fmt.Errorf("position %d: %w", j, errEmptyLabel)
		}
	}

	return nil
}

// decodeStrict reads path ("-" for stdin) into out, rejecting unknown keys,
// then runs out's validate method when it has one.
func decodeStrict(path string, stdin io.Reader, out any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", path, errEmptyInput)
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if v, ok := out.(interface{ validate() error }); ok {
		if err = v.validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}
