// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch reads a YAML file of equations and solves each in order.
package batch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/computor/internal/report"
	"github.com/pdiddy/computor/pkg/types"
)

// File is the on-disk list of equations.
//
//	equations:
//	  - "X^1 - X^0 = 0"
//	  - name: inconsistent
//	    equation: "5 * X^0 = 4 * X^0"
type File struct {
	Equations []Entry `yaml:"equations"`
}

// Entry is one equation, written either as a plain string or as a mapping
// with name and equation keys.
type Entry struct {
	Name     string `yaml:"name,omitempty"`
	Equation string `yaml:"equation"`
}

// UnmarshalYAML accepts a scalar equation or a {name, equation} mapping.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Equation = value.Value
		return nil
	}
	type plain Entry
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// ReadFile loads a batch file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &f, nil
}

// Result pairs an entry with its report or the error that stopped it.
type Result struct {
	Entry  Entry
	Report types.Report
	Err    error
}

// Summary holds counts from a batch run.
type Summary struct {
	Solved int
	Failed int
}

// HasFailures reports whether any entry failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run solves every entry in order. A malformed entry is recorded in its
// Result and does not stop the run.
func Run(f *File, cfg types.SolverConfig) ([]Result, Summary) {
	results := make([]Result, 0, len(f.Equations))
	var summary Summary

	for _, e := range f.Equations {
		r, err := report.Build(e.Equation, cfg)
		if err != nil {
			summary.Failed++
		} else {
			r.Name = e.Name
			summary.Solved++
		}
		results = append(results, Result{Entry: e, Report: r, Err: err})
	}
	return results, summary
}
