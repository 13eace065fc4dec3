// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report runs the parse, reduce, and solve steps for one equation
// and writes the result as text, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/computor/internal/parser"
	"github.com/pdiddy/computor/internal/solver"
	"github.com/pdiddy/computor/pkg/types"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	solutionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// now is replaced in tests.
var now = time.Now

// Build parses and solves equation. It fails only when the equation is
// malformed or a coefficient does not fit in a float64.
func Build(equation string, cfg types.SolverConfig) (types.Report, error) {
	coefs, err := parser.Parse(equation)
	if err != nil {
		return types.Report{}, err
	}

	var sol types.Solution
	if cfg.Complex {
		sol = solver.Solve(coefs)
	} else {
		sol = solver.SolveReal(coefs)
	}

	return types.Report{
		Equation:    equation,
		ReducedForm: solver.ReducedForm(coefs),
		Degree:      solver.Degree(coefs),
		Solution:    sol,
		Description: solver.Describe(sol, cfg.Precision),
		SolvedAt:    now().UTC(),
	}, nil
}

// Write renders r to w in the configured format.
func Write(w io.Writer, r types.Report, cfg types.OutputConfig) error {
	switch cfg.Format {
	case types.OutputText, "":
		return writeText(w, r, cfg.Color)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case types.OutputYAML:
		data, err := yaml.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", cfg.Format)
	}
}

func writeText(w io.Writer, r types.Report, color bool) error {
	label := func(s string) string { return s }
	desc := r.Description
	if color {
		label = func(s string) string { return labelStyle.Render(s) }
		switch r.Solution.Kind {
		case types.SolutionDegreeTooHigh, types.SolutionInconsistent, types.SolutionNoReal:
			desc = warningStyle.Render(desc)
		default:
			desc = solutionStyle.Render(desc)
		}
	}

	_, err := fmt.Fprintf(w, "%s %s\n%s %d\n%s\n",
		label("Reduced form:"), r.ReducedForm,
		label("Polynomial degree:"), r.Degree,
		desc)
	return err
}

// Trace writes the terms matched on each side of equation, one per line.
func Trace(w io.Writer, equation string) {
	left, right, found := strings.Cut(equation, "=")
	if !found {
		return
	}
	for _, side := range []struct {
		name string
		expr string
	}{{"left", left}, {"right", right}} {
		terms, err := parser.Terms(side.expr)
		if err != nil {
			fmt.Fprintf(w, "%-5s  %v\n", side.name, err)
			continue
		}
		for _, t := range terms {
			fmt.Fprintf(w, "%-5s  %c %s * X^%d\n", side.name, t.Sign, solver.FormatCoefficient(t.Magnitude), t.Power)
		}
	}
}
