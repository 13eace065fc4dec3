// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"time"
)

// Term is a single signed coefficient/power pair matched in an expression.
// Terms are transient: the parser folds them into Coefficients.
type Term struct {
	// Sign is '+' or '-'.
	Sign byte `json:"sign" yaml:"sign"`

	// Magnitude is the unsigned coefficient (1 when the text omits it).
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`

	// Power is the exponent of X.
	Power int `json:"power" yaml:"power"`
}

// Value returns the signed coefficient of the term.
func (t Term) Value() float64 {
	if t.Sign == '-' {
		return -t.Magnitude
	}
	return t.Magnitude
}

// Coefficients maps a power of X to its coefficient. A power absent from the
// map has coefficient 0.
type Coefficients map[int]float64

// Get returns the coefficient for power, or 0 if it is absent.
func (c Coefficients) Get(power int) float64 {
	return c[power]
}

// Powers returns the powers present in the map in ascending order.
func (c Coefficients) Powers() []int {
	powers := make([]int, 0, len(c))
	for p := range c {
		powers = append(powers, p)
	}
	sort.Ints(powers)
	return powers
}

// SolutionKind classifies the outcome of solving an equation.
type SolutionKind string

const (
	SolutionNoReal        SolutionKind = "no-real-solution"
	SolutionOneReal       SolutionKind = "one-real"
	SolutionTwoReal       SolutionKind = "two-real"
	SolutionTwoComplex    SolutionKind = "two-complex"
	SolutionInfinite      SolutionKind = "infinite"
	SolutionInconsistent  SolutionKind = "inconsistent"
	SolutionDegreeTooHigh SolutionKind = "degree-too-high"
)

// Solution is the solver's answer for a reduced equation.
type Solution struct {
	Kind SolutionKind `json:"kind" yaml:"kind"`

	// Degree is the polynomial degree the solver dispatched on.
	Degree int `json:"degree" yaml:"degree"`

	// Discriminant is set for quadratic equations only.
	Discriminant *float64 `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`

	// Roots holds the real roots: one for one-real, two for two-real, with
	// the root from +√D first.
	Roots []float64 `json:"roots,omitempty" yaml:"roots,omitempty"`

	// Real and Imaginary describe a complex conjugate pair Real ± Imaginary·i.
	// Imaginary is non-negative.
	Real      float64 `json:"real,omitempty" yaml:"real,omitempty"`
	Imaginary float64 `json:"imaginary,omitempty" yaml:"imaginary,omitempty"`
}

// Report is the full rendered result of solving one equation.
type Report struct {
	// ID identifies the report in the history store. Empty when unrecorded.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is an optional label, set by batch files.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Equation is the input text as supplied.
	Equation string `json:"equation" yaml:"equation"`

	ReducedForm string   `json:"reduced_form" yaml:"reduced_form"`
	Degree      int      `json:"degree" yaml:"degree"`
	Solution    Solution `json:"solution" yaml:"solution"`

	// Description is the human-readable solution text, possibly multi-line.
	Description string `json:"description" yaml:"description"`

	SolvedAt time.Time `json:"solved_at" yaml:"solved_at"`
}
