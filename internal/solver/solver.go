// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package solver classifies a reduced polynomial by degree and computes its
// solution set. It also renders the reduced form and the solution text.
// Degrees above 2 are reported, never solved.
package solver

import (
	"math"

	"github.com/pdiddy/computor/pkg/types"
)

// MaxDegree is the highest degree the solver handles.
const MaxDegree = 2

// Degree returns the highest power with a non-zero coefficient, or 0 when
// there is none.
func Degree(c types.Coefficients) int {
	degree := 0
	for power, v := range c {
		if v != 0 && power > degree {
			degree = power
		}
	}
	return degree
}

// Solve computes the solution set of c = 0. A negative discriminant yields
// the complex conjugate pair.
func Solve(c types.Coefficients) types.Solution {
	degree := Degree(c)

	switch {
	case degree > MaxDegree:
		return types.Solution{Kind: types.SolutionDegreeTooHigh, Degree: degree}
	case degree == 2:
		return solveQuadratic(c.Get(2), c.Get(1), c.Get(0))
	case degree == 1:
		return solveLinear(c.Get(1), c.Get(0))
	default:
		return solveConstant(c.Get(0))
	}
}

// SolveReal is Solve restricted to real roots: a negative discriminant
// yields SolutionNoReal instead of the complex pair.
func SolveReal(c types.Coefficients) types.Solution {
	s := Solve(c)
	if s.Kind == types.SolutionTwoComplex {
		s.Kind = types.SolutionNoReal
		s.Real, s.Imaginary = 0, 0
	}
	return s
}

func solveConstant(c float64) types.Solution {
	if c == 0 {
		return types.Solution{Kind: types.SolutionInfinite}
	}
	return types.Solution{Kind: types.SolutionInconsistent}
}

func solveLinear(a, b float64) types.Solution {
	if a == 0 {
		s := solveConstant(b)
		s.Degree = 1
		return s
	}
	return types.Solution{
		Kind:   types.SolutionOneReal,
		Degree: 1,
		Roots:  []float64{-b / a},
	}
}

func solveQuadratic(a, b, c float64) types.Solution {
	// A cancelled leading term leaves a linear equation.
	if a == 0 {
		return solveLinear(b, c)
	}

	d := b*b - 4*a*c
	s := types.Solution{Degree: 2, Discriminant: &d}

	switch {
	case d > 0:
		sqrtD := math.Sqrt(d)
		s.Kind = types.SolutionTwoReal
		s.Roots = []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)}
	case d == 0:
		s.Kind = types.SolutionOneReal
		s.Roots = []float64{-b / (2 * a)}
	default:
		s.Kind = types.SolutionTwoComplex
		s.Real = -b / (2 * a)
		s.Imaginary = math.Abs(math.Sqrt(-d) / (2 * a))
	}
	return s
}
