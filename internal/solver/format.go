// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/computor/pkg/types"
)

// Solution messages.
const (
	msgDegreeTooHigh = "The polynomial degree is strictly greater than 2, I can't solve."
	msgInfinite      = "Infinite solutions, since 0 = 0."
	msgInconsistent  = "No solution, the equation is inconsistent."
	msgNoReal        = "Discriminant is strictly negative, no real solution."
)

// ReducedForm renders c as "<term> ± <term> ... = 0" in ascending power
// order, omitting zero coefficients. An equation with no non-zero term
// renders as "0 = 0".
func ReducedForm(c types.Coefficients) string {
	var b strings.Builder
	for _, power := range c.Powers() {
		v := c[power]
		if v == 0 {
			continue
		}

		switch {
		case v < 0:
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString("- ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s * X^%d", FormatCoefficient(math.Abs(v)), power)
	}

	if b.Len() == 0 {
		return "0 = 0"
	}
	b.WriteString(" = 0")
	return b.String()
}

// FormatCoefficient prints an integral value without a decimal point and any
// other value in its shortest decimal form.
func FormatCoefficient(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatNumber prints an integral value without a decimal point. Other values
// are printed with precision fractional digits, then trailing zeros and a
// bare trailing point are removed. Negative zero prints as "0".
func FormatNumber(x float64, precision int) string {
	if precision < 0 {
		precision = types.DefaultPrecision
	}

	var s string
	if x == math.Trunc(x) {
		s = strconv.FormatFloat(x, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(x, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}

	if s == "-0" {
		return "0"
	}
	return s
}

// Describe renders the solution text, possibly on several lines.
func Describe(s types.Solution, precision int) string {
	num := func(x float64) string { return FormatNumber(x, precision) }

	switch s.Kind {
	case types.SolutionDegreeTooHigh:
		return msgDegreeTooHigh
	case types.SolutionInfinite:
		return msgInfinite
	case types.SolutionInconsistent:
		return msgInconsistent
	case types.SolutionNoReal:
		return msgNoReal
	case types.SolutionOneReal:
		if s.Degree == 2 {
			return "Discriminant is zero, the solution is:\n" + num(s.Roots[0])
		}
		return "The solution is:\n" + num(s.Roots[0])
	case types.SolutionTwoReal:
		return fmt.Sprintf("Discriminant is strictly positive, the two solutions are:\n%s\n%s",
			num(s.Roots[0]), num(s.Roots[1]))
	case types.SolutionTwoComplex:
		re, im := num(s.Real), num(s.Imaginary)
		return fmt.Sprintf("Discriminant is strictly negative, the two complex solutions are:\n%s + %si\n%s - %si",
			re, im, re, im)
	default:
		return fmt.Sprintf("unknown solution kind %q", s.Kind)
	}
}
