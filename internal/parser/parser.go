// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parser turns equation text into a map of power to coefficient.
//
// An equation is two expressions joined by a single '='. Each expression is a
// run of terms shaped like [sign][coefficient][*]X^power. Text that does not
// form a term is skipped, so "5" without "X^0" contributes nothing.
package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/computor/pkg/types"
)

// ErrMalformedEquation is returned when the input does not contain exactly
// one '='.
var ErrMalformedEquation = errors.New("malformed equation")

// ErrCoefficientRange is returned when a coefficient, or a sum of
// coefficients for one power, does not fit in a float64.
var ErrCoefficientRange = errors.New("coefficient out of range")

// termRe matches one term. Groups: sign, coefficient, power.
var termRe = regexp.MustCompile(`([+-]?)(\d*\.?\d+)?\*?X\^(\d+)`)

// Parse reads an equation and returns its coefficients as left minus right.
// Like terms on either side are combined into a single entry per power.
func Parse(equation string) (types.Coefficients, error) {
	eq := stripSpace(equation)

	if n := strings.Count(eq, "="); n != 1 {
		return nil, fmt.Errorf("%w: expected exactly one '=', found %d", ErrMalformedEquation, n)
	}
	left, right, _ := strings.Cut(eq, "=")

	coefs, err := ParseSide(left)
	if err != nil {
		return nil, err
	}
	rhs, err := ParseSide(right)
	if err != nil {
		return nil, err
	}
	for power, v := range rhs {
		coefs[power] -= v
		if math.IsInf(coefs[power], 0) {
			return nil, fmt.Errorf("%w: X^%d overflows after moving terms to the left", ErrCoefficientRange, power)
		}
	}
	return coefs, nil
}

// ParseSide sums the terms of one expression by power. An expression with no
// recognizable terms yields an empty map.
func ParseSide(expr string) (types.Coefficients, error) {
	terms, err := Terms(expr)
	if err != nil {
		return nil, err
	}
	coefs := make(types.Coefficients)
	for _, t := range terms {
		coefs[t.Power] += t.Value()
		if math.IsInf(coefs[t.Power], 0) {
			return nil, fmt.Errorf("%w: sum of X^%d terms overflows", ErrCoefficientRange, t.Power)
		}
	}
	return coefs, nil
}

// Terms returns the terms matched in expr, left to right. Whitespace is
// removed first. Terms whose power does not fit in an int are dropped; a
// coefficient too large for a float64 is an error.
func Terms(expr string) ([]types.Term, error) {
	expr = stripSpace(expr)

	var terms []types.Term
	for _, m := range termRe.FindAllStringSubmatch(expr, -1) {
		power, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}

		magnitude := 1.0
		if m[2] != "" {
			magnitude, err = strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrCoefficientRange, abbreviate(m[2]))
			}
		}

		sign := byte('+')
		if m[1] == "-" {
			sign = '-'
		}

		terms = append(terms, types.Term{Sign: sign, Magnitude: magnitude, Power: power})
	}
	return terms, nil
}

// abbreviate shortens long digit runs for error messages.
func abbreviate(digits string) string {
	const limit = 16
	if len(digits) <= limit {
		return digits
	}
	return fmt.Sprintf("%s... (%d digits)", digits[:limit], len(digits))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
