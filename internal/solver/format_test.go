// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/computor/internal/parser"
	"github.com/pdiddy/computor/pkg/types"
)

func TestReducedForm(t *testing.T) {
	tests := []struct {
		name  string
		coefs types.Coefficients
		want  string
	}{
		{
			name:  "mixed signs and decimal",
			coefs: types.Coefficients{0: 4, 1: 4, 2: -9.3},
			want:  "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0",
		},
		{
			name:  "negative first term",
			coefs: types.Coefficients{0: -1, 1: 1},
			want:  "- 1 * X^0 + 1 * X^1 = 0",
		},
		{
			name:  "magnitude one is printed",
			coefs: types.Coefficients{0: 1},
			want:  "1 * X^0 = 0",
		},
		{
			name:  "zero coefficients are omitted",
			coefs: types.Coefficients{0: 0, 1: 3, 2: 0, 3: -2},
			want:  "3 * X^1 - 2 * X^3 = 0",
		},
		{
			name:  "all zero",
			coefs: types.Coefficients{0: 0, 1: 0},
			want:  "0 = 0",
		},
		{
			name:  "empty map",
			coefs: types.Coefficients{},
			want:  "0 = 0",
		},
		{
			name:  "ascending order regardless of insertion",
			coefs: types.Coefficients{5: 1.5, 0: -0.25, 2: 10},
			want:  "- 0.25 * X^0 + 10 * X^2 + 1.5 * X^5 = 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReducedForm(tt.coefs))
		})
	}
}

// TestReducedFormReparses feeds the rendered form back through the parser
// and expects the same non-zero coefficients.
func TestReducedFormReparses(t *testing.T) {
	inputs := []types.Coefficients{
		{0: 4, 1: 4, 2: -9.3},
		{0: -1, 1: 1},
		{0: 0.125, 3: -7, 4: 2.5},
		{1: -1},
	}

	for _, coefs := range inputs {
		reduced := ReducedForm(coefs)
		got, err := parser.Parse(reduced)
		require.NoError(t, err, reduced)

		for power, v := range coefs {
			assert.InDelta(t, v, got[power], 1e-12, "%s power %d", reduced, power)
		}
		assert.Equal(t, reduced, ReducedForm(got))
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		precision int
		want      string
	}{
		{name: "integer", x: 4, precision: 6, want: "4"},
		{name: "negative integer", x: -12, precision: 6, want: "-12"},
		{name: "negative zero", x: math.Copysign(0, -1), precision: 6, want: "0"},
		{name: "trailing zeros stripped", x: 0.5, precision: 6, want: "0.5"},
		{name: "rounded to six digits", x: 1.0 / 3, precision: 6, want: "0.333333"},
		{name: "negative fraction", x: -0.4751314, precision: 6, want: "-0.475131"},
		{name: "rounds up to integer", x: 1.9999999, precision: 6, want: "2"},
		{name: "tiny negative rounds to zero", x: -0.0000001, precision: 6, want: "0"},
		{name: "custom precision", x: math.Pi, precision: 2, want: "3.14"},
		{name: "zero precision", x: 2.7, precision: 0, want: "3"},
		{name: "negative precision uses default", x: 2.0 / 3, precision: -1, want: "0.666667"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.x, tt.precision))
		})
	}
}

func TestFormatCoefficient(t *testing.T) {
	assert.Equal(t, "4", FormatCoefficient(4.0))
	assert.Equal(t, "9.3", FormatCoefficient(9.3))
	assert.Equal(t, "0.125", FormatCoefficient(0.125))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		coefs types.Coefficients
		want  string
	}{
		{
			name:  "degree too high",
			coefs: types.Coefficients{3: 1},
			want:  "The polynomial degree is strictly greater than 2, I can't solve.",
		},
		{
			name:  "inconsistent",
			coefs: types.Coefficients{0: 1},
			want:  "No solution, the equation is inconsistent.",
		},
		{
			name:  "infinite",
			coefs: types.Coefficients{0: 0},
			want:  "Infinite solutions, since 0 = 0.",
		},
		{
			name:  "linear",
			coefs: types.Coefficients{0: -1, 1: 1},
			want:  "The solution is:\n1",
		},
		{
			name:  "linear fraction",
			coefs: types.Coefficients{0: 1, 1: 3},
			want:  "The solution is:\n-0.333333",
		},
		{
			name:  "two real",
			coefs: types.Coefficients{0: 4, 1: 4, 2: -9.3},
			want:  "Discriminant is strictly positive, the two solutions are:\n-0.475131\n0.905239",
		},
		{
			name:  "repeated",
			coefs: types.Coefficients{0: 1, 1: 2, 2: 1},
			want:  "Discriminant is zero, the solution is:\n-1",
		},
		{
			name:  "complex",
			coefs: types.Coefficients{0: 1, 1: 2, 2: 5},
			want:  "Discriminant is strictly negative, the two complex solutions are:\n-0.2 + 0.4i\n-0.2 - 0.4i",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(Solve(tt.coefs), types.DefaultPrecision))
		})
	}
}

func TestDescribeNoReal(t *testing.T) {
	got := Describe(SolveReal(types.Coefficients{0: 1, 1: 2, 2: 5}), types.DefaultPrecision)
	assert.Equal(t, "Discriminant is strictly negative, no real solution.", got)
}
