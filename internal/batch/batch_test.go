// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/computor/internal/parser"
	"github.com/pdiddy/computor/pkg/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Entry
		errMsg  string
	}{
		{
			name: "plain strings and mappings",
			content: `equations:
  - "X^1 - X^0 = 0"
  - name: inconsistent
    equation: "5 * X^0 = 4 * X^0"
`,
			want: []Entry{
				{Equation: "X^1 - X^0 = 0"},
				{Name: "inconsistent", Equation: "5 * X^0 = 4 * X^0"},
			},
		},
		{
			name:    "empty list",
			content: "equations: []\n",
			want:    nil,
		},
		{
			name:    "invalid yaml",
			content: "equations: [unterminated\n",
			errMsg:  "parsing batch file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ReadFile(writeFile(t, tt.content))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, f.Equations)
				return
			}
			assert.Equal(t, tt.want, f.Equations)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading batch file")
}

func TestRun(t *testing.T) {
	f := &File{Equations: []Entry{
		{Name: "linear", Equation: "X^1 - X^0 = 0"},
		{Equation: "no equals sign"},
		{Equation: "X^3 = 0"},
	}}

	results, summary := Run(f, types.DefaultConfig().Solver)
	require.Len(t, results, 3)
	assert.Equal(t, Summary{Solved: 2, Failed: 1}, summary)
	assert.True(t, summary.HasFailures())

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "linear", results[0].Report.Name)
	assert.Equal(t, "- 1 * X^0 + 1 * X^1 = 0", results[0].Report.ReducedForm)

	assert.ErrorIs(t, results[1].Err, parser.ErrMalformedEquation)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, types.SolutionDegreeTooHigh, results[2].Report.Solution.Kind)
}

func TestRunEmpty(t *testing.T) {
	results, summary := Run(&File{}, types.DefaultConfig().Solver)
	assert.Empty(t, results)
	assert.False(t, summary.HasFailures())
}

func TestExamplesFile(t *testing.T) {
	f, err := ReadFile(filepath.Join("..", "..", "examples", "equations.yaml"))
	require.NoError(t, err)

	results, summary := Run(f, types.DefaultConfig().Solver)
	assert.False(t, summary.HasFailures())
	require.Len(t, results, 8)
	assert.Equal(t, "two real solutions", results[0].Report.Name)
	assert.Equal(t, types.SolutionTwoReal, results[0].Report.Solution.Kind)
	assert.Equal(t, types.SolutionTwoComplex, results[6].Report.Solution.Kind)
	assert.Empty(t, results[7].Report.Name)
}
