package types

// OutputFormat selects how a Report is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// SolverConfig holds settings for the solver and number formatting.
type SolverConfig struct {
	// Precision is the number of fractional digits printed for non-integral
	// roots before trailing zeros are stripped (default 6).
	Precision int `json:"precision" yaml:"precision" mapstructure:"precision"`

	// Complex controls whether a negative discriminant yields the complex
	// conjugate pair (true) or a "no real solution" message (false).
	Complex bool `json:"complex" yaml:"complex" mapstructure:"complex"`
}

// OutputConfig holds settings for report rendering.
type OutputConfig struct {
	// Format selects text, json, or yaml output.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Color enables styled text output. Ignored for json and yaml.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`

	// Verbose writes the matched term trace to stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// HistoryConfig holds settings for the solved-equation history store.
type HistoryConfig struct {
	// Enabled records every solved report.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding history.db and exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of records listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// ComputorConfig groups all configuration sections.
type ComputorConfig struct {
	Solver  SolverConfig  `json:"solver" yaml:"solver" mapstructure:"solver"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}

// DefaultPrecision is the number of fractional digits used when none is configured.
const DefaultPrecision = 6

// DefaultConfig returns the configuration used when no file, env, or flag overrides it.
func DefaultConfig() ComputorConfig {
	return ComputorConfig{
		Solver: SolverConfig{
			Precision: DefaultPrecision,
			Complex:   true,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
		History: HistoryConfig{
			MaxResults: 20,
		},
	}
}
