// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the computor CLI.
// The root command solves one equation; subcommands handle batch files and
// the solved-equation history.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/computor/internal/history"
	"github.com/pdiddy/computor/internal/report"
	"github.com/pdiddy/computor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var errNoEquation = errors.New("no equation given")

// rootCmd solves the equation given as its argument.
var rootCmd = &cobra.Command{
	Use:   `computor "<equation>"`,
	Short: "Solve polynomial equations of degree 2 or lower",
	Long: `computor reduces a polynomial equation such as
"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0" to the form "... = 0",
prints its degree, and solves it when the degree is 2 or lower.

Terms are written [sign][coefficient][*]X^power. Text that does not form a
term is ignored. Quote the equation. An equation may start with '-'.`,
	Example: `  computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
  computor --format json "X^1 - X^0 = 0"
  computor "-X^2 + 4 * X^0 = 0"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runSolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./computor.yaml or ~/.config/computor/computor.yaml)")
	flags.String("format", "text", "output format: text, json, or yaml")
	flags.Bool("color", false, "style text output")
	flags.Int("precision", types.DefaultPrecision, "fractional digits for non-integral solutions")
	flags.Bool("real-only", false, "report no real solution instead of complex roots")
	flags.Bool("record", false, "record solved equations in the history database")
	flags.String("history-dir", "", "directory for the history database (default ~/.local/share/computor)")
	flags.BoolP("verbose", "v", false, "print matched terms to stderr")

	bindFlag("output.format", "format")
	bindFlag("output.color", "color")
	bindFlag("output.verbose", "verbose")
	bindFlag("solver.precision", "precision")
	bindFlag("history.enabled", "record")
	bindFlag("history.dir", "history-dir")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("computor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "computor"))
		}
	}

	viper.SetEnvPrefix("COMPUTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("solver.precision", defaults.Solver.Precision)
	viper.SetDefault("solver.complex", defaults.Solver.Complex)
	viper.SetDefault("output.format", string(defaults.Output.Format))
	viper.SetDefault("history.max_results", defaults.History.MaxResults)
	viper.SetDefault("history.dir", defaultHistoryDir())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".computor"
	}
	return filepath.Join(home, ".local", "share", "computor")
}

// loadConfig merges defaults, config file, environment, and flags.
func loadConfig(cmd *cobra.Command) (types.ComputorConfig, error) {
	var cfg types.ComputorConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}

	if realOnly, _ := cmd.Flags().GetBool("real-only"); realOnly {
		cfg.Solver.Complex = false
	}
	if cfg.Solver.Precision < 0 {
		return cfg, fmt.Errorf("precision must not be negative, got %d", cfg.Solver.Precision)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = types.OutputText
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if err := cmd.Usage(); err != nil {
			return err
		}
		return errNoEquation
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	equation := strings.Join(args, " ")
	if cfg.Output.Verbose {
		report.Trace(cmd.ErrOrStderr(), equation)
	}

	r, err := report.Build(equation, cfg.Solver)
	if err != nil {
		return err
	}

	if cfg.History.Enabled {
		r, err = recordReport(cmd, cfg.History, r)
		if err != nil {
			return err
		}
	}

	return report.Write(cmd.OutOrStdout(), r, cfg.Output)
}

func recordReport(cmd *cobra.Command, cfg types.HistoryConfig, r types.Report) (types.Report, error) {
	store, err := history.NewStore(cfg)
	if err != nil {
		return r, err
	}
	defer store.Close()

	rec, err := store.Record(cmd.Context(), r)
	if err != nil {
		return r, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Recorded %s\n", rec.ID)
	return rec, nil
}

// equationArgs inserts "--" before the first argument that reads as an
// equation starting with '-', so the flag parser leaves it alone. Arguments
// for subcommands are returned unchanged.
func equationArgs(args []string) []string {
	if len(args) > 0 && isSubcommand(args[0]) {
		return args
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if looksLikeEquation(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if f := lookupFlag(arg); f != nil && f.NoOptDefVal == "" {
			// The next argument is this flag's value, e.g. --precision -2.
			i++
		}
	}
	return args
}

// lookupFlag returns the root flag named by arg when arg is a flag without
// an inline value.
func lookupFlag(arg string) *pflag.Flag {
	flags := rootCmd.PersistentFlags()
	switch {
	case strings.Contains(arg, "="):
		return nil
	case strings.HasPrefix(arg, "--"):
		return flags.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		return flags.ShorthandLookup(arg[1:])
	}
	return nil
}

// looksLikeEquation reports whether a '-' prefixed argument is equation text
// rather than a flag: it holds an '=', or the dash is followed by a space,
// a digit, a '.', or a term such as X^2.
func looksLikeEquation(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	if strings.Contains(arg, "=") && rootCmd.PersistentFlags().ShorthandLookup(arg[1:2]) == nil {
		return true
	}
	switch c := arg[1]; {
	case c == ' ', c == '\t', c == '.', c == 'X':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}

func isSubcommand(name string) bool {
	if name == "help" || name == "completion" || name == cobra.ShellCompRequestCmd || name == cobra.ShellCompNoDescRequestCmd {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func main() {
	rootCmd.SetArgs(equationArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
