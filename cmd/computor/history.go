// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/computor/internal/history"
	"github.com/pdiddy/computor/internal/report"
	"github.com/pdiddy/computor/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show, or export recorded solutions",
	Long: `History reads the SQLite database written when equations are solved
with --record (or history.enabled in the config file).`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded solutions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.List(cmd.Context(), historyOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryList(cmd.OutOrStdout(), results, jsonOutput)
}

func formatHistoryList(w io.Writer, results []types.Report, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []types.Report{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No recorded solutions.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-6s  %-16s  %s\n", "ID", "Solved", "Degree", "Kind", "Equation")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, r := range results {
		equation := r.Equation
		if len(equation) > 40 {
			equation = equation[:37] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-20s  %-6d  %-16s  %s\n",
			r.ID, r.SolvedAt.Format("2006-01-02 15:04:05"), r.Degree, r.Solution.Kind, equation)
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a recorded solution",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), r, cfg.Output)
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded solutions to YAML or JSON",
	Long: `Export writes recorded solutions to export.yaml or export.json in the
history directory. Supports the same filters as list.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("export-format")

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = store.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.History)
}

func historyOptsFromFlags(cmd *cobra.Command) history.QueryOptions {
	kind, _ := cmd.Flags().GetString("kind")
	contains, _ := cmd.Flags().GetString("contains")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := history.QueryOptions{
		Kind:       types.SolutionKind(kind),
		Contains:   contains,
		MaxResults: limit,
	}
	if cmd.Flags().Changed("degree") {
		degree, _ := cmd.Flags().GetInt("degree")
		opts.Degree = &degree
	}
	return opts
}

func addHistoryFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("degree", 0, "filter by polynomial degree")
	cmd.Flags().String("kind", "", "filter by solution kind (e.g. two-real, inconsistent)")
	cmd.Flags().String("contains", "", "filter by equation substring")
}

func init() {
	addHistoryFilterFlags(historyListCmd)
	historyListCmd.Flags().Int("limit", 0, "maximum number of results (default history.max_results)")
	historyListCmd.Flags().Bool("json", false, "output results as JSON")

	addHistoryFilterFlags(historyExportCmd)
	historyExportCmd.Flags().String("export-format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
